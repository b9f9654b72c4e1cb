package repository

import (
	"fmt"
	"sync"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auctionerrors"
	model "github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
)

// Tx is the view a transaction body gets over one auction aggregate. All
// reads must happen before the first staged write; the store rejects reads
// issued after staging because optimistic stores cannot interleave them.
type Tx interface {
	GetAuction(auctionID string) (model.Auction, error)
	GetEnabledProxyBids(auctionID string) ([]model.ProxyBid, error)
	StageAuction(a model.Auction)
	StageProxyBid(pb model.ProxyBid)
	StageBidLogEntry(e model.BidLogEntry)
}

// AuctionStore is the transactional storage interface for auction
// aggregates. InTransaction runs fn atomically against a single aggregate;
// when another transaction committed first it fails with ErrWriteConflict
// and the caller retries from scratch with fresh reads. The remaining
// methods are the non-transactional read side plus listing administration.
type AuctionStore interface {
	InTransaction(auctionID string, fn func(Tx) error) error
	GetAuction(auctionID string) (model.Auction, error)
	GetBidLog(auctionID string) ([]model.BidLogEntry, error)
	GetProxyBid(auctionID, bidderID string) (model.ProxyBid, error)
	CreateAuction(a model.Auction) error
}

// MemoryStore is a concurrency-safe in-memory implementation of
// AuctionStore with per-aggregate optimistic versioning.
type MemoryStore struct {
	mu        sync.RWMutex
	auctions  map[string]model.Auction
	proxyBids map[string]map[string]model.ProxyBid // auctionID -> bidderID -> proxy bid
	bidLog    map[string][]model.BidLogEntry       // auctionID -> append-only log
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions:  make(map[string]model.Auction),
		proxyBids: make(map[string]map[string]model.ProxyBid),
		bidLog:    make(map[string][]model.BidLogEntry),
	}
}

// memoryTx collects staged writes for one attempt. Nothing touches the
// store's maps until commit, so an abandoned attempt leaves no state behind.
type memoryTx struct {
	store       *MemoryStore
	auctionID   string
	readVersion int64
	didRead     bool
	staged      bool

	stagedAuction *model.Auction
	stagedProxies []model.ProxyBid
	stagedEntries []model.BidLogEntry
}

func (t *memoryTx) GetAuction(auctionID string) (model.Auction, error) {
	if t.staged {
		return model.Auction{}, fmt.Errorf("tx get auction %s: read after write", auctionID)
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	a, ok := t.store.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("tx get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auctionID == t.auctionID {
		t.readVersion = a.Version
		t.didRead = true
	}
	return a, nil
}

func (t *memoryTx) GetEnabledProxyBids(auctionID string) ([]model.ProxyBid, error) {
	if t.staged {
		return nil, fmt.Errorf("tx get proxy bids %s: read after write", auctionID)
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	bids := make([]model.ProxyBid, 0, len(t.store.proxyBids[auctionID]))
	for _, pb := range t.store.proxyBids[auctionID] {
		if pb.Enabled {
			bids = append(bids, pb)
		}
	}
	return bids, nil
}

func (t *memoryTx) StageAuction(a model.Auction) {
	t.staged = true
	t.stagedAuction = &a
}

func (t *memoryTx) StageProxyBid(pb model.ProxyBid) {
	t.staged = true
	t.stagedProxies = append(t.stagedProxies, pb)
}

func (t *memoryTx) StageBidLogEntry(e model.BidLogEntry) {
	t.staged = true
	t.stagedEntries = append(t.stagedEntries, e)
}

// InTransaction runs fn once against the aggregate and commits its staged
// writes atomically. The commit fails with ErrWriteConflict when the
// aggregate's version moved after fn's read, which is how two concurrent
// bids on the same auction are serialized: one commits, the other re-reads.
func (s *MemoryStore) InTransaction(auctionID string, fn func(Tx) error) error {
	tx := &memoryTx{store: s, auctionID: auctionID, readVersion: -1}

	if err := fn(tx); err != nil {
		return err
	}
	if !tx.staged {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("commit auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if tx.didRead && current.Version != tx.readVersion {
		return fmt.Errorf("commit auction %s: %w", auctionID, auctionerrors.ErrWriteConflict)
	}

	if tx.stagedAuction != nil {
		next := *tx.stagedAuction
		next.Version = current.Version + 1
		s.auctions[auctionID] = next
	}
	for _, pb := range tx.stagedProxies {
		if s.proxyBids[pb.AuctionID] == nil {
			s.proxyBids[pb.AuctionID] = make(map[string]model.ProxyBid)
		}
		s.proxyBids[pb.AuctionID][pb.BidderID] = pb
	}
	for _, e := range tx.stagedEntries {
		s.bidLog[e.AuctionID] = append(s.bidLog[e.AuctionID], e)
	}
	return nil
}

// GetAuction returns the aggregate outside any transaction (read-only view).
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetBidLog returns a copy of the append-only bid history for an auction.
func (s *MemoryStore) GetBidLog(auctionID string) ([]model.BidLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bid log %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.BidLogEntry(nil), s.bidLog[auctionID]...), nil
}

// GetProxyBid returns one bidder's proxy bid for an auction.
func (s *MemoryStore) GetProxyBid(auctionID, bidderID string) (model.ProxyBid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pb, ok := s.proxyBids[auctionID][bidderID]
	if !ok {
		return model.ProxyBid{}, fmt.Errorf("get proxy bid %s/%s: %w", auctionID, bidderID, auctionerrors.ErrAuctionNotFound)
	}
	return pb, nil
}

// CreateAuction registers a new aggregate. Intended for listing
// administration and tests; it is not part of the bid path.
func (s *MemoryStore) CreateAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.auctions[a.AuctionID]; exists {
		return fmt.Errorf("create auction %s: already exists", a.AuctionID)
	}
	if a.CurrentPriceCents < a.StartingPriceCents {
		a.CurrentPriceCents = a.StartingPriceCents
	}
	s.auctions[a.AuctionID] = a
	return nil
}
