package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auctionerrors"
	model "github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
)

// GormStore is the durable AuctionStore over a relational database. It uses
// the same optimistic protocol as MemoryStore: the aggregate carries a
// version column and the commit is a compare-and-swap on it, so concurrent
// bids on one auction serialize without row locks held across validation.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the auction schema and wraps the connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.Auction{}, &model.ProxyBid{}, &model.BidLogEntry{}); err != nil {
		return nil, fmt.Errorf("migrate auction schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

type gormTx struct {
	db          *gorm.DB
	auctionID   string
	readVersion int64
	didRead     bool
	staged      bool

	stagedAuction *model.Auction
	stagedProxies []model.ProxyBid
	stagedEntries []model.BidLogEntry
}

func (t *gormTx) GetAuction(auctionID string) (model.Auction, error) {
	if t.staged {
		return model.Auction{}, fmt.Errorf("tx get auction %s: read after write", auctionID)
	}
	var a model.Auction
	if err := t.db.First(&a, "auction_id = ?", auctionID).Error; err != nil {
		return model.Auction{}, storeErr(fmt.Sprintf("tx get auction %s", auctionID), err)
	}
	if auctionID == t.auctionID {
		t.readVersion = a.Version
		t.didRead = true
	}
	return a, nil
}

func (t *gormTx) GetEnabledProxyBids(auctionID string) ([]model.ProxyBid, error) {
	if t.staged {
		return nil, fmt.Errorf("tx get proxy bids %s: read after write", auctionID)
	}
	var bids []model.ProxyBid
	err := t.db.Where("auction_id = ? AND enabled = ?", auctionID, true).Find(&bids).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("tx get proxy bids %s", auctionID), err)
	}
	return bids, nil
}

func (t *gormTx) StageAuction(a model.Auction) {
	t.staged = true
	t.stagedAuction = &a
}

func (t *gormTx) StageProxyBid(pb model.ProxyBid) {
	t.staged = true
	t.stagedProxies = append(t.stagedProxies, pb)
}

func (t *gormTx) StageBidLogEntry(e model.BidLogEntry) {
	t.staged = true
	t.stagedEntries = append(t.stagedEntries, e)
}

// InTransaction runs fn and flushes its staged writes in one database
// transaction. The aggregate update is guarded by the version read inside
// fn; zero affected rows means another bid committed first and the whole
// attempt must be retried with fresh reads.
func (s *GormStore) InTransaction(auctionID string, fn func(Tx) error) error {
	return s.db.Transaction(func(dbtx *gorm.DB) error {
		t := &gormTx{db: dbtx, auctionID: auctionID, readVersion: -1}

		if err := fn(t); err != nil {
			return err
		}
		if !t.staged {
			return nil
		}

		if t.stagedAuction != nil {
			a := t.stagedAuction
			res := dbtx.Model(&model.Auction{}).
				Where("auction_id = ? AND version = ?", auctionID, t.readVersion).
				Updates(map[string]any{
					"status":                 a.Status,
					"current_price_cents":    a.CurrentPriceCents,
					"current_high_bidder_id": a.CurrentHighBidderID,
					"end_at":                 a.EndAt,
					"bid_count":              a.BidCount,
					"last_bid_at":            a.LastBidAt,
					"version":                t.readVersion + 1,
				})
			if res.Error != nil {
				return storeErr(fmt.Sprintf("commit auction %s", auctionID), res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("commit auction %s: %w", auctionID, auctionerrors.ErrWriteConflict)
			}
		}

		for i := range t.stagedProxies {
			err := dbtx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "auction_id"}, {Name: "bidder_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"max_bid_cents", "enabled", "updated_at",
				}),
			}).Create(&t.stagedProxies[i]).Error
			if err != nil {
				return storeErr(fmt.Sprintf("commit proxy bid %s", auctionID), err)
			}
		}

		if len(t.stagedEntries) > 0 {
			if err := dbtx.Create(&t.stagedEntries).Error; err != nil {
				return storeErr(fmt.Sprintf("commit bid log %s", auctionID), err)
			}
		}
		return nil
	})
}

// GetAuction returns the aggregate outside any transaction.
func (s *GormStore) GetAuction(auctionID string) (model.Auction, error) {
	var a model.Auction
	if err := s.db.First(&a, "auction_id = ?", auctionID).Error; err != nil {
		return model.Auction{}, storeErr(fmt.Sprintf("get auction %s", auctionID), err)
	}
	return a, nil
}

// GetBidLog returns the bid history for an auction in commit order.
func (s *GormStore) GetBidLog(auctionID string) ([]model.BidLogEntry, error) {
	if _, err := s.GetAuction(auctionID); err != nil {
		return nil, err
	}
	var entries []model.BidLogEntry
	err := s.db.Where("auction_id = ?", auctionID).Order("created_at ASC").Find(&entries).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("get bid log %s", auctionID), err)
	}
	return entries, nil
}

// GetProxyBid returns one bidder's proxy bid for an auction.
func (s *GormStore) GetProxyBid(auctionID, bidderID string) (model.ProxyBid, error) {
	var pb model.ProxyBid
	err := s.db.First(&pb, "auction_id = ? AND bidder_id = ?", auctionID, bidderID).Error
	if err != nil {
		return model.ProxyBid{}, storeErr(fmt.Sprintf("get proxy bid %s/%s", auctionID, bidderID), err)
	}
	return pb, nil
}

// CreateAuction registers a new aggregate row.
func (s *GormStore) CreateAuction(a model.Auction) error {
	if a.CurrentPriceCents < a.StartingPriceCents {
		a.CurrentPriceCents = a.StartingPriceCents
	}
	if err := s.db.Create(&a).Error; err != nil {
		return storeErr(fmt.Sprintf("create auction %s", a.AuctionID), err)
	}
	return nil
}

// storeErr maps driver errors onto the stable repository error kinds.
func storeErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrAuctionNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, auctionerrors.ErrStoreUnavailable, err)
}
