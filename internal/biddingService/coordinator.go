package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auction"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auctionerrors"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/repository"
	"github.com/mikemacmadeit/wildlife-auction-sub007/utils"
)

// EligibilityPolicy decides whether a bidder may bid in a listing category,
// e.g. jurisdictional restrictions on regulated species. It is consulted
// inside the transaction, before any write is staged.
type EligibilityPolicy interface {
	IsEligibleBidder(bidderID, auctionCategory string) (bool, error)
}

// Clock supplies the current time. Injected so tests control it.
type Clock func() time.Time

// Config tunes the optimistic retry loop.
type Config struct {
	MaxRetries     int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// DefaultConfig returns the production retry settings.
func DefaultConfig() Config {
	return Config{
		MaxRetries:     5,
		RetryBaseDelay: 10 * time.Millisecond,
		RetryMaxDelay:  500 * time.Millisecond,
	}
}

// BidCoordinator orchestrates one bid-placement attempt: it loads the
// aggregate and all enabled proxy bids inside a single store transaction,
// runs the eligibility and amount checks, resolves the proxy competition
// and commits the new aggregate state together with the bid log rows and
// the caller's own proxy record. Conflicting commits are retried from
// scratch with fresh reads.
type BidCoordinator struct {
	store       repository.AuctionStore
	increments  *auction.IncrementPolicy
	eligibility EligibilityPolicy
	now         Clock
	cfg         Config
}

// NewBidCoordinator creates a new BidCoordinator instance.
func NewBidCoordinator(store repository.AuctionStore, increments *auction.IncrementPolicy, eligibility EligibilityPolicy, now Clock, cfg Config) *BidCoordinator {
	if increments == nil {
		increments = auction.DefaultIncrementPolicy()
	}
	if now == nil {
		now = time.Now
	}
	if cfg.MaxRetries <= 0 {
		cfg = DefaultConfig()
	}
	return &BidCoordinator{
		store:       store,
		increments:  increments,
		eligibility: eligibility,
		now:         now,
		cfg:         cfg,
	}
}

// PlaceBid applies one bidder's proposed maximum against the auction. All
// validation and resolution happens inside the store transaction; on a
// write conflict the whole attempt, preconditions included, re-runs against
// fresh state after a backoff. Nothing is written until the commit, so an
// abandoned or cancelled attempt leaves no state behind.
func (c *BidCoordinator) PlaceBid(ctx context.Context, auctionID, bidderID string, proposedMaxCents int64) (models.Outcome, error) {
	if auctionID == "" || bidderID == "" {
		return models.Outcome{}, fmt.Errorf("coordinator: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if proposedMaxCents <= 0 {
		return models.Outcome{}, fmt.Errorf("coordinator: %w - non-positive maximum", auctionerrors.ErrInvalidBid)
	}

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		var outcome models.Outcome
		err := c.store.InTransaction(auctionID, func(tx repository.Tx) error {
			var txErr error
			outcome, txErr = c.attempt(tx, auctionID, bidderID, proposedMaxCents)
			return txErr
		})
		if err == nil {
			return outcome, nil
		}
		if !errors.Is(err, auctionerrors.ErrWriteConflict) {
			return models.Outcome{}, err
		}

		utils.Warn("bid write conflict, retrying", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"attempt":    attempt + 1,
		})
		select {
		case <-ctx.Done():
			return models.Outcome{}, fmt.Errorf("coordinator: bid abandoned: %w", ctx.Err())
		case <-time.After(c.backoff(attempt)):
		}
	}

	return models.Outcome{}, fmt.Errorf("coordinator: auction %s: %w", auctionID, auctionerrors.ErrContentionExhausted)
}

// attempt is the transaction body. It performs every read before staging
// any write, as required by optimistic stores, and is free of side effects
// beyond the staged writes, so the store may re-run it safely.
func (c *BidCoordinator) attempt(tx repository.Tx, auctionID, bidderID string, proposedMaxCents int64) (models.Outcome, error) {
	a, err := tx.GetAuction(auctionID)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("coordinator: %w", err)
	}
	enabled, err := tx.GetEnabledProxyBids(auctionID)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("coordinator: %w", err)
	}

	now := c.now().UTC()
	if err := c.checkPreconditions(a, enabled, bidderID, proposedMaxCents, now); err != nil {
		return models.Outcome{}, err
	}

	caller, bids := upsertCallerBid(enabled, auctionID, bidderID, proposedMaxCents, now)

	res := auction.Resolve(c.increments, auction.ResolveInput{
		CurrentPriceCents:   a.CurrentPriceCents,
		StartingPriceCents:  a.StartingPriceCents,
		CurrentHighBidderID: a.CurrentHighBidderID,
		CallerID:            bidderID,
		Bids:                bids,
	})

	outcome := models.Outcome{
		NewPriceCents:           res.NewPriceCents,
		NewHighBidderID:         res.NewHighBidderID,
		PreviousHighBidderID:    a.CurrentHighBidderID,
		PriceMoved:              res.NewPriceCents != a.CurrentPriceCents,
		HighBidderChanged:       res.NewHighBidderID != a.CurrentHighBidderID,
		CallerResultingMaxCents: caller.MaxBidCents,
	}

	tx.StageProxyBid(caller)

	if len(res.Entries) > 0 {
		for i, e := range res.Entries {
			e.BidLogID = utils.GenerateID()
			e.AuctionID = auctionID
			// Entries from one commit keep their emission order in the log.
			e.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
			tx.StageBidLogEntry(e)
			outcome.BidLogEntryIDs = append(outcome.BidLogEntryIDs, e.BidLogID)
		}
		a.CurrentPriceCents = res.NewPriceCents
		a.CurrentHighBidderID = res.NewHighBidderID
		a.BidCount += len(res.Entries)
		a.LastBidAt = now
	}
	// Staged even when only the ceiling moved, so any two commits against
	// the same aggregate serialize through the version check.
	tx.StageAuction(a)

	return outcome, nil
}

// checkPreconditions runs the spec'd validations in order, each mapping to
// its own stable error kind.
func (c *BidCoordinator) checkPreconditions(a models.Auction, enabled []models.ProxyBid, bidderID string, proposedMaxCents int64, now time.Time) error {
	if bidderID == a.SellerID {
		return fmt.Errorf("coordinator: auction %s: %w", a.AuctionID, auctionerrors.ErrOwnAuction)
	}
	if a.ListingType != models.ListingAuction {
		return fmt.Errorf("coordinator: auction %s: %w", a.AuctionID, auctionerrors.ErrNotBiddableType)
	}
	if ok, reason := auction.IsBiddable(a, now); !ok {
		if reason == auction.ReasonEnded {
			return fmt.Errorf("coordinator: auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionEnded)
		}
		return fmt.Errorf("coordinator: auction %s (%s): %w", a.AuctionID, reason, auctionerrors.ErrAuctionNotActive)
	}
	if c.eligibility != nil {
		ok, err := c.eligibility.IsEligibleBidder(bidderID, a.Category)
		if err != nil {
			return fmt.Errorf("coordinator: eligibility check for %s: %w", bidderID, err)
		}
		if !ok {
			return fmt.Errorf("coordinator: bidder %s, category %s: %w", bidderID, a.Category, auctionerrors.ErrIneligibleBidder)
		}
	}

	minimum := a.StartingPriceCents
	if a.BidCount > 0 {
		minimum = a.CurrentPriceCents + c.increments.MinIncrement(a.CurrentPriceCents)
	}
	if proposedMaxCents < minimum {
		return fmt.Errorf("coordinator: auction %s: %w", a.AuctionID,
			&auctionerrors.BidTooLowError{ProposedCents: proposedMaxCents, MinimumCents: minimum})
	}

	for _, pb := range enabled {
		if pb.BidderID == bidderID && proposedMaxCents <= pb.MaxBidCents {
			return fmt.Errorf("coordinator: auction %s, existing maximum %d: %w",
				a.AuctionID, pb.MaxBidCents, auctionerrors.ErrMaxNotHigher)
		}
	}
	return nil
}

// upsertCallerBid returns the caller's new proxy record plus the full bid
// set the resolver runs against. A first-time bidder gets CreatedAt=now,
// which is also the tie-break timestamp they keep from then on.
func upsertCallerBid(enabled []models.ProxyBid, auctionID, bidderID string, proposedMaxCents int64, now time.Time) (models.ProxyBid, []models.ProxyBid) {
	caller := models.ProxyBid{
		AuctionID:   auctionID,
		BidderID:    bidderID,
		MaxBidCents: proposedMaxCents,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	bids := make([]models.ProxyBid, 0, len(enabled)+1)
	for _, pb := range enabled {
		if pb.BidderID == bidderID {
			caller.CreatedAt = pb.CreatedAt
			continue
		}
		bids = append(bids, pb)
	}
	return caller, append(bids, caller)
}

// backoff returns the exponential retry delay for an attempt, capped at the
// configured maximum.
func (c *BidCoordinator) backoff(attempt int) time.Duration {
	if attempt < 0 {
		return c.cfg.RetryBaseDelay
	}
	if attempt > 30 {
		return c.cfg.RetryMaxDelay
	}
	d := c.cfg.RetryBaseDelay * time.Duration(1<<attempt)
	if d > c.cfg.RetryMaxDelay {
		return c.cfg.RetryMaxDelay
	}
	return d
}
