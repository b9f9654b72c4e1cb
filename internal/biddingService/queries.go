package bidding

import (
	"fmt"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auctionerrors"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
)

// WinningView is the public view of where an auction stands: the visible
// price and high bidder, never anyone's proxy maximum.
type WinningView struct {
	AuctionID         string               `json:"auction_id"`
	CurrentPriceCents int64                `json:"current_price_cents"`
	HighBidderID      string               `json:"high_bidder_id,omitempty"`
	BidCount          int                  `json:"bid_count"`
	LastBidAt         string               `json:"last_bid_at,omitempty"`
	Status            models.AuctionStatus `json:"status"`
}

// GetAuction returns the aggregate for display.
func (c *BidCoordinator) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("coordinator: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	a, err := c.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("coordinator: failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// GetBidLog returns the append-only bid history for an auction.
func (c *BidCoordinator) GetBidLog(auctionID string) ([]models.BidLogEntry, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("coordinator: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	entries, err := c.store.GetBidLog(auctionID)
	if err != nil {
		return nil, fmt.Errorf("coordinator: failed to get bid log for %s: %w", auctionID, err)
	}
	return entries, nil
}

// GetWinning returns the current standing of an auction.
func (c *BidCoordinator) GetWinning(auctionID string) (WinningView, error) {
	a, err := c.GetAuction(auctionID)
	if err != nil {
		return WinningView{}, err
	}
	view := WinningView{
		AuctionID:         a.AuctionID,
		CurrentPriceCents: a.CurrentPriceCents,
		HighBidderID:      a.CurrentHighBidderID,
		BidCount:          a.BidCount,
		Status:            a.Status,
	}
	if !a.LastBidAt.IsZero() {
		view.LastBidAt = a.LastBidAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return view, nil
}
