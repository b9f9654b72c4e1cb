package notifier

import (
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
	"github.com/mikemacmadeit/wildlife-auction-sub007/utils"
)

// Dispatcher fans a committed bid outcome out to the interested parties:
// the previous high bidder ("outbid"), the new high bidder ("winning") and
// the seller ("bid received"). It runs strictly after the commit and is
// best effort: a delivery failure never unwinds the bid.
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Dispatch emits notification signals for one committed bid. The outcome
// carries everything needed, so no auction state is read here.
func (d *Dispatcher) Dispatch(auctionID, sellerID, callerID string, out models.Outcome) {
	if out.HighBidderChanged && out.PreviousHighBidderID != "" && out.PreviousHighBidderID != out.NewHighBidderID {
		utils.Info("notify: outbid", map[string]any{
			"auction_id":      auctionID,
			"bidder_id":       out.PreviousHighBidderID,
			"new_price_cents": out.NewPriceCents,
		})
	}
	if out.HighBidderChanged || out.PriceMoved {
		utils.Info("notify: high bidder", map[string]any{
			"auction_id":      auctionID,
			"bidder_id":       out.NewHighBidderID,
			"new_price_cents": out.NewPriceCents,
		})
		utils.Info("notify: bid received", map[string]any{
			"auction_id":      auctionID,
			"seller_id":       sellerID,
			"new_price_cents": out.NewPriceCents,
			"bid_count_delta": len(out.BidLogEntryIDs),
		})
	} else {
		utils.Info("notify: maximum raised", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  callerID,
		})
	}
}
