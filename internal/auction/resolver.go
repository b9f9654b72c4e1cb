package auction

import (
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
)

// ResolveInput is the state a proxy resolution round runs against: the
// aggregate's visible fields plus every enabled proxy bid, including the
// caller's already-raised maximum.
type ResolveInput struct {
	CurrentPriceCents   int64
	StartingPriceCents  int64
	CurrentHighBidderID string
	CallerID            string
	Bids                []models.ProxyBid
}

// ResolveResult is the outcome of one resolution round. Entries carry
// BidderID, AmountCents and IsSynthetic only; the coordinator assigns IDs
// and timestamps at commit time so that Resolve stays deterministic.
type ResolveResult struct {
	NewPriceCents   int64
	NewHighBidderID string
	Entries         []models.BidLogEntry
}

// Resolve runs one round of English-auction proxy bidding.
//
// The bidder with the strictly highest maximum wins; ties are broken by the
// earliest CreatedAt, so the first bidder to set a ceiling keeps it against
// later equal ceilings. The visible price rises only to meet competition:
// with a sole bidder it stays at max(current, starting), never jumping to
// the bidder's own ceiling, and with competition it becomes the smaller of
// the winner's maximum and the runner-up's maximum plus one increment.
//
// A real log entry is produced for the caller whenever their bid changed the
// visible price or the high bidder. When the winner is someone other than
// the caller, a synthetic entry records the winner's proxy covering the new
// price, keeping the history replayable even though the winner submitted
// nothing.
//
// Deterministic over the same input regardless of Bids slice order. All
// arithmetic is integer cents.
func Resolve(policy *IncrementPolicy, in ResolveInput) ResolveResult {
	floor := in.CurrentPriceCents
	if in.StartingPriceCents > floor {
		floor = in.StartingPriceCents
	}

	if len(in.Bids) == 0 {
		return ResolveResult{
			NewPriceCents:   floor,
			NewHighBidderID: in.CurrentHighBidderID,
		}
	}

	winner := in.Bids[0]
	for _, b := range in.Bids[1:] {
		if outbids(b, winner) {
			winner = b
		}
	}

	var runnerUp *models.ProxyBid
	for i := range in.Bids {
		b := in.Bids[i]
		if b.BidderID == winner.BidderID {
			continue
		}
		if runnerUp == nil || outbids(b, *runnerUp) {
			runnerUp = &b
		}
	}

	newPrice := floor
	if runnerUp != nil {
		contested := runnerUp.MaxBidCents + policy.MinIncrement(runnerUp.MaxBidCents)
		if contested > winner.MaxBidCents {
			contested = winner.MaxBidCents
		}
		if contested > newPrice {
			newPrice = contested
		}
	}

	result := ResolveResult{
		NewPriceCents:   newPrice,
		NewHighBidderID: winner.BidderID,
	}

	priceMoved := newPrice != in.CurrentPriceCents
	winnerChanged := winner.BidderID != in.CurrentHighBidderID
	if !priceMoved && !winnerChanged {
		return result
	}

	callerAmount := newPrice
	if winner.BidderID != in.CallerID {
		// The caller lost: their proxy was pushed to its ceiling.
		callerAmount = callerMax(in)
	}
	result.Entries = append(result.Entries, models.BidLogEntry{
		BidderID:    in.CallerID,
		AmountCents: callerAmount,
	})

	if winner.BidderID != in.CallerID {
		result.Entries = append(result.Entries, models.BidLogEntry{
			BidderID:    winner.BidderID,
			AmountCents: newPrice,
			IsSynthetic: true,
		})
	}

	return result
}

// outbids reports whether a beats b: higher maximum first, then the earlier
// ceiling, then BidderID so resolution is total even on identical timestamps.
func outbids(a, b models.ProxyBid) bool {
	if a.MaxBidCents != b.MaxBidCents {
		return a.MaxBidCents > b.MaxBidCents
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.BidderID < b.BidderID
}

func callerMax(in ResolveInput) int64 {
	for _, b := range in.Bids {
		if b.BidderID == in.CallerID {
			return b.MaxBidCents
		}
	}
	return 0
}
