package auction

import (
	"time"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
)

// Reason explains why an auction is not biddable.
type Reason string

const (
	ReasonBiddable  Reason = ""
	ReasonDraft     Reason = "draft"
	ReasonCancelled Reason = "cancelled"
	ReasonEnded     Reason = "ended"
	ReasonNotActive Reason = "not_active"
)

// EffectiveEndAt returns the authoritative end time for an auction. When the
// listing has no explicit EndAt it is derived from the virtual schedule
// (StartAt + Duration); a zero result means no end time is known yet.
func EffectiveEndAt(a models.Auction) time.Time {
	if !a.EndAt.IsZero() {
		return a.EndAt
	}
	if !a.StartAt.IsZero() && a.Duration > 0 {
		return a.StartAt.Add(a.Duration)
	}
	return time.Time{}
}

// IsBiddable reports whether bids may be placed on the auction at the given
// instant. Only an active auction before its effective end time is biddable;
// ended and cancelled are terminal states.
func IsBiddable(a models.Auction, now time.Time) (bool, Reason) {
	switch a.Status {
	case models.StatusActive:
		// fall through to the time check
	case models.StatusDraft:
		return false, ReasonDraft
	case models.StatusCancelled:
		return false, ReasonCancelled
	case models.StatusEnded:
		return false, ReasonEnded
	default:
		return false, ReasonNotActive
	}

	end := EffectiveEndAt(a)
	if !end.IsZero() && !now.Before(end) {
		return false, ReasonEnded
	}
	return true, ReasonBiddable
}
