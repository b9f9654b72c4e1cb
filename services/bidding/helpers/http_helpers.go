package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auctionerrors"
	"github.com/mikemacmadeit/wildlife-auction-sub007/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Only contention and store failures are worth a caller-side retry; every
// other kind needs a changed request.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrOwnAuction):
		return http.StatusForbidden, "sellers cannot bid on their own auctions"
	case errors.Is(err, auctionerrors.ErrNotBiddableType):
		return http.StatusConflict, "listing does not accept bids"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrIneligibleBidder):
		return http.StatusForbidden, "bidder not eligible for this category"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrMaxNotHigher):
		return http.StatusConflict, "maximum bid must exceed your existing maximum"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrContentionExhausted):
		return http.StatusServiceUnavailable, "auction is busy, please retry"
	case errors.Is(err, auctionerrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "storage unavailable, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorDetails extracts machine-readable payload fields from typed errors,
// e.g. the computed minimum on a too-low bid.
func ErrorDetails(err error) map[string]any {
	var tooLow *auctionerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return map[string]any{
			"proposed_cents": tooLow.ProposedCents,
			"minimum_cents":  tooLow.MinimumCents,
		}
	}
	return nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
