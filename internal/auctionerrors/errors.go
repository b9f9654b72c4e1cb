package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrWriteConflict    = errors.New("write conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// business logic errors
var (
	ErrInvalidBid          = errors.New("invalid bid")
	ErrOwnAuction          = errors.New("seller cannot bid on own auction")
	ErrNotBiddableType     = errors.New("listing type does not accept bids")
	ErrAuctionNotActive    = errors.New("auction is not active")
	ErrAuctionEnded        = errors.New("auction has ended")
	ErrIneligibleBidder    = errors.New("bidder is not eligible for this category")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrMaxNotHigher        = errors.New("maximum bid must exceed existing maximum")
	ErrContentionExhausted = errors.New("bid retries exhausted under contention")
)

// BidTooLowError carries the computed minimum legal bid so callers can show
// it to the bidder. It unwraps to ErrBidTooLow for errors.Is matching.
type BidTooLowError struct {
	ProposedCents int64
	MinimumCents  int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid of %d cents below minimum of %d cents", e.ProposedCents, e.MinimumCents)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }
