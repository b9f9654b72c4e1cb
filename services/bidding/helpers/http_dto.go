package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	BidderID    string `json:"bidder_id" binding:"required"`
	MaxBidCents int64  `json:"max_bid_cents" binding:"required,gt=0"`
}

type OutcomeResponse struct {
	AuctionID               string   `json:"auction_id"`
	NewPriceCents           int64    `json:"new_price_cents"`
	NewHighBidderID         string   `json:"new_high_bidder_id"`
	PreviousHighBidderID    string   `json:"previous_high_bidder_id,omitempty"`
	PriceMoved              bool     `json:"price_moved"`
	HighBidderChanged       bool     `json:"high_bidder_changed"`
	CallerResultingMaxCents int64    `json:"caller_resulting_max_cents"`
	BidLogEntryIDs          []string `json:"bid_log_entry_ids"`
}

type BidLogEntryResponse struct {
	BidLogID    string `json:"bid_log_id"`
	AuctionID   string `json:"auction_id"`
	BidderID    string `json:"bidder_id"`
	AmountCents int64  `json:"amount_cents"`
	IsSynthetic bool   `json:"is_synthetic"`
	CreatedAt   string `json:"created_at"`
}
