package models

import "time"

// AuctionStatus is the lifecycle state of an auction listing.
type AuctionStatus string

const (
	StatusDraft     AuctionStatus = "draft"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
)

// ListingType distinguishes proxy-bid auctions from fixed-price listings.
type ListingType string

const (
	ListingAuction ListingType = "auction"
	ListingBuyNow  ListingType = "buy_now"
)

// Auction is the transactional aggregate for one listing. CurrentPriceCents
// and CurrentHighBidderID are updated only as a pair, inside a single store
// transaction, together with the bid counters.
type Auction struct {
	AuctionID           string        `json:"auction_id" gorm:"primaryKey;column:auction_id"`
	Status              AuctionStatus `json:"status" gorm:"column:status"`
	SellerID            string        `json:"seller_id" gorm:"column:seller_id"`
	Title               string        `json:"title" gorm:"column:title"`
	Category            string        `json:"category" gorm:"column:category"`
	ListingType         ListingType   `json:"listing_type" gorm:"column:listing_type"`
	StartingPriceCents  int64         `json:"starting_price_cents" gorm:"column:starting_price_cents"`
	CurrentPriceCents   int64         `json:"current_price_cents" gorm:"column:current_price_cents"`
	CurrentHighBidderID string        `json:"current_high_bidder_id,omitempty" gorm:"column:current_high_bidder_id"`
	StartAt             time.Time     `json:"start_at" gorm:"column:start_at"`
	Duration            time.Duration `json:"duration" gorm:"column:duration"`
	EndAt               time.Time     `json:"end_at,omitempty" gorm:"column:end_at"`
	BidCount            int           `json:"bid_count" gorm:"column:bid_count"`
	LastBidAt           time.Time     `json:"last_bid_at,omitempty" gorm:"column:last_bid_at"`
	Version             int64         `json:"-" gorm:"column:version"`
}

// ProxyBid is a bidder's private maximum for one auction. At most one exists
// per bidder per auction; MaxBidCents only ever rises through the public bid
// path while Enabled is true.
type ProxyBid struct {
	AuctionID   string    `json:"auction_id" gorm:"primaryKey;column:auction_id"`
	BidderID    string    `json:"bidder_id" gorm:"primaryKey;column:bidder_id"`
	MaxBidCents int64     `json:"max_bid_cents" gorm:"column:max_bid_cents"`
	Enabled     bool      `json:"enabled" gorm:"column:enabled"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// BidLogEntry is one immutable row of the append-only bid history. Replaying
// the log for an auction in CreatedAt order reconstructs the aggregate's
// visible price and high bidder.
type BidLogEntry struct {
	BidLogID    string    `json:"bid_log_id" gorm:"primaryKey;column:bid_log_id"`
	AuctionID   string    `json:"auction_id" gorm:"column:auction_id;index"`
	BidderID    string    `json:"bidder_id" gorm:"column:bidder_id"`
	AmountCents int64     `json:"amount_cents" gorm:"column:amount_cents"`
	IsSynthetic bool      `json:"is_synthetic" gorm:"column:is_synthetic"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

// Outcome is what a committed PlaceBid returns. It carries everything the
// notification dispatcher needs, so post-commit code never re-reads state.
type Outcome struct {
	NewPriceCents           int64    `json:"new_price_cents"`
	NewHighBidderID         string   `json:"new_high_bidder_id"`
	PreviousHighBidderID    string   `json:"previous_high_bidder_id,omitempty"`
	PriceMoved              bool     `json:"price_moved"`
	HighBidderChanged       bool     `json:"high_bidder_changed"`
	CallerResultingMaxCents int64    `json:"caller_resulting_max_cents"`
	BidLogEntryIDs          []string `json:"bid_log_entry_ids"`
}
