package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auction"
	bidding "github.com/mikemacmadeit/wildlife-auction-sub007/internal/biddingService"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/eligibility"
	model "github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/notifier"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/repository"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/server"
	"github.com/mikemacmadeit/wildlife-auction-sub007/utils"
)

func main() {

	store, err := buildStore()
	if err != nil {
		utils.Fatal("failed to initialize store", map[string]any{"error": err.Error()})
	}

	prepopulateAuctions(store)

	policy := eligibility.NewStaticPolicy()
	policy.RestrictCategory("raptors")

	coordinator := bidding.NewBidCoordinator(store, auction.DefaultIncrementPolicy(), policy, time.Now, retryConfig())

	router := server.SetupRouter(coordinator, notifier.NewDispatcher())

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects the AuctionStore implementation from the environment:
// DATABASE_URL for Postgres, SQLITE_PATH for a local file, in-memory otherwise.
func buildStore() (repository.AuctionStore, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return repository.NewGormStore(db)
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return repository.NewGormStore(db)
	}
	return repository.NewMemoryStore(), nil
}

// prepopulateAuctions adds sample listings to a fresh store
func prepopulateAuctions(store repository.AuctionStore) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{
			AuctionID:          "auction1",
			Status:             model.StatusActive,
			SellerID:           "seller1",
			Title:              "African Grey Parrot",
			Category:           "birds",
			ListingType:        model.ListingAuction,
			StartingPriceCents: 10_000,
			StartAt:            now,
			Duration:           7 * 24 * time.Hour,
		},
		{
			AuctionID:          "auction2",
			Status:             model.StatusActive,
			SellerID:           "seller2",
			Title:              "Ball Python, captive bred",
			Category:           "reptiles",
			ListingType:        model.ListingAuction,
			StartingPriceCents: 20_000,
			StartAt:            now,
			Duration:           3 * 24 * time.Hour,
		},
		{
			AuctionID:          "auction3",
			Status:             model.StatusActive,
			SellerID:           "seller1",
			Title:              "Harris's Hawk, falconry trained",
			Category:           "raptors",
			ListingType:        model.ListingAuction,
			StartingPriceCents: 150_000,
			StartAt:            now,
			Duration:           5 * 24 * time.Hour,
		},
	}

	for _, a := range auctions {
		if err := store.CreateAuction(a); err != nil {
			// Already seeded on a previous run; not an error for the server.
			utils.Warn("skipping seed auction", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
		}
	}
}

// retryConfig returns the coordinator retry settings from env or defaults
func retryConfig() bidding.Config {
	cfg := bidding.DefaultConfig()
	if v := os.Getenv("BID_RETRY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
