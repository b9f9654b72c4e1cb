package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auction"
	bidding "github.com/mikemacmadeit/wildlife-auction-sub007/internal/biddingService"
	model "github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/repository"
)

func benchAuction(auctionID string, startingPriceCents int64) model.Auction {
	return model.Auction{
		AuctionID:          auctionID,
		Status:             model.StatusActive,
		SellerID:           "seller_bench",
		Category:           "birds",
		ListingType:        model.ListingAuction,
		StartingPriceCents: startingPriceCents,
		StartAt:            time.Now().UTC(),
		Duration:           24 * time.Hour,
	}
}

func benchCoordinator(store repository.AuctionStore) *bidding.BidCoordinator {
	return bidding.NewBidCoordinator(store, auction.DefaultIncrementPolicy(), nil, time.Now, bidding.Config{
		MaxRetries:     10,
		RetryBaseDelay: time.Microsecond,
		RetryMaxDelay:  100 * time.Microsecond,
	})
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	store := repository.NewMemoryStore()
	svc := benchCoordinator(store)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		if err := store.CreateAuction(benchAuction(fmt.Sprintf("auction_%d", i), 1_000)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("bidder_%d", i)
		auctionID := fmt.Sprintf("auction_%d", i)
		if _, err := svc.PlaceBid(ctx, auctionID, bidderID, 1_000+rand.Int63n(10_000)); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	store := repository.NewMemoryStore()
	svc := benchCoordinator(store)

	if err := store.CreateAuction(benchAuction("shared_auction_1", 1_000)); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	// Every bidder proposes a strictly higher maximum so most attempts pass
	// validation and contend on the commit itself.
	var lastMax int64 = 1_000_000

	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("bidder_parallel_%d", rnd.Int())
			nextMax := atomic.AddInt64(&lastMax, rnd.Int63n(5_000)+5_000)
			_, _ = svc.PlaceBid(ctx, "shared_auction_1", bidderID, nextMax)
		}
	})
}

// Benchmark 3: Resolve - pure resolution cost over a growing proxy set
func Benchmark_Resolve_ProxySet(b *testing.B) {
	policy := auction.DefaultIncrementPolicy()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	bids := make([]model.ProxyBid, 64)
	for i := range bids {
		bids[i] = model.ProxyBid{
			AuctionID:   "auction1",
			BidderID:    fmt.Sprintf("bidder_%d", i),
			MaxBidCents: int64(10_000 + i*137),
			Enabled:     true,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auction.Resolve(policy, auction.ResolveInput{
			CurrentPriceCents:  10_000,
			StartingPriceCents: 10_000,
			CallerID:           "bidder_63",
			Bids:               bids,
		})
	}
}
