package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/auction"
	bidding "github.com/mikemacmadeit/wildlife-auction-sub007/internal/biddingService"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/eligibility"
	model "github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/notifier"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/repository"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/server"
)

// SetupTestRouter initializes the full stack over an in-memory store for
// integration testing and returns the store for seeding and assertions.
func SetupTestRouter() (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()

	policy := eligibility.NewStaticPolicy()
	policy.RestrictCategory("raptors")
	policy.ClearBidder("licensed_falconer", "raptors")

	coordinator := bidding.NewBidCoordinator(store, auction.DefaultIncrementPolicy(), policy, time.Now, bidding.Config{
		MaxRetries:     20,
		RetryBaseDelay: time.Millisecond,
		RetryMaxDelay:  10 * time.Millisecond,
	})
	router := server.SetupRouter(coordinator, notifier.NewDispatcher())
	return router, store
}

// SeedAuction registers an active auction open until far in the future.
func SeedAuction(t *testing.T, store *repository.MemoryStore, auctionID, category string, startingPriceCents int64) {
	t.Helper()
	a := model.Auction{
		AuctionID:          auctionID,
		Status:             model.StatusActive,
		SellerID:           "seller1",
		Title:              "Integration listing",
		Category:           category,
		ListingType:        model.ListingAuction,
		StartingPriceCents: startingPriceCents,
		StartAt:            time.Now().UTC(),
		Duration:           24 * time.Hour,
	}
	if err := store.CreateAuction(a); err != nil {
		t.Fatalf("failed to seed auction: %v", err)
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
