package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	bidding "github.com/mikemacmadeit/wildlife-auction-sub007/internal/biddingService"
	model "github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/notifier"
	"github.com/mikemacmadeit/wildlife-auction-sub007/services/bidding/helpers"
	"github.com/mikemacmadeit/wildlife-auction-sub007/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, proposedMaxCents int64) (model.Outcome, error)
	GetAuction(auctionID string) (model.Auction, error)
	GetBidLog(auctionID string) ([]model.BidLogEntry, error)
	GetWinning(auctionID string) (bidding.WinningView, error)
}

type BiddingHandler struct {
	service    BiddingServiceInterface
	dispatcher *notifier.Dispatcher
}

func NewBiddingHandler(service BiddingServiceInterface, dispatcher *notifier.Dispatcher) *BiddingHandler {
	return &BiddingHandler{service: service, dispatcher: dispatcher}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	outcome, err := h.service.PlaceBid(c.Request.Context(), auctionID, req.BidderID, req.MaxBidCents)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if details := helpers.ErrorDetails(err); details != nil {
			utils.JSONErrorWithDetails(c, status, fmt.Errorf("%s: %w", message, err), message, details)
		} else {
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		}
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	// The bid is durable; notification is best effort and must never turn a
	// committed bid into an error response.
	h.notifyAfterCommit(auctionID, req.BidderID, outcome)

	resp := helpers.OutcomeResponse{
		AuctionID:               auctionID,
		NewPriceCents:           outcome.NewPriceCents,
		NewHighBidderID:         outcome.NewHighBidderID,
		PreviousHighBidderID:    outcome.PreviousHighBidderID,
		PriceMoved:              outcome.PriceMoved,
		HighBidderChanged:       outcome.HighBidderChanged,
		CallerResultingMaxCents: outcome.CallerResultingMaxCents,
		BidLogEntryIDs:          outcome.BidLogEntryIDs,
	}
	if resp.BidLogEntryIDs == nil {
		resp.BidLogEntryIDs = []string{}
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":          auctionID,
		"bidder_id":           req.BidderID,
		"new_price_cents":     outcome.NewPriceCents,
		"high_bidder_changed": outcome.HighBidderChanged,
	})
}

func (h *BiddingHandler) notifyAfterCommit(auctionID, callerID string, outcome model.Outcome) {
	if h.dispatcher == nil {
		return
	}
	sellerID := ""
	if a, err := h.service.GetAuction(auctionID); err == nil {
		sellerID = a.SellerID
	} else {
		utils.Warn("PlaceBidHandler: seller lookup for notification failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
	h.dispatcher.Dispatch(auctionID, sellerID, callerID, outcome)
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// GetBidLogHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidLogHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	entries, err := h.service.GetBidLog(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidLogHandler: error retrieving bid log", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, helpers.BidLogEntryResponse{
			BidLogID:    e.BidLogID,
			AuctionID:   e.AuctionID,
			BidderID:    e.BidderID,
			AmountCents: e.AmountCents,
			IsSynthetic: e.IsSynthetic,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid log retrieved successfully")
	helpers.LogSuccess("GetBidLogHandler", "bid log retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningHandler handles GET /auctions/:auction_id/winning
func (h *BiddingHandler) GetWinningHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	view, err := h.service.GetWinning(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningHandler: error retrieving standing", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction standing retrieved successfully")
	helpers.LogSuccess("GetWinningHandler", "auction standing retrieved successfully", map[string]any{
		"auction_id":          auctionID,
		"current_price_cents": view.CurrentPriceCents,
	})
}
