package server

import (
	bidding "github.com/mikemacmadeit/wildlife-auction-sub007/internal/biddingService"
	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/notifier"
	handler "github.com/mikemacmadeit/wildlife-auction-sub007/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(coordinator *bidding.BidCoordinator, dispatcher *notifier.Dispatcher) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(coordinator, dispatcher)

	auctions := router.Group("/auctions")
	{
		auctions.POST("/:auction_id/bids", biddingHandler.PlaceBidHandler)
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidLogHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningHandler)
	}

	return router
}
