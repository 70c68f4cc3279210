package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/crosslot/auction-house/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auction endpoints (public read access)
		v1.GET("/auctions", handler.ListAuctions)
		v1.GET("/auctions/:id", handler.GetAuction)
		v1.GET("/auctions/:id/winner", handler.GetWinner)
		v1.GET("/auctions/:id/cross-chain-bids", handler.ListCrossChainBids)
		v1.GET("/auctions/:id/cross-chain-bids/:message_id", handler.GetCrossChainBid)

		// Auction lifecycle. Creation and release move custody and stay
		// authenticated; finalization is permissionless, anyone may settle
		// an auction whose end time has passed
		v1.POST("/auctions", middleware.Auth(authCfg), handler.CreateAuction)
		v1.POST("/auctions/:id/finalize", handler.FinalizeAuction)
		v1.POST("/auctions/:id/release", middleware.Auth(authCfg), handler.ReleaseAsset)

		// Bidding (open, funds are gated by escrow not by identity)
		v1.POST("/auctions/:id/bids/native", handler.PlaceBidNative)
		v1.POST("/auctions/:id/bids/token", handler.PlaceBidToken)

		// Outbound relay (requires authentication)
		v1.POST("/relay/bids", middleware.Auth(authCfg), handler.SendBid)
		v1.GET("/relay/messages", handler.ListOutboundMessages)

		// Refunds (pull-based, the payee address is the only input)
		v1.GET("/refunds/:address", handler.ListRefunds)
		v1.POST("/refunds/:address/withdraw", handler.WithdrawRefunds)

		// Vault deposits (requires API key authentication only)
		v1.POST("/escrow/deposits", middleware.APIKeyAuth(authCfg), handler.DepositFunds)

		// Allowlist administration (requires API key authentication only)
		v1.PUT("/allowlist", middleware.APIKeyAuth(authCfg), handler.SetAllowlistEntry)
		v1.GET("/allowlist/:kind", middleware.APIKeyAuth(authCfg), handler.ListAllowlist)
	}
}
