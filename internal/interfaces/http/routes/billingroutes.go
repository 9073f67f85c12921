package routes

import (
	"github.com/gin-gonic/gin"

	"coachdesk/internal/interfaces/http/handlers"
	"coachdesk/internal/interfaces/http/middleware"
)

type BillingRouteConfig struct {
	BillingHandler      *handlers.BillingHandler
	PricingCacheHandler *handlers.PricingCacheHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	billing := engine.Group("/billing")
	{
		// Webhook authenticates itself via the gateway signature.
		billing.POST("/webhook", cfg.BillingHandler.Webhook)
		billing.GET("/pricing", cfg.BillingHandler.GetPricing)

		billing.PUT("/plan", cfg.AuthMiddleware.RequireAuth(), cfg.BillingHandler.UpdatePlan)
		billing.POST("/checkout", cfg.AuthMiddleware.RequireAuth(), cfg.BillingHandler.CreateCheckout)
		billing.POST("/sync", cfg.AuthMiddleware.RequireAuth(), cfg.BillingHandler.SyncSubscription)
	}

	admin := engine.Group("/admin", cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/pricing-cache", cfg.PricingCacheHandler.Status)
		admin.DELETE("/pricing-cache", cfg.PricingCacheHandler.Clear)
	}
}
