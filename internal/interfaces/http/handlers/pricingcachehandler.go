package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/infrastructure/cache"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

// PricingCacheHandler is the admin surface for the pricing cache: a status
// probe and an explicit invalidation endpoint.
type PricingCacheHandler struct {
	pricingCache *cache.PricingCache
	logger       logger.Interface
}

func NewPricingCacheHandler(pricingCache *cache.PricingCache, logger logger.Interface) *PricingCacheHandler {
	return &PricingCacheHandler{
		pricingCache: pricingCache,
		logger:       logger,
	}
}

// Status returns the cache validity and fetch metadata.
func (h *PricingCacheHandler) Status(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Pricing cache status", h.pricingCache.Stats())
}

// Clear invalidates the cached price listing; the next read re-fetches.
func (h *PricingCacheHandler) Clear(c *gin.Context) {
	h.pricingCache.Clear()
	h.logger.Infow("pricing cache cleared")
	utils.SuccessResponse(c, http.StatusOK, "Pricing cache cleared", nil)
}
