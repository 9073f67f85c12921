package usecases

import (
	"context"

	"coachdesk/internal/application/billing/dto"
	"coachdesk/internal/infrastructure/cache"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// GetPricingUseCase serves the plan price listing through the single-entry
// pricing cache.
type GetPricingUseCase struct {
	pricingCache *cache.PricingCache
	logger       logger.Interface
}

func NewGetPricingUseCase(pricingCache *cache.PricingCache, logger logger.Interface) *GetPricingUseCase {
	return &GetPricingUseCase{
		pricingCache: pricingCache,
		logger:       logger,
	}
}

func (uc *GetPricingUseCase) Execute(ctx context.Context) (*dto.PricingDTO, error) {
	list, err := uc.pricingCache.Get(ctx)
	if err != nil {
		uc.logger.Errorw("price listing fetch failed", "error", err)
		return nil, errors.NewExternalServiceError("failed to load pricing", err.Error())
	}
	return dto.ToPricingDTO(list), nil
}
