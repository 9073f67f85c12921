package usecases

import (
	"context"

	"coachdesk/internal/application/billing/dto"
	"coachdesk/internal/application/billing/gateway"
	"coachdesk/internal/domain/trainer"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// SyncSubscriptionUseCase polls the gateway directly and reconciles the
// trainer's billing state, as a fallback when webhook delivery is in doubt.
type SyncSubscriptionUseCase struct {
	trainerRepo trainer.Repository
	gateway     gateway.BillingGateway
	logger      logger.Interface
}

func NewSyncSubscriptionUseCase(
	trainerRepo trainer.Repository,
	gw gateway.BillingGateway,
	logger logger.Interface,
) *SyncSubscriptionUseCase {
	return &SyncSubscriptionUseCase{
		trainerRepo: trainerRepo,
		gateway:     gw,
		logger:      logger,
	}
}

type SyncSubscriptionCommand struct {
	TrainerID uint
}

func (uc *SyncSubscriptionUseCase) Execute(ctx context.Context, cmd SyncSubscriptionCommand) (*dto.BillingStateDTO, error) {
	t, err := uc.trainerRepo.GetByID(ctx, cmd.TrainerID)
	if err != nil {
		return nil, err
	}
	if t.SubscriptionID() == nil || *t.SubscriptionID() == "" {
		return nil, errors.NewValidationError("trainer has no subscription to sync")
	}

	info, err := uc.gateway.GetSubscription(ctx, *t.SubscriptionID())
	if err != nil {
		uc.logger.Errorw("subscription poll failed", "trainer_id", t.ID(), "error", err)
		return nil, errors.NewExternalServiceError("failed to poll subscription", err.Error())
	}

	status := vo.BillingStatus(info.Status)
	plan, err := vo.NewPlan(info.Plan)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.ApplyBillingSync(info.CustomerID, info.SubscriptionID, status, plan, info.BillingCycleEnd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.trainerRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription synced from gateway",
		"trainer_id", t.ID(),
		"plan", plan.String(),
		"status", status.String(),
	)

	return dto.ToBillingStateDTO(t), nil
}
