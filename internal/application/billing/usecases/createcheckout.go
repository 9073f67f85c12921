package usecases

import (
	"context"
	"fmt"
	"strings"

	"coachdesk/internal/application/billing/dto"
	"coachdesk/internal/application/billing/gateway"
	"coachdesk/internal/domain/trainer"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type CreateCheckoutUseCase struct {
	trainerRepo trainer.Repository
	gateway     gateway.BillingGateway
	logger      logger.Interface
}

func NewCreateCheckoutUseCase(
	trainerRepo trainer.Repository,
	gw gateway.BillingGateway,
	logger logger.Interface,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		trainerRepo: trainerRepo,
		gateway:     gw,
		logger:      logger,
	}
}

type CreateCheckoutCommand struct {
	TrainerID  uint
	Plan       string
	SuccessURL string
	CancelURL  string
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) (*dto.CheckoutSessionDTO, error) {
	plan, err := vo.NewPlan(cmd.Plan)
	if err != nil {
		return nil, errors.NewFieldValidationError("Invalid plan", []errors.FieldError{{
			Field: "plan",
			Message: fmt.Sprintf("plan must be one of: %s",
				strings.Join(vo.ValidPlanNames(), ", ")),
		}})
	}

	t, err := uc.trainerRepo.GetByID(ctx, cmd.TrainerID)
	if err != nil {
		return nil, err
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, gateway.CheckoutRequest{
		TrainerID:  t.ID(),
		Email:      t.Email(),
		Plan:       plan.String(),
		SuccessURL: cmd.SuccessURL,
		CancelURL:  cmd.CancelURL,
	})
	if err != nil {
		uc.logger.Errorw("checkout session creation failed", "trainer_id", t.ID(), "error", err)
		return nil, errors.NewExternalServiceError("failed to create checkout session", err.Error())
	}

	uc.logger.Infow("checkout session created",
		"trainer_id", t.ID(),
		"plan", plan.String(),
		"session_id", session.SessionID,
	)

	return &dto.CheckoutSessionDTO{
		SessionID:   session.SessionID,
		CheckoutURL: session.CheckoutURL,
	}, nil
}
