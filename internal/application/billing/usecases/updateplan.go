package usecases

import (
	"context"
	"fmt"
	"strings"

	"coachdesk/internal/application/billing/dto"
	"coachdesk/internal/domain/trainer"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// UpdatePlanUseCase changes a trainer's plan tier. The plan value is checked
// against the fixed enumeration before anything is persisted: an unknown tier
// is rejected with field-level messages and leaves the trainer untouched.
type UpdatePlanUseCase struct {
	trainerRepo trainer.Repository
	logger      logger.Interface
}

func NewUpdatePlanUseCase(trainerRepo trainer.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		trainerRepo: trainerRepo,
		logger:      logger,
	}
}

type UpdatePlanCommand struct {
	TrainerID uint
	Plan      string
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.BillingStateDTO, error) {
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

	if t.Plan() == plan {
		return dto.ToBillingStateDTO(t), nil
	}

	if err := t.ChangePlan(plan); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.trainerRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan changed", "trainer_id", t.ID(), "plan", plan.String())
	return dto.ToBillingStateDTO(t), nil
}
