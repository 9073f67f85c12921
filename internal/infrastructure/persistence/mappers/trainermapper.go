package mappers

import (
	"fmt"

	"coachdesk/internal/domain/trainer"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/infrastructure/persistence/models"
)

func TrainerToModel(t *trainer.Trainer) *models.TrainerModel {
	return &models.TrainerModel{
		ID:              t.ID(),
		Email:           t.Email(),
		Name:            t.Name(),
		PasswordHash:    t.PasswordHash(),
		Plan:            t.Plan().String(),
		BillingStatus:   t.BillingStatus().String(),
		CustomerID:      t.CustomerID(),
		SubscriptionID:  t.SubscriptionID(),
		BillingCycleEnd: t.BillingCycleEnd(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func TrainerToDomain(model *models.TrainerModel) (*trainer.Trainer, error) {
	plan, err := vo.NewPlan(model.Plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan in storage: %w", err)
	}

	status := vo.BillingStatus(model.BillingStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid billing status in storage: %s", model.BillingStatus)
	}

	return trainer.ReconstructTrainer(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		plan,
		status,
		model.CustomerID,
		model.SubscriptionID,
		model.BillingCycleEnd,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
