package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coachdesk/internal/domain/trainer"
	"coachdesk/internal/infrastructure/persistence/mappers"
	"coachdesk/internal/infrastructure/persistence/models"
	"coachdesk/internal/shared/db"
	apperrors "coachdesk/internal/shared/errors"
)

type TrainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) Create(ctx context.Context, t *trainer.Trainer) error {
	model := mappers.TrainerToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return t.SetID(model.ID)
}

func (r *TrainerRepository) Update(ctx context.Context, t *trainer.Trainer) error {
	model := mappers.TrainerToModel(t)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TrainerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":              model.Name,
			"password_hash":     model.PasswordHash,
			"plan":              model.Plan,
			"billing_status":    model.BillingStatus,
			"customer_id":       model.CustomerID,
			"subscription_id":   model.SubscriptionID,
			"billing_cycle_end": model.BillingCycleEnd,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update trainer: %w", result.Error)
	}

	return nil
}

func (r *TrainerRepository) GetByID(ctx context.Context, id uint) (*trainer.Trainer, error) {
	var model models.TrainerModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Trainer not found")
		}
		return nil, fmt.Errorf("failed to get trainer: %w", err)
	}

	return mappers.TrainerToDomain(&model)
}

func (r *TrainerRepository) GetByEmail(ctx context.Context, email string) (*trainer.Trainer, error) {
	var model models.TrainerModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Trainer not found")
		}
		return nil, fmt.Errorf("failed to get trainer by email: %w", err)
	}

	return mappers.TrainerToDomain(&model)
}

func (r *TrainerRepository) GetByCustomerID(ctx context.Context, customerID string) (*trainer.Trainer, error) {
	var model models.TrainerModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("customer_id = ?", customerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Trainer not found")
		}
		return nil, fmt.Errorf("failed to get trainer by customer_id: %w", err)
	}

	return mappers.TrainerToDomain(&model)
}
