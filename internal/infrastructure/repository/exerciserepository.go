package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/infrastructure/persistence/mappers"
	"coachdesk/internal/infrastructure/persistence/models"
	"coachdesk/internal/shared/db"
	apperrors "coachdesk/internal/shared/errors"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, e *exercise.Exercise) error {
	model := mappers.ExerciseToModel(e)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *ExerciseRepository) Update(ctx context.Context, e *exercise.Exercise) error {
	model := mappers.ExerciseToModel(e)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"muscle_group": model.MuscleGroup,
			"description":  model.Description,
			"video_url":    model.VideoURL,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update exercise: %w", result.Error)
	}

	return nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ExerciseModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete exercise: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Exercise not found")
	}
	return nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id uint) (*exercise.Exercise, error) {
	var model models.ExerciseModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Exercise not found")
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	return mappers.ExerciseToDomain(&model)
}

func (r *ExerciseRepository) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*exercise.Exercise, int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("trainer_id = ?", trainerID)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	var exerciseModels []models.ExerciseModel
	if err := tx.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&exerciseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list exercises: %w", err)
	}

	exercises := make([]*exercise.Exercise, 0, len(exerciseModels))
	for i := range exerciseModels {
		e, err := mappers.ExerciseToDomain(&exerciseModels[i])
		if err != nil {
			return nil, 0, err
		}
		exercises = append(exercises, e)
	}

	return exercises, total, nil
}
