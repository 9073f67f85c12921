package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/persistence/mappers"
	"coachdesk/internal/infrastructure/persistence/models"
	"coachdesk/internal/shared/db"
	apperrors "coachdesk/internal/shared/errors"
)

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, w *workout.Workout) error {
	model, err := mappers.WorkoutToModel(w)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}

	return w.SetID(model.ID)
}

func (r *WorkoutRepository) Update(ctx context.Context, w *workout.Workout) error {
	model, err := mappers.WorkoutToModel(w)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.WorkoutModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"notes":         model.Notes,
			"items":         model.Items,
			"password_hash": model.PasswordHash,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update workout: %w", result.Error)
	}

	return nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.WorkoutModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Workout not found")
	}
	return nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id uint) (*workout.Workout, error) {
	var model models.WorkoutModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Workout not found")
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return mappers.WorkoutToDomain(&model)
}

func (r *WorkoutRepository) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*workout.Workout, int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.WorkoutModel{}).
		Where("trainer_id = ?", trainerID)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count workouts: %w", err)
	}

	var workoutModels []models.WorkoutModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&workoutModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list workouts: %w", err)
	}

	workouts := make([]*workout.Workout, 0, len(workoutModels))
	for i := range workoutModels {
		w, err := mappers.WorkoutToDomain(&workoutModels[i])
		if err != nil {
			return nil, 0, err
		}
		workouts = append(workouts, w)
	}

	return workouts, total, nil
}

func (r *WorkoutRepository) ListByStudentID(ctx context.Context, studentID uint) ([]*workout.Workout, error) {
	var workoutModels []models.WorkoutModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&workoutModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list workouts by student: %w", err)
	}

	workouts := make([]*workout.Workout, 0, len(workoutModels))
	for i := range workoutModels {
		w, err := mappers.WorkoutToDomain(&workoutModels[i])
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	return workouts, nil
}
