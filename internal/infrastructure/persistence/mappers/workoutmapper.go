package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/persistence/models"
)

func WorkoutToModel(w *workout.Workout) (*models.WorkoutModel, error) {
	items, err := json.Marshal(w.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workout items: %w", err)
	}

	return &models.WorkoutModel{
		ID:           w.ID(),
		TrainerID:    w.TrainerID(),
		StudentID:    w.StudentID(),
		Name:         w.Name(),
		Notes:        w.Notes(),
		Items:        datatypes.JSON(items),
		PasswordHash: w.PasswordHash(),
		CreatedAt:    w.CreatedAt(),
		UpdatedAt:    w.UpdatedAt(),
	}, nil
}

func WorkoutToDomain(model *models.WorkoutModel) (*workout.Workout, error) {
	var items []workout.Item
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workout items: %w", err)
		}
	}

	return workout.ReconstructWorkout(
		model.ID,
		model.TrainerID,
		model.StudentID,
		model.Name,
		model.Notes,
		items,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
