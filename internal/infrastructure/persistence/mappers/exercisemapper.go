package mappers

import (
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/infrastructure/persistence/models"
)

func ExerciseToModel(e *exercise.Exercise) *models.ExerciseModel {
	return &models.ExerciseModel{
		ID:          e.ID(),
		TrainerID:   e.TrainerID(),
		Name:        e.Name(),
		MuscleGroup: e.MuscleGroup(),
		Description: e.Description(),
		VideoURL:    e.VideoURL(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func ExerciseToDomain(model *models.ExerciseModel) (*exercise.Exercise, error) {
	return exercise.ReconstructExercise(
		model.ID,
		model.TrainerID,
		model.Name,
		model.MuscleGroup,
		model.Description,
		model.VideoURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
