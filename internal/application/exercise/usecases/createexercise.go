// Package usecases contains application use cases for the exercise library.
package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/exercise/dto"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type CreateExerciseUseCase struct {
	exerciseRepo exercise.Repository
	logger       logger.Interface
}

func NewCreateExerciseUseCase(exerciseRepo exercise.Repository, logger logger.Interface) *CreateExerciseUseCase {
	return &CreateExerciseUseCase{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

type CreateExerciseCommand struct {
	TrainerID   uint
	Name        string
	MuscleGroup string
	Description string
	VideoURL    string
}

func (uc *CreateExerciseUseCase) Execute(ctx context.Context, cmd CreateExerciseCommand) (*dto.ExerciseDTO, error) {
	e, err := exercise.NewExercise(cmd.TrainerID, cmd.Name, cmd.MuscleGroup, cmd.Description, cmd.VideoURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.exerciseRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	uc.logger.Infow("exercise created", "exercise_id", e.ID(), "trainer_id", cmd.TrainerID)
	return dto.ToExerciseDTO(e), nil
}
