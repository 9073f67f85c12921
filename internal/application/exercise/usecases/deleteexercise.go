package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type DeleteExerciseUseCase struct {
	exerciseRepo exercise.Repository
	logger       logger.Interface
}

func NewDeleteExerciseUseCase(exerciseRepo exercise.Repository, logger logger.Interface) *DeleteExerciseUseCase {
	return &DeleteExerciseUseCase{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

type DeleteExerciseCommand struct {
	TrainerID  uint
	ExerciseID uint
}

func (uc *DeleteExerciseUseCase) Execute(ctx context.Context, cmd DeleteExerciseCommand) error {
	e, err := uc.exerciseRepo.GetByID(ctx, cmd.ExerciseID)
	if err != nil {
		return err
	}
	if e.TrainerID() != cmd.TrainerID {
		return errors.NewForbiddenError("Exercise belongs to another trainer")
	}

	if err := uc.exerciseRepo.Delete(ctx, cmd.ExerciseID); err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	uc.logger.Infow("exercise deleted", "exercise_id", cmd.ExerciseID, "trainer_id", cmd.TrainerID)
	return nil
}
