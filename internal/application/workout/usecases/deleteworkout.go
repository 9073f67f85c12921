package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/domain/workout"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type DeleteWorkoutUseCase struct {
	workoutRepo workout.Repository
	logger      logger.Interface
}

func NewDeleteWorkoutUseCase(workoutRepo workout.Repository, logger logger.Interface) *DeleteWorkoutUseCase {
	return &DeleteWorkoutUseCase{
		workoutRepo: workoutRepo,
		logger:      logger,
	}
}

type DeleteWorkoutCommand struct {
	TrainerID uint
	WorkoutID uint
}

func (uc *DeleteWorkoutUseCase) Execute(ctx context.Context, cmd DeleteWorkoutCommand) error {
	w, err := uc.workoutRepo.GetByID(ctx, cmd.WorkoutID)
	if err != nil {
		return err
	}
	if w.TrainerID() != cmd.TrainerID {
		return errors.NewForbiddenError("Workout belongs to another trainer")
	}

	if err := uc.workoutRepo.Delete(ctx, cmd.WorkoutID); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	uc.logger.Infow("workout deleted", "workout_id", cmd.WorkoutID, "trainer_id", cmd.TrainerID)
	return nil
}
