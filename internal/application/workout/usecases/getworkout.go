package usecases

import (
	"context"

	"coachdesk/internal/application/workout/dto"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type GetWorkoutUseCase struct {
	workoutRepo workout.Repository
	logger      logger.Interface
}

func NewGetWorkoutUseCase(workoutRepo workout.Repository, logger logger.Interface) *GetWorkoutUseCase {
	return &GetWorkoutUseCase{
		workoutRepo: workoutRepo,
		logger:      logger,
	}
}

type GetWorkoutCommand struct {
	TrainerID uint
	WorkoutID uint
}

func (uc *GetWorkoutUseCase) Execute(ctx context.Context, cmd GetWorkoutCommand) (*dto.WorkoutDTO, error) {
	w, err := uc.workoutRepo.GetByID(ctx, cmd.WorkoutID)
	if err != nil {
		return nil, err
	}
	if w.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Workout belongs to another trainer")
	}
	return dto.ToWorkoutDTO(w), nil
}
