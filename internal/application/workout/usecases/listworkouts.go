package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/workout/dto"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/shared/logger"
)

type ListWorkoutsUseCase struct {
	workoutRepo workout.Repository
	logger      logger.Interface
}

func NewListWorkoutsUseCase(workoutRepo workout.Repository, logger logger.Interface) *ListWorkoutsUseCase {
	return &ListWorkoutsUseCase{
		workoutRepo: workoutRepo,
		logger:      logger,
	}
}

type ListWorkoutsCommand struct {
	TrainerID uint
	Page      int
	PageSize  int
}

type ListWorkoutsResult struct {
	Workouts []dto.WorkoutDTO
	Total    int64
	Page     int
	PageSize int
}

func (uc *ListWorkoutsUseCase) Execute(ctx context.Context, cmd ListWorkoutsCommand) (*ListWorkoutsResult, error) {
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	workouts, total, err := uc.workoutRepo.ListByTrainerID(ctx, cmd.TrainerID, cmd.Page, cmd.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return &ListWorkoutsResult{
		Workouts: dto.ToWorkoutDTOs(workouts),
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
