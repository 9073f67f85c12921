package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/exercise/dto"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/shared/logger"
)

type ListExercisesUseCase struct {
	exerciseRepo exercise.Repository
	logger       logger.Interface
}

func NewListExercisesUseCase(exerciseRepo exercise.Repository, logger logger.Interface) *ListExercisesUseCase {
	return &ListExercisesUseCase{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

type ListExercisesCommand struct {
	TrainerID uint
	Page      int
	PageSize  int
}

type ListExercisesResult struct {
	Exercises []dto.ExerciseDTO
	Total     int64
	Page      int
	PageSize  int
}

func (uc *ListExercisesUseCase) Execute(ctx context.Context, cmd ListExercisesCommand) (*ListExercisesResult, error) {
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	exercises, total, err := uc.exerciseRepo.ListByTrainerID(ctx, cmd.TrainerID, cmd.Page, cmd.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return &ListExercisesResult{
		Exercises: dto.ToExerciseDTOs(exercises),
		Total:     total,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
	}, nil
}
