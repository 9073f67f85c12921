package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/exercise/dto"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type UpdateExerciseUseCase struct {
	exerciseRepo exercise.Repository
	logger       logger.Interface
}

func NewUpdateExerciseUseCase(exerciseRepo exercise.Repository, logger logger.Interface) *UpdateExerciseUseCase {
	return &UpdateExerciseUseCase{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

type UpdateExerciseCommand struct {
	TrainerID   uint
	ExerciseID  uint
	Name        *string
	MuscleGroup *string
	Description *string
	VideoURL    *string
}

func (uc *UpdateExerciseUseCase) Execute(ctx context.Context, cmd UpdateExerciseCommand) (*dto.ExerciseDTO, error) {
	e, err := uc.exerciseRepo.GetByID(ctx, cmd.ExerciseID)
	if err != nil {
		return nil, err
	}
	if e.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Exercise belongs to another trainer")
	}

	name := e.Name()
	muscleGroup := e.MuscleGroup()
	description := e.Description()
	videoURL := e.VideoURL()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.MuscleGroup != nil {
		muscleGroup = *cmd.MuscleGroup
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}
	if cmd.VideoURL != nil {
		videoURL = *cmd.VideoURL
	}

	if err := e.Update(name, muscleGroup, description, videoURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.exerciseRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update exercise: %w", err)
	}

	return dto.ToExerciseDTO(e), nil
}
