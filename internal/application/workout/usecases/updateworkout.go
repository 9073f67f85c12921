package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"coachdesk/internal/application/workout/dto"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type UpdateWorkoutUseCase struct {
	workoutRepo  workout.Repository
	exerciseRepo exercise.Repository
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewUpdateWorkoutUseCase(
	workoutRepo workout.Repository,
	exerciseRepo exercise.Repository,
	logger logger.Interface,
) *UpdateWorkoutUseCase {
	return &UpdateWorkoutUseCase{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

type UpdateWorkoutCommand struct {
	TrainerID uint
	WorkoutID uint
	Name      *string
	Notes     *string
	Items     []dto.WorkoutItemDTO // nil leaves items unchanged
}

func (uc *UpdateWorkoutUseCase) Execute(ctx context.Context, cmd UpdateWorkoutCommand) (*dto.WorkoutDTO, error) {
	w, err := uc.workoutRepo.GetByID(ctx, cmd.WorkoutID)
	if err != nil {
		return nil, err
	}
	if w.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Workout belongs to another trainer")
	}

	name := w.Name()
	notes := w.Notes()
	items := w.Items()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Notes != nil {
		notes = uc.sanitizer.Sanitize(*cmd.Notes)
	}
	if cmd.Items != nil {
		items = dto.ToItems(cmd.Items)
		for _, item := range items {
			e, err := uc.exerciseRepo.GetByID(ctx, item.ExerciseID)
			if err != nil {
				if errors.IsNotFoundError(err) {
					return nil, errors.NewValidationError(fmt.Sprintf("exercise %d does not exist", item.ExerciseID))
				}
				return nil, err
			}
			if e.TrainerID() != cmd.TrainerID {
				return nil, errors.NewForbiddenError("Exercise belongs to another trainer")
			}
		}
	}

	if err := w.Update(name, notes, items); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workoutRepo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}

	return dto.ToWorkoutDTO(w), nil
}
