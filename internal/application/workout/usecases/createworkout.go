// Package usecases contains application use cases for workout management.
package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"coachdesk/internal/application/workout/dto"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type CreateWorkoutUseCase struct {
	workoutRepo  workout.Repository
	studentRepo  student.Repository
	exerciseRepo exercise.Repository
	hasher       *auth.BcryptPasswordHasher
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewCreateWorkoutUseCase(
	workoutRepo workout.Repository,
	studentRepo student.Repository,
	exerciseRepo exercise.Repository,
	hasher *auth.BcryptPasswordHasher,
	logger logger.Interface,
) *CreateWorkoutUseCase {
	return &CreateWorkoutUseCase{
		workoutRepo:  workoutRepo,
		studentRepo:  studentRepo,
		exerciseRepo: exerciseRepo,
		hasher:       hasher,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

type CreateWorkoutCommand struct {
	TrainerID     uint
	StudentID     uint
	Name          string
	Notes         string
	Items         []dto.WorkoutItemDTO
	SharePassword string
}

func (uc *CreateWorkoutUseCase) Execute(ctx context.Context, cmd CreateWorkoutCommand) (*dto.WorkoutDTO, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if s.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Student belongs to another trainer")
	}

	items := dto.ToItems(cmd.Items)
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

	notes := uc.sanitizer.Sanitize(cmd.Notes)
	w, err := workout.NewWorkout(cmd.TrainerID, cmd.StudentID, cmd.Name, notes, items)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.SharePassword != "" {
		hash, err := uc.hasher.Hash(cmd.SharePassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash share password: %w", err)
		}
		if err := w.SetSharePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.workoutRepo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	uc.logger.Infow("workout created",
		"workout_id", w.ID(),
		"student_id", cmd.StudentID,
		"trainer_id", cmd.TrainerID,
		"items", len(items),
	)

	return dto.ToWorkoutDTO(w), nil
}
