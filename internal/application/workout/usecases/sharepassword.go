package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/workout/dto"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// SetSharePasswordUseCase gates or ungates a workout's public share link.
type SetSharePasswordUseCase struct {
	workoutRepo workout.Repository
	hasher      *auth.BcryptPasswordHasher
	logger      logger.Interface
}

func NewSetSharePasswordUseCase(
	workoutRepo workout.Repository,
	hasher *auth.BcryptPasswordHasher,
	logger logger.Interface,
) *SetSharePasswordUseCase {
	return &SetSharePasswordUseCase{
		workoutRepo: workoutRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

type SetSharePasswordCommand struct {
	TrainerID uint
	WorkoutID uint
	// Password empty removes the gate.
	Password string
}

func (uc *SetSharePasswordUseCase) Execute(ctx context.Context, cmd SetSharePasswordCommand) (*dto.WorkoutDTO, error) {
	w, err := uc.workoutRepo.GetByID(ctx, cmd.WorkoutID)
	if err != nil {
		return nil, err
	}
	if w.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Workout belongs to another trainer")
	}

	if cmd.Password == "" {
		w.ClearSharePassword()
	} else {
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash share password: %w", err)
		}
		if err := w.SetSharePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.workoutRepo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}

	uc.logger.Infow("workout share password changed",
		"workout_id", w.ID(),
		"gated", w.RequiresPassword(),
	)

	return dto.ToWorkoutDTO(w), nil
}
