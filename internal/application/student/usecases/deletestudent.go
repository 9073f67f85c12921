package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/shared/db"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// DeleteStudentUseCase removes a student and their workouts in a single
// transaction, so no orphaned workouts survive a partial failure.
type DeleteStudentUseCase struct {
	studentRepo student.Repository
	workoutRepo workout.Repository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewDeleteStudentUseCase(
	studentRepo student.Repository,
	workoutRepo workout.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteStudentUseCase {
	return &DeleteStudentUseCase{
		studentRepo: studentRepo,
		workoutRepo: workoutRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

type DeleteStudentCommand struct {
	TrainerID uint
	StudentID uint
}

func (uc *DeleteStudentUseCase) Execute(ctx context.Context, cmd DeleteStudentCommand) error {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return err
	}
	if s.TrainerID() != cmd.TrainerID {
		return errors.NewForbiddenError("Student belongs to another trainer")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		workouts, err := uc.workoutRepo.ListByStudentID(txCtx, cmd.StudentID)
		if err != nil {
			return err
		}
		for _, w := range workouts {
			if err := uc.workoutRepo.Delete(txCtx, w.ID()); err != nil {
				return err
			}
		}
		return uc.studentRepo.Delete(txCtx, cmd.StudentID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	uc.logger.Infow("student deleted", "student_id", cmd.StudentID, "trainer_id", cmd.TrainerID)
	return nil
}
