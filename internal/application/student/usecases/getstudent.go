package usecases

import (
	"context"

	"coachdesk/internal/application/student/dto"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type GetStudentUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewGetStudentUseCase(studentRepo student.Repository, logger logger.Interface) *GetStudentUseCase {
	return &GetStudentUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

type GetStudentCommand struct {
	TrainerID uint
	StudentID uint
}

func (uc *GetStudentUseCase) Execute(ctx context.Context, cmd GetStudentCommand) (*dto.StudentDTO, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if s.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Student belongs to another trainer")
	}
	return dto.ToStudentDTO(s), nil
}
