package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/student/dto"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/shared/logger"
)

type ListStudentsUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewListStudentsUseCase(studentRepo student.Repository, logger logger.Interface) *ListStudentsUseCase {
	return &ListStudentsUseCase{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

type ListStudentsCommand struct {
	TrainerID uint
	Page      int
	PageSize  int
}

type ListStudentsResult struct {
	Students []dto.StudentDTO
	Total    int64
	Page     int
	PageSize int
}

func (uc *ListStudentsUseCase) Execute(ctx context.Context, cmd ListStudentsCommand) (*ListStudentsResult, error) {
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	students, total, err := uc.studentRepo.ListByTrainerID(ctx, cmd.TrainerID, cmd.Page, cmd.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return &ListStudentsResult{
		Students: dto.ToStudentDTOs(students),
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
