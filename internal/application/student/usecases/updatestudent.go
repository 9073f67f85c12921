package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"coachdesk/internal/application/student/dto"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type UpdateStudentUseCase struct {
	studentRepo student.Repository
	hasher      *auth.BcryptPasswordHasher
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

func NewUpdateStudentUseCase(
	studentRepo student.Repository,
	hasher *auth.BcryptPasswordHasher,
	logger logger.Interface,
) *UpdateStudentUseCase {
	return &UpdateStudentUseCase{
		studentRepo: studentRepo,
		hasher:      hasher,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

type UpdateStudentCommand struct {
	TrainerID uint
	StudentID uint
	Name      *string
	Email     *string
	Notes     *string
	Status    *string
	// PortalPassword: nil leaves the gate unchanged, empty string removes it,
	// anything else replaces it.
	PortalPassword *string
}

func (uc *UpdateStudentUseCase) Execute(ctx context.Context, cmd UpdateStudentCommand) (*dto.StudentDTO, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if s.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Student belongs to another trainer")
	}

	name := s.Name()
	email := s.Email()
	notes := s.Notes()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Email != nil {
		email = *cmd.Email
	}
	if cmd.Notes != nil {
		notes = uc.sanitizer.Sanitize(*cmd.Notes)
	}
	if err := s.UpdateProfile(name, email, notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Status != nil {
		switch student.Status(*cmd.Status) {
		case student.StatusActive:
			s.Activate()
		case student.StatusInactive:
			s.Deactivate()
		default:
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %s", *cmd.Status))
		}
	}

	if cmd.PortalPassword != nil {
		if *cmd.PortalPassword == "" {
			s.ClearPortalPassword()
		} else {
			hash, err := uc.hasher.Hash(*cmd.PortalPassword)
			if err != nil {
				return nil, fmt.Errorf("failed to hash portal password: %w", err)
			}
			if err := s.SetPortalPassword(hash); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	if err := uc.studentRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	uc.logger.Infow("student updated", "student_id", s.ID())

	return dto.ToStudentDTO(s), nil
}
