package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"coachdesk/internal/application/student/dto"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/trainer"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/infrastructure/email"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type CreateStudentUseCase struct {
	studentRepo  student.Repository
	trainerRepo  trainer.Repository
	hasher       *auth.BcryptPasswordHasher
	emailService email.Service
	sanitizer    *bluemonday.Policy
	baseURL      string
	logger       logger.Interface
}

func NewCreateStudentUseCase(
	studentRepo student.Repository,
	trainerRepo trainer.Repository,
	hasher *auth.BcryptPasswordHasher,
	emailService email.Service,
	baseURL string,
	logger logger.Interface,
) *CreateStudentUseCase {
	return &CreateStudentUseCase{
		studentRepo:  studentRepo,
		trainerRepo:  trainerRepo,
		hasher:       hasher,
		emailService: emailService,
		sanitizer:    bluemonday.StrictPolicy(),
		baseURL:      baseURL,
		logger:       logger,
	}
}

type CreateStudentCommand struct {
	TrainerID      uint
	Name           string
	Email          string
	Notes          string
	PortalPassword string // optional; empty means the portal is ungated
}

func (uc *CreateStudentUseCase) Execute(ctx context.Context, cmd CreateStudentCommand) (*dto.StudentDTO, error) {
	t, err := uc.trainerRepo.GetByID(ctx, cmd.TrainerID)
	if err != nil {
		return nil, err
	}

	if limit := t.Plan().MaxStudents(); limit > 0 {
		count, err := uc.studentRepo.CountByTrainerID(ctx, cmd.TrainerID)
		if err != nil {
			return nil, fmt.Errorf("failed to count students: %w", err)
		}
		if count >= int64(limit) {
			return nil, errors.NewForbiddenError(
				fmt.Sprintf("The %s plan allows up to %d active students", t.Plan(), limit),
				"Upgrade the plan to add more students")
		}
	}

	s, err := student.NewStudent(cmd.TrainerID, cmd.Name, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Notes != "" {
		if err := s.UpdateProfile(s.Name(), s.Email(), uc.sanitizer.Sanitize(cmd.Notes)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.PortalPassword != "" {
		hash, err := uc.hasher.Hash(cmd.PortalPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash portal password: %w", err)
		}
		if err := s.SetPortalPassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.studentRepo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	if s.Email() != "" {
		portalURL := fmt.Sprintf("%s/portal/students/%d", uc.baseURL, s.ID())
		if err := uc.emailService.SendStudentInvite(s.Email(), s.Name(), t.Name(), portalURL); err != nil {
			uc.logger.Warnw("failed to send student invite", "student_id", s.ID(), "error", err)
		}
	}

	uc.logger.Infow("student created", "student_id", s.ID(), "trainer_id", cmd.TrainerID)

	return dto.ToStudentDTO(s), nil
}
