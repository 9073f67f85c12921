// Package usecases contains application use cases for scheduling.
package usecases

import (
	"context"
	"fmt"
	"time"

	"coachdesk/internal/application/schedule/dto"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type BookAppointmentUseCase struct {
	scheduleRepo schedule.Repository
	studentRepo  student.Repository
	logger       logger.Interface
}

func NewBookAppointmentUseCase(
	scheduleRepo schedule.Repository,
	studentRepo student.Repository,
	logger logger.Interface,
) *BookAppointmentUseCase {
	return &BookAppointmentUseCase{
		scheduleRepo: scheduleRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

type BookAppointmentCommand struct {
	TrainerID       uint
	StudentID       uint
	ScheduledAt     time.Time
	DurationMinutes int
	Notes           string
}

func (uc *BookAppointmentUseCase) Execute(ctx context.Context, cmd BookAppointmentCommand) (*dto.AppointmentDTO, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if s.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Student belongs to another trainer")
	}
	if s.Status() != student.StatusActive {
		return nil, errors.NewValidationError("cannot book an appointment for an inactive student")
	}

	a, err := schedule.NewAppointment(cmd.TrainerID, cmd.StudentID, cmd.ScheduledAt, cmd.DurationMinutes, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Reject double-booking against the trainer's existing booked slots.
	end := cmd.ScheduledAt.Add(time.Duration(cmd.DurationMinutes) * time.Minute)
	existing, err := uc.scheduleRepo.ListByTrainerID(ctx, cmd.TrainerID, cmd.ScheduledAt.Add(-24*time.Hour), end)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	for _, other := range existing {
		if other.Status() != schedule.StatusBooked {
			continue
		}
		otherEnd := other.ScheduledAt().Add(time.Duration(other.DurationMinutes()) * time.Minute)
		if cmd.ScheduledAt.Before(otherEnd) && other.ScheduledAt().Before(end) {
			return nil, errors.NewConflictError(
				fmt.Sprintf("overlaps appointment %d at %s", other.ID(), other.ScheduledAt().Format(time.RFC3339)))
		}
	}

	if err := uc.scheduleRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	uc.logger.Infow("appointment booked",
		"appointment_id", a.ID(),
		"student_id", cmd.StudentID,
		"scheduled_at", cmd.ScheduledAt,
	)

	return dto.ToAppointmentDTO(a), nil
}
