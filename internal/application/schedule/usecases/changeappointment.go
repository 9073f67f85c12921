package usecases

import (
	"context"
	"fmt"

	"coachdesk/internal/application/schedule/dto"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

// ChangeAppointmentUseCase handles the booked -> completed/cancelled
// transitions.
type ChangeAppointmentUseCase struct {
	scheduleRepo schedule.Repository
	logger       logger.Interface
}

func NewChangeAppointmentUseCase(scheduleRepo schedule.Repository, logger logger.Interface) *ChangeAppointmentUseCase {
	return &ChangeAppointmentUseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

type ChangeAppointmentCommand struct {
	TrainerID     uint
	AppointmentID uint
}

func (uc *ChangeAppointmentUseCase) Complete(ctx context.Context, cmd ChangeAppointmentCommand) (*dto.AppointmentDTO, error) {
	return uc.transition(ctx, cmd, func(a *schedule.Appointment) error { return a.Complete() })
}

func (uc *ChangeAppointmentUseCase) Cancel(ctx context.Context, cmd ChangeAppointmentCommand) (*dto.AppointmentDTO, error) {
	return uc.transition(ctx, cmd, func(a *schedule.Appointment) error { return a.Cancel() })
}

func (uc *ChangeAppointmentUseCase) transition(ctx context.Context, cmd ChangeAppointmentCommand,
	change func(*schedule.Appointment) error) (*dto.AppointmentDTO, error) {

	a, err := uc.scheduleRepo.GetByID(ctx, cmd.AppointmentID)
	if err != nil {
		return nil, err
	}
	if a.TrainerID() != cmd.TrainerID {
		return nil, errors.NewForbiddenError("Appointment belongs to another trainer")
	}

	if err := change(a); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.scheduleRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	uc.logger.Infow("appointment status changed",
		"appointment_id", a.ID(),
		"status", a.Status(),
	)

	return dto.ToAppointmentDTO(a), nil
}
