package usecases

import (
	"context"
	"fmt"
	"time"

	"coachdesk/internal/application/schedule/dto"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/shared/logger"
)

type ListAppointmentsUseCase struct {
	scheduleRepo schedule.Repository
	logger       logger.Interface
}

func NewListAppointmentsUseCase(scheduleRepo schedule.Repository, logger logger.Interface) *ListAppointmentsUseCase {
	return &ListAppointmentsUseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

type ListAppointmentsCommand struct {
	TrainerID uint
	From      time.Time
	To        time.Time
}

func (uc *ListAppointmentsUseCase) Execute(ctx context.Context, cmd ListAppointmentsCommand) ([]dto.AppointmentDTO, error) {
	// Default to the coming week.
	if cmd.From.IsZero() {
		cmd.From = time.Now().UTC()
	}
	if cmd.To.IsZero() {
		cmd.To = cmd.From.AddDate(0, 0, 7)
	}
	if cmd.To.Before(cmd.From) {
		cmd.From, cmd.To = cmd.To, cmd.From
	}

	appointments, err := uc.scheduleRepo.ListByTrainerID(ctx, cmd.TrainerID, cmd.From, cmd.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return dto.ToAppointmentDTOs(appointments), nil
}
