package mappers

import (
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/infrastructure/persistence/models"
)

func AppointmentToModel(a *schedule.Appointment) *models.AppointmentModel {
	return &models.AppointmentModel{
		ID:              a.ID(),
		TrainerID:       a.TrainerID(),
		StudentID:       a.StudentID(),
		ScheduledAt:     a.ScheduledAt(),
		DurationMinutes: a.DurationMinutes(),
		Status:          string(a.Status()),
		Notes:           a.Notes(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
}

func AppointmentToDomain(model *models.AppointmentModel) (*schedule.Appointment, error) {
	return schedule.ReconstructAppointment(
		model.ID,
		model.TrainerID,
		model.StudentID,
		model.ScheduledAt,
		model.DurationMinutes,
		schedule.Status(model.Status),
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
