// Package dto contains data transfer objects for scheduling.
package dto

import (
	"time"

	"coachdesk/internal/domain/schedule"
)

type AppointmentDTO struct {
	ID              uint      `json:"id"`
	StudentID       uint      `json:"student_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToAppointmentDTO(a *schedule.Appointment) *AppointmentDTO {
	return &AppointmentDTO{
		ID:              a.ID(),
		StudentID:       a.StudentID(),
		ScheduledAt:     a.ScheduledAt(),
		DurationMinutes: a.DurationMinutes(),
		Status:          string(a.Status()),
		Notes:           a.Notes(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
}

func ToAppointmentDTOs(appointments []*schedule.Appointment) []AppointmentDTO {
	dtos := make([]AppointmentDTO, 0, len(appointments))
	for _, a := range appointments {
		dtos = append(dtos, *ToAppointmentDTO(a))
	}
	return dtos
}
