// Package schedule contains the appointment aggregate for trainer/student
// session scheduling.
package schedule

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Appointment struct {
	id              uint
	trainerID       uint
	studentID       uint
	scheduledAt     time.Time
	durationMinutes int
	status          Status
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewAppointment(trainerID, studentID uint, scheduledAt time.Time, durationMinutes int, notes string) (*Appointment, error) {
	if trainerID == 0 {
		return nil, fmt.Errorf("trainer ID is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if scheduledAt.IsZero() {
		return nil, fmt.Errorf("scheduled time is required")
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	now := time.Now().UTC()
	return &Appointment{
		trainerID:       trainerID,
		studentID:       studentID,
		scheduledAt:     scheduledAt.UTC(),
		durationMinutes: durationMinutes,
		status:          StatusBooked,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructAppointment(id, trainerID, studentID uint, scheduledAt time.Time,
	durationMinutes int, status Status, notes string, createdAt, updatedAt time.Time) (*Appointment, error) {

	if id == 0 {
		return nil, fmt.Errorf("appointment ID cannot be zero")
	}
	switch status {
	case StatusBooked, StatusCompleted, StatusCancelled:
	default:
		return nil, fmt.Errorf("invalid appointment status: %s", status)
	}

	return &Appointment{
		id:              id,
		trainerID:       trainerID,
		studentID:       studentID,
		scheduledAt:     scheduledAt,
		durationMinutes: durationMinutes,
		status:          status,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (a *Appointment) ID() uint              { return a.id }
func (a *Appointment) TrainerID() uint       { return a.trainerID }
func (a *Appointment) StudentID() uint       { return a.studentID }
func (a *Appointment) ScheduledAt() time.Time { return a.scheduledAt }
func (a *Appointment) DurationMinutes() int  { return a.durationMinutes }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) Notes() string         { return a.notes }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time  { return a.updatedAt }

func (a *Appointment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("appointment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("appointment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Complete marks a booked appointment as completed.
func (a *Appointment) Complete() error {
	if a.status != StatusBooked {
		return fmt.Errorf("cannot complete appointment in status %s", a.status)
	}
	a.status = StatusCompleted
	a.updatedAt = time.Now().UTC()
	return nil
}

// Cancel cancels a booked appointment.
func (a *Appointment) Cancel() error {
	if a.status != StatusBooked {
		return fmt.Errorf("cannot cancel appointment in status %s", a.status)
	}
	a.status = StatusCancelled
	a.updatedAt = time.Now().UTC()
	return nil
}
