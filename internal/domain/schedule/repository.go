package schedule

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, appointment *Appointment) error
	Update(ctx context.Context, appointment *Appointment) error
	GetByID(ctx context.Context, id uint) (*Appointment, error)
	ListByTrainerID(ctx context.Context, trainerID uint, from, to time.Time) ([]*Appointment, error)
	ListByStudentID(ctx context.Context, studentID uint) ([]*Appointment, error)
}
