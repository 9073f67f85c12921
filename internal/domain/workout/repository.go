package workout

import "context"

type Repository interface {
	Create(ctx context.Context, workout *Workout) error
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Workout, error)
	ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*Workout, int64, error)
	ListByStudentID(ctx context.Context, studentID uint) ([]*Workout, error)
}
