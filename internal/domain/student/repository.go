package student

import "context"

type Repository interface {
	Create(ctx context.Context, student *Student) error
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Student, error)
	ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*Student, int64, error)
	CountByTrainerID(ctx context.Context, trainerID uint) (int64, error)
}
