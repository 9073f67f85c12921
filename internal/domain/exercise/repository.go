package exercise

import "context"

type Repository interface {
	Create(ctx context.Context, exercise *Exercise) error
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Exercise, error)
	ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*Exercise, int64, error)
}
