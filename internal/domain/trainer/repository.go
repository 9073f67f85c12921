package trainer

import "context"

type Repository interface {
	Create(ctx context.Context, trainer *Trainer) error
	Update(ctx context.Context, trainer *Trainer) error
	GetByID(ctx context.Context, id uint) (*Trainer, error)
	GetByEmail(ctx context.Context, email string) (*Trainer, error)
	GetByCustomerID(ctx context.Context, customerID string) (*Trainer, error)
}
