package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coachdesk/internal/domain/trainer"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTrainerRepo struct {
	mock.Mock
}

func (m *mockTrainerRepo) Create(ctx context.Context, t *trainer.Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTrainerRepo) Update(ctx context.Context, t *trainer.Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTrainerRepo) GetByID(ctx context.Context, id uint) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*trainer.Trainer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTrainerRepo) GetByEmail(ctx context.Context, email string) (*trainer.Trainer, error) {
	args := m.Called(ctx, email)
	if t := args.Get(0); t != nil {
		return t.(*trainer.Trainer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTrainerRepo) GetByCustomerID(ctx context.Context, customerID string) (*trainer.Trainer, error) {
	args := m.Called(ctx, customerID)
	if t := args.Get(0); t != nil {
		return t.(*trainer.Trainer), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEventStore struct {
	mock.Mock
}

func (m *mockEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func testTrainer(t *testing.T, id uint, plan vo.Plan) *trainer.Trainer {
	t.Helper()
	tr, err := trainer.ReconstructTrainer(id, "coach@example.com", "Coach", "hash",
		plan, vo.BillingStatusTrialing, nil, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return tr
}
