package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coachdesk/internal/application/billing/gateway"
	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/infrastructure/cache"
	"coachdesk/internal/shared/errors"
)

func testEvent(eventID string) *gateway.BillingEvent {
	return &gateway.BillingEvent{
		EventID:         eventID,
		TrainerID:       1,
		CustomerID:      "cus_123",
		SubscriptionID:  "sub_456",
		Status:          "active",
		Plan:            "Pro",
		BillingCycleEnd: time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestApplyBillingEvent_AppliesSync(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	state, err := uc.Execute(context.Background(), testEvent("evt_1"))
	require.NoError(t, err)

	assert.Equal(t, "Pro", state.Plan)
	assert.Equal(t, "active", state.BillingStatus)
	require.NotNil(t, state.CustomerID)
	assert.Equal(t, "cus_123", *state.CustomerID)
	repo.AssertNumberOfCalls(t, "Update", 1)
}

func TestApplyBillingEvent_DuplicateLeavesStateUnchanged(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	first, err := uc.Execute(context.Background(), testEvent("evt_1"))
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), testEvent("evt_1"))
	require.NoError(t, err)

	assert.Equal(t, first.Plan, second.Plan)
	assert.Equal(t, first.BillingStatus, second.BillingStatus)
	repo.AssertNumberOfCalls(t, "Update", 1)
}

func TestApplyBillingEvent_StoreDownStillApplies(t *testing.T) {
	repo := new(mockTrainerRepo)
	store := new(mockEventStore)
	uc := NewApplyBillingEventUseCase(repo, store, testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	store.On("MarkProcessed", mock.Anything, "evt_1").
		Return(false, stderrors.New("connection refused"))

	state, err := uc.Execute(context.Background(), testEvent("evt_1"))
	require.NoError(t, err)
	assert.Equal(t, "Pro", state.Plan)
}

func TestApplyBillingEvent_ResolvesTrainerByCustomerID(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	event := testEvent("evt_2")
	event.TrainerID = 0

	repo.On("GetByCustomerID", mock.Anything, "cus_123").Return(testTrainer(t, 7, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	state, err := uc.Execute(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, uint(7), state.TrainerID)
}

func TestApplyBillingEvent_NoTrainerReference(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	event := testEvent("evt_3")
	event.TrainerID = 0
	event.CustomerID = ""

	_, err := uc.Execute(context.Background(), event)
	assert.True(t, errors.IsValidationError(err))
}

func TestApplyBillingEvent_InvalidStatusRejected(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	event := testEvent("evt_4")
	event.Status = "suspended"

	_, err := uc.Execute(context.Background(), event)
	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApplyBillingEvent_RetriesTransientPersistFailure(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(stderrors.New("deadlock")).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	state, err := uc.Execute(context.Background(), testEvent("evt_5"))
	require.NoError(t, err)
	assert.Equal(t, "Pro", state.Plan)
	repo.AssertNumberOfCalls(t, "Update", 2)
}

func TestApplyBillingEvent_TerminalErrorNotRetried(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewApplyBillingEventUseCase(repo, cache.NewMemoryBillingEventStore(), testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(errors.NewNotFoundError("trainer not found"))

	_, err := uc.Execute(context.Background(), testEvent("evt_6"))
	assert.True(t, errors.IsNotFoundError(err))
	repo.AssertNumberOfCalls(t, "Update", 1)
}
