package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vo "coachdesk/internal/domain/trainer/valueobjects"
	"coachdesk/internal/shared/errors"
)

func TestUpdatePlan_ChangesTier(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewUpdatePlanUseCase(repo, testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanStart), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	state, err := uc.Execute(context.Background(), UpdatePlanCommand{TrainerID: 1, Plan: "Elite"})
	require.NoError(t, err)

	assert.Equal(t, "Elite", state.Plan)
	repo.AssertNumberOfCalls(t, "Update", 1)
}

func TestUpdatePlan_UnknownTierRejectedWithFieldMessage(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewUpdatePlanUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanCommand{TrainerID: 1, Plan: "Premium"})
	require.Error(t, err)

	assert.True(t, errors.IsValidationError(err))
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "plan", appErr.Fields[0].Field)
	assert.Contains(t, appErr.Fields[0].Message, "Start, Pro, Elite")

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePlan_SamePlanIsNoOp(t *testing.T) {
	repo := new(mockTrainerRepo)
	uc := NewUpdatePlanUseCase(repo, testLogger())

	repo.On("GetByID", mock.Anything, uint(1)).Return(testTrainer(t, 1, vo.PlanPro), nil)

	state, err := uc.Execute(context.Background(), UpdatePlanCommand{TrainerID: 1, Plan: "Pro"})
	require.NoError(t, err)

	assert.Equal(t, "Pro", state.Plan)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
