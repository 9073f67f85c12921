package trainer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "coachdesk/internal/domain/trainer/valueobjects"
)

func TestNewTrainer_DefaultsToStartTrial(t *testing.T) {
	tr, err := NewTrainer("coach@example.com", "Coach", "hash")
	require.NoError(t, err)

	assert.Equal(t, vo.PlanStart, tr.Plan())
	assert.Equal(t, vo.BillingStatusTrialing, tr.BillingStatus())
	assert.Nil(t, tr.CustomerID())
}

func TestApplyBillingSync_SameEventTwiceLeavesStateUnchanged(t *testing.T) {
	tr, err := NewTrainer("coach@example.com", "Coach", "hash")
	require.NoError(t, err)

	cycleEnd := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, tr.ApplyBillingSync("cus_1", "sub_1",
		vo.BillingStatusActive, vo.PlanPro, cycleEnd))

	require.NoError(t, tr.ApplyBillingSync("cus_1", "sub_1",
		vo.BillingStatusActive, vo.PlanPro, cycleEnd))

	assert.Equal(t, vo.PlanPro, tr.Plan())
	assert.Equal(t, vo.BillingStatusActive, tr.BillingStatus())
	assert.Equal(t, "cus_1", *tr.CustomerID())
	assert.Equal(t, "sub_1", *tr.SubscriptionID())
	assert.True(t, tr.BillingCycleEnd().Equal(cycleEnd))
}

func TestApplyBillingSync_LastWriteWins(t *testing.T) {
	tr, err := NewTrainer("coach@example.com", "Coach", "hash")
	require.NoError(t, err)

	require.NoError(t, tr.ApplyBillingSync("cus_1", "sub_1",
		vo.BillingStatusActive, vo.PlanElite, time.Now()))
	require.NoError(t, tr.ApplyBillingSync("cus_1", "sub_1",
		vo.BillingStatusCanceled, vo.PlanStart, time.Now()))

	assert.Equal(t, vo.PlanStart, tr.Plan())
	assert.Equal(t, vo.BillingStatusCanceled, tr.BillingStatus())
}

func TestApplyBillingSync_RejectsInvalidValues(t *testing.T) {
	tr, err := NewTrainer("coach@example.com", "Coach", "hash")
	require.NoError(t, err)

	assert.Error(t, tr.ApplyBillingSync("cus_1", "sub_1",
		vo.BillingStatus("suspended"), vo.PlanPro, time.Now()))
	assert.Error(t, tr.ApplyBillingSync("cus_1", "sub_1",
		vo.BillingStatusActive, vo.Plan("Premium"), time.Now()))

	assert.Equal(t, vo.PlanStart, tr.Plan())
}

func TestChangePlan_RejectsUnknownTier(t *testing.T) {
	tr, err := NewTrainer("coach@example.com", "Coach", "hash")
	require.NoError(t, err)

	assert.Error(t, tr.ChangePlan(vo.Plan("Premium")))
	assert.Equal(t, vo.PlanStart, tr.Plan())

	require.NoError(t, tr.ChangePlan(vo.PlanElite))
	assert.Equal(t, vo.PlanElite, tr.Plan())
}
