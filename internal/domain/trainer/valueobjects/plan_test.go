package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	for _, name := range []string{"Start", "Pro", "Elite"} {
		p, err := NewPlan(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.String())
	}

	for _, name := range []string{"Premium", "start", "", "Enterprise"} {
		_, err := NewPlan(name)
		assert.Error(t, err, "plan %q should be rejected", name)
	}
}

func TestPlanMaxStudents(t *testing.T) {
	assert.Equal(t, 10, PlanStart.MaxStudents())
	assert.Equal(t, 50, PlanPro.MaxStudents())
	assert.Equal(t, 0, PlanElite.MaxStudents())
}

func TestValidPlanNames(t *testing.T) {
	assert.Equal(t, []string{"Start", "Pro", "Elite"}, ValidPlanNames())
}
