package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookedAppointment(t *testing.T) *Appointment {
	t.Helper()
	a, err := NewAppointment(1, 2, time.Now().Add(24*time.Hour), 60, "")
	require.NoError(t, err)
	return a
}

func TestNewAppointment(t *testing.T) {
	a := bookedAppointment(t)
	assert.Equal(t, StatusBooked, a.Status())

	_, err := NewAppointment(0, 2, time.Now(), 60, "")
	assert.Error(t, err)
	_, err = NewAppointment(1, 2, time.Time{}, 60, "")
	assert.Error(t, err)
	_, err = NewAppointment(1, 2, time.Now(), 0, "")
	assert.Error(t, err)
}

func TestAppointmentComplete(t *testing.T) {
	a := bookedAppointment(t)

	require.NoError(t, a.Complete())
	assert.Equal(t, StatusCompleted, a.Status())

	assert.Error(t, a.Complete())
	assert.Error(t, a.Cancel())
}

func TestAppointmentCancel(t *testing.T) {
	a := bookedAppointment(t)

	require.NoError(t, a.Cancel())
	assert.Equal(t, StatusCancelled, a.Status())

	assert.Error(t, a.Complete())
}
