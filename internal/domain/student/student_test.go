package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	s, err := NewStudent(1, "Alice", "Alice@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", s.Email())
	assert.Equal(t, StatusActive, s.Status())
	assert.False(t, s.RequiresPassword())

	_, err = NewStudent(0, "Alice", "alice@example.com")
	assert.Error(t, err)
	_, err = NewStudent(1, "", "alice@example.com")
	assert.Error(t, err)
}

func TestStudentPortalPassword(t *testing.T) {
	s, err := NewStudent(1, "Alice", "alice@example.com")
	require.NoError(t, err)

	assert.Error(t, s.SetPortalPassword(""))
	assert.False(t, s.RequiresPassword())

	require.NoError(t, s.SetPortalPassword("$2a$10$hash"))
	assert.True(t, s.RequiresPassword())
	require.NotNil(t, s.PasswordHash())

	s.ClearPortalPassword()
	assert.False(t, s.RequiresPassword())
	assert.Nil(t, s.PasswordHash())
}

func TestStudentStatusTransitions(t *testing.T) {
	s, err := NewStudent(1, "Alice", "alice@example.com")
	require.NoError(t, err)

	s.Deactivate()
	assert.Equal(t, StatusInactive, s.Status())
	s.Activate()
	assert.Equal(t, StatusActive, s.Status())
}
