package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantService_IssueAndVerify(t *testing.T) {
	svc := NewGrantService("test-secret", 24)

	token, err := svc.Issue(GrantResourceStudent, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(token, GrantResourceStudent, 42))
}

func TestGrantService_ResourceScoping(t *testing.T) {
	svc := NewGrantService("test-secret", 24)

	token, err := svc.Issue(GrantResourceStudent, 1)
	require.NoError(t, err)

	// A grant for student 1 must not unlock student 2.
	assert.Error(t, svc.Verify(token, GrantResourceStudent, 2))

	// Nor a workout with the same id.
	assert.Error(t, svc.Verify(token, GrantResourceWorkout, 1))
}

func TestGrantService_RejectsTamperedToken(t *testing.T) {
	svc := NewGrantService("test-secret", 24)

	token, err := svc.Issue(GrantResourceWorkout, 7)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	assert.Error(t, svc.Verify(tampered, GrantResourceWorkout, 7))
}

func TestGrantService_RejectsForeignSignature(t *testing.T) {
	issuer := NewGrantService("secret-a", 24)
	verifier := NewGrantService("secret-b", 24)

	token, err := issuer.Issue(GrantResourceStudent, 5)
	require.NoError(t, err)

	assert.Error(t, verifier.Verify(token, GrantResourceStudent, 5))
}

func TestGrantService_DefaultExpiry(t *testing.T) {
	svc := NewGrantService("test-secret", 0)
	assert.Equal(t, 24*time.Hour, svc.Expiry())
}
