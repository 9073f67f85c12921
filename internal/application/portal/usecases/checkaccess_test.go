package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
)

func newCheckAccess(studentRepo *mockStudentRepo, workoutRepo *mockWorkoutRepo) (*CheckAccessUseCase, *auth.GrantService) {
	hasher := auth.NewBcryptPasswordHasher(4)
	grantSvc := auth.NewGrantService("test-secret", 24)
	return NewCheckAccessUseCase(studentRepo, workoutRepo, hasher, grantSvc, testLogger()), grantSvc
}

func gatedStudent(t *testing.T, id uint, password string) *student.Student {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	s, err := student.ReconstructStudent(id, 1, "Alice", "alice@example.com", "",
		student.StatusActive, &hash, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func ungatedStudent(t *testing.T, id uint) *student.Student {
	t.Helper()
	s, err := student.ReconstructStudent(id, 1, "Bob", "bob@example.com", "",
		student.StatusActive, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func gatedWorkout(t *testing.T, id uint, password string) *workout.Workout {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	w, err := workout.ReconstructWorkout(id, 1, 2, "Push Day", "",
		[]workout.Item{{ExerciseID: 1, Sets: 3, Reps: 10}}, &hash, time.Now(), time.Now())
	require.NoError(t, err)
	return w
}

func TestCheckAccess_NotRequiredIssuesGrant(t *testing.T) {
	studentRepo := new(mockStudentRepo)
	workoutRepo := new(mockWorkoutRepo)
	uc, grantSvc := newCheckAccess(studentRepo, workoutRepo)

	studentRepo.On("GetByID", mock.Anything, uint(3)).Return(ungatedStudent(t, 3), nil)

	result, err := uc.Execute(context.Background(), CheckAccessCommand{
		Resource:   auth.GrantResourceStudent,
		ResourceID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, AccessNotRequired, result.Result)
	require.NotEmpty(t, result.GrantToken)
	assert.NoError(t, grantSvc.Verify(result.GrantToken, auth.GrantResourceStudent, 3))
}

func TestCheckAccess_CorrectPasswordGrants(t *testing.T) {
	studentRepo := new(mockStudentRepo)
	workoutRepo := new(mockWorkoutRepo)
	uc, grantSvc := newCheckAccess(studentRepo, workoutRepo)

	workoutRepo.On("GetByID", mock.Anything, uint(1)).Return(gatedWorkout(t, 1, "secret"), nil)

	result, err := uc.Execute(context.Background(), CheckAccessCommand{
		Resource:   auth.GrantResourceWorkout,
		ResourceID: 1,
		Password:   "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, AccessGranted, result.Result)
	assert.NoError(t, grantSvc.Verify(result.GrantToken, auth.GrantResourceWorkout, 1))
}

func TestCheckAccess_WrongPasswordDenies(t *testing.T) {
	studentRepo := new(mockStudentRepo)
	workoutRepo := new(mockWorkoutRepo)
	uc, _ := newCheckAccess(studentRepo, workoutRepo)

	workoutRepo.On("GetByID", mock.Anything, uint(1)).Return(gatedWorkout(t, 1, "secret"), nil)

	result, err := uc.Execute(context.Background(), CheckAccessCommand{
		Resource:   auth.GrantResourceWorkout,
		ResourceID: 1,
		Password:   "wrong",
	})
	require.NoError(t, err)

	assert.Equal(t, AccessDenied, result.Result)
	assert.Empty(t, result.GrantToken)
}

func TestCheckAccess_MissingResourceIsNotFound(t *testing.T) {
	studentRepo := new(mockStudentRepo)
	workoutRepo := new(mockWorkoutRepo)
	uc, _ := newCheckAccess(studentRepo, workoutRepo)

	studentRepo.On("GetByID", mock.Anything, uint(99)).
		Return(nil, errors.NewNotFoundError("student not found"))

	_, err := uc.Execute(context.Background(), CheckAccessCommand{
		Resource:   auth.GrantResourceStudent,
		ResourceID: 99,
		Password:   "whatever",
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestCheckAccess_UnknownResourceKind(t *testing.T) {
	studentRepo := new(mockStudentRepo)
	workoutRepo := new(mockWorkoutRepo)
	uc, _ := newCheckAccess(studentRepo, workoutRepo)

	_, err := uc.Execute(context.Background(), CheckAccessCommand{
		Resource:   auth.GrantResource("plan"),
		ResourceID: 1,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCheckAccess_EmptyStudentPassword(t *testing.T) {
	studentRepo := new(mockStudentRepo)
	workoutRepo := new(mockWorkoutRepo)
	uc, _ := newCheckAccess(studentRepo, workoutRepo)

	studentRepo.On("GetByID", mock.Anything, uint(5)).Return(gatedStudent(t, 5, "secret"), nil)

	result, err := uc.Execute(context.Background(), CheckAccessCommand{
		Resource:   auth.GrantResourceStudent,
		ResourceID: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, AccessDenied, result.Result)
}
