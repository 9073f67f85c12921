package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/errors"
)

type portalFixture struct {
	studentRepo  *mockStudentRepo
	workoutRepo  *mockWorkoutRepo
	exerciseRepo *mockExerciseRepo
	scheduleRepo *mockScheduleRepo
	grantSvc     *auth.GrantService
	uc           *ResolvePortalUseCase
}

func newPortalFixture() *portalFixture {
	f := &portalFixture{
		studentRepo:  new(mockStudentRepo),
		workoutRepo:  new(mockWorkoutRepo),
		exerciseRepo: new(mockExerciseRepo),
		scheduleRepo: new(mockScheduleRepo),
		grantSvc:     auth.NewGrantService("test-secret", 24),
	}
	f.uc = NewResolvePortalUseCase(f.studentRepo, f.workoutRepo, f.exerciseRepo,
		f.scheduleRepo, f.grantSvc, testLogger())
	return f
}

func testExercise(t *testing.T, id uint, name string) *exercise.Exercise {
	t.Helper()
	e, err := exercise.ReconstructExercise(id, 1, name, "chest", "", "", time.Now(), time.Now())
	require.NoError(t, err)
	return e
}

func TestResolveStudent_UngatedServesAndAutoIssuesGrant(t *testing.T) {
	f := newPortalFixture()

	f.studentRepo.On("GetByID", mock.Anything, uint(3)).Return(ungatedStudent(t, 3), nil)
	f.workoutRepo.On("ListByStudentID", mock.Anything, uint(3)).Return([]*workout.Workout{}, nil)
	f.scheduleRepo.On("ListByStudentID", mock.Anything, uint(3)).Return([]*schedule.Appointment{}, nil)

	result, err := f.uc.ResolveStudent(context.Background(), 3, "")
	require.NoError(t, err)

	assert.Equal(t, RouteServePortal, result.Outcome)
	require.NotEmpty(t, result.IssuedGrant)
	assert.NoError(t, f.grantSvc.Verify(result.IssuedGrant, auth.GrantResourceStudent, 3))
	require.NotNil(t, result.View)
	assert.Equal(t, uint(3), result.View.StudentID)
}

func TestResolveStudent_GatedWithoutGrantRedirects(t *testing.T) {
	f := newPortalFixture()

	f.studentRepo.On("GetByID", mock.Anything, uint(5)).Return(gatedStudent(t, 5, "secret"), nil)

	result, err := f.uc.ResolveStudent(context.Background(), 5, "")
	require.NoError(t, err)

	assert.Equal(t, RouteRedirectToGate, result.Outcome)
	assert.Nil(t, result.View)
}

func TestResolveStudent_GatedWithValidGrantServes(t *testing.T) {
	f := newPortalFixture()

	f.studentRepo.On("GetByID", mock.Anything, uint(5)).Return(gatedStudent(t, 5, "secret"), nil)
	f.workoutRepo.On("ListByStudentID", mock.Anything, uint(5)).Return([]*workout.Workout{}, nil)
	f.scheduleRepo.On("ListByStudentID", mock.Anything, uint(5)).Return([]*schedule.Appointment{}, nil)

	grant, err := f.grantSvc.Issue(auth.GrantResourceStudent, 5)
	require.NoError(t, err)

	result, err := f.uc.ResolveStudent(context.Background(), 5, grant)
	require.NoError(t, err)

	assert.Equal(t, RouteServePortal, result.Outcome)
	assert.Empty(t, result.IssuedGrant)
}

func TestResolveStudent_GrantForAnotherStudentRedirects(t *testing.T) {
	f := newPortalFixture()

	f.studentRepo.On("GetByID", mock.Anything, uint(5)).Return(gatedStudent(t, 5, "secret"), nil)

	grant, err := f.grantSvc.Issue(auth.GrantResourceStudent, 6)
	require.NoError(t, err)

	result, err := f.uc.ResolveStudent(context.Background(), 5, grant)
	require.NoError(t, err)

	assert.Equal(t, RouteRedirectToGate, result.Outcome)
}

func TestResolveStudent_NotFound(t *testing.T) {
	f := newPortalFixture()

	f.studentRepo.On("GetByID", mock.Anything, uint(99)).
		Return(nil, errors.NewNotFoundError("student not found"))

	_, err := f.uc.ResolveStudent(context.Background(), 99, "")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolveWorkout_GatedWithValidGrantServesView(t *testing.T) {
	f := newPortalFixture()

	f.workoutRepo.On("GetByID", mock.Anything, uint(1)).Return(gatedWorkout(t, 1, "secret"), nil)
	f.exerciseRepo.On("GetByID", mock.Anything, uint(1)).Return(testExercise(t, 1, "Bench Press"), nil)

	grant, err := f.grantSvc.Issue(auth.GrantResourceWorkout, 1)
	require.NoError(t, err)

	result, err := f.uc.ResolveWorkout(context.Background(), 1, grant)
	require.NoError(t, err)

	assert.Equal(t, RouteServePortal, result.Outcome)
	require.NotNil(t, result.View)
	require.Len(t, result.View.Items, 1)
	assert.Equal(t, "Bench Press", result.View.Items[0].ExerciseName)
}

func TestResolveWorkout_StudentGrantDoesNotUnlockWorkout(t *testing.T) {
	f := newPortalFixture()

	f.workoutRepo.On("GetByID", mock.Anything, uint(1)).Return(gatedWorkout(t, 1, "secret"), nil)

	grant, err := f.grantSvc.Issue(auth.GrantResourceStudent, 1)
	require.NoError(t, err)

	result, err := f.uc.ResolveWorkout(context.Background(), 1, grant)
	require.NoError(t, err)

	assert.Equal(t, RouteRedirectToGate, result.Outcome)
}

func TestResolveWorkout_DeletedExerciseDoesNotBreakPage(t *testing.T) {
	f := newPortalFixture()

	w, err := workout.ReconstructWorkout(2, 1, 3, "Legs", "",
		[]workout.Item{{ExerciseID: 9, Sets: 4, Reps: 8}}, nil, time.Now(), time.Now())
	require.NoError(t, err)

	f.workoutRepo.On("GetByID", mock.Anything, uint(2)).Return(w, nil)
	f.exerciseRepo.On("GetByID", mock.Anything, uint(9)).
		Return(nil, errors.NewNotFoundError("exercise not found"))

	result, err := f.uc.ResolveWorkout(context.Background(), 2, "")
	require.NoError(t, err)

	assert.Equal(t, RouteServePortal, result.Outcome)
	require.Len(t, result.View.Items, 1)
	assert.Empty(t, result.View.Items[0].ExerciseName)
}
