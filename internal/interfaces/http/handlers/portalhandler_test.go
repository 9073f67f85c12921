package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk/internal/application/portal/usecases"
	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/shared/config"
	apperrors "coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

type stubStudentRepo struct {
	students map[uint]*student.Student
}

func (r *stubStudentRepo) Create(ctx context.Context, s *student.Student) error { return nil }
func (r *stubStudentRepo) Update(ctx context.Context, s *student.Student) error { return nil }
func (r *stubStudentRepo) Delete(ctx context.Context, id uint) error            { return nil }
func (r *stubStudentRepo) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	if s, ok := r.students[id]; ok {
		return s, nil
	}
	return nil, apperrors.NewNotFoundError("Student not found")
}
func (r *stubStudentRepo) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*student.Student, int64, error) {
	return nil, 0, nil
}
func (r *stubStudentRepo) CountByTrainerID(ctx context.Context, trainerID uint) (int64, error) {
	return 0, nil
}

type stubWorkoutRepo struct {
	workouts map[uint]*workout.Workout
}

func (r *stubWorkoutRepo) Create(ctx context.Context, w *workout.Workout) error { return nil }
func (r *stubWorkoutRepo) Update(ctx context.Context, w *workout.Workout) error { return nil }
func (r *stubWorkoutRepo) Delete(ctx context.Context, id uint) error            { return nil }
func (r *stubWorkoutRepo) GetByID(ctx context.Context, id uint) (*workout.Workout, error) {
	if w, ok := r.workouts[id]; ok {
		return w, nil
	}
	return nil, apperrors.NewNotFoundError("Workout not found")
}
func (r *stubWorkoutRepo) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*workout.Workout, int64, error) {
	return nil, 0, nil
}
func (r *stubWorkoutRepo) ListByStudentID(ctx context.Context, studentID uint) ([]*workout.Workout, error) {
	var out []*workout.Workout
	for _, w := range r.workouts {
		if w.StudentID() == studentID {
			out = append(out, w)
		}
	}
	return out, nil
}

type stubExerciseRepo struct{}

func (stubExerciseRepo) Create(ctx context.Context, e *exercise.Exercise) error { return nil }
func (stubExerciseRepo) Update(ctx context.Context, e *exercise.Exercise) error { return nil }
func (stubExerciseRepo) Delete(ctx context.Context, id uint) error              { return nil }
func (stubExerciseRepo) GetByID(ctx context.Context, id uint) (*exercise.Exercise, error) {
	return nil, apperrors.NewNotFoundError("Exercise not found")
}
func (stubExerciseRepo) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*exercise.Exercise, int64, error) {
	return nil, 0, nil
}

type stubScheduleRepo struct{}

func (stubScheduleRepo) Create(ctx context.Context, a *schedule.Appointment) error { return nil }
func (stubScheduleRepo) Update(ctx context.Context, a *schedule.Appointment) error { return nil }
func (stubScheduleRepo) GetByID(ctx context.Context, id uint) (*schedule.Appointment, error) {
	return nil, apperrors.NewNotFoundError("Appointment not found")
}
func (stubScheduleRepo) ListByTrainerID(ctx context.Context, trainerID uint, from, to time.Time) ([]*schedule.Appointment, error) {
	return nil, nil
}
func (stubScheduleRepo) ListByStudentID(ctx context.Context, studentID uint) ([]*schedule.Appointment, error) {
	return nil, nil
}

func setupPortalRouter(t *testing.T, students map[uint]*student.Student) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hasher := auth.NewBcryptPasswordHasher(4)
	jwtService := auth.NewJWTService("test-jwt-secret", 15, 7)
	grantService := auth.NewGrantService("test-grant-secret", 24)
	sessionResolver := auth.NewSessionResolver(jwtService, grantService)

	studentRepo := &stubStudentRepo{students: students}
	workoutRepo := &stubWorkoutRepo{workouts: map[uint]*workout.Workout{}}

	handler := NewPortalHandler(
		usecases.NewCheckAccessUseCase(studentRepo, workoutRepo, hasher, grantService, log),
		usecases.NewResolvePortalUseCase(studentRepo, workoutRepo, stubExerciseRepo{}, stubScheduleRepo{}, grantService, log),
		sessionResolver, grantService, log, config.CookieConfig{SameSite: "Lax"},
	)

	engine := gin.New()
	engine.GET("/portal/students/:id", handler.StudentPortal)
	engine.POST("/portal/students/:id/gate", handler.StudentGate)
	return engine
}

func portalStudent(t *testing.T, id uint, passwordHash *string) *student.Student {
	t.Helper()
	s, err := student.ReconstructStudent(id, 1, "Alice", "alice@example.com", "",
		student.StatusActive, passwordHash, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func TestPortalHandler_UngatedStudentServedWithGrantCookie(t *testing.T) {
	engine := setupPortalRouter(t, map[uint]*student.Student{
		3: portalStudent(t, 3, nil),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/students/3", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var grantCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "student_auth_3" {
			grantCookie = ck
		}
	}
	require.NotNil(t, grantCookie)
	assert.NotEmpty(t, grantCookie.Value)
	assert.True(t, grantCookie.HttpOnly)
}

func TestPortalHandler_GatedStudentRedirectsWithoutGrant(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	engine := setupPortalRouter(t, map[uint]*student.Student{
		5: portalStudent(t, 5, &hash),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portal/students/5", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/portal/students/5/gate", w.Header().Get("Location"))
}

func TestPortalHandler_GateThenServe(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	engine := setupPortalRouter(t, map[uint]*student.Student{
		5: portalStudent(t, 5, &hash),
	})

	body, _ := json.Marshal(GateRequest{Password: "secret"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/portal/students/5/gate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/portal/students/5", nil)
	for _, ck := range cookies {
		req2.AddCookie(ck)
	}
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestPortalHandler_GateRejectsWrongPassword(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	engine := setupPortalRouter(t, map[uint]*student.Student{
		5: portalStudent(t, 5, &hash),
	})

	body, _ := json.Marshal(GateRequest{Password: "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/portal/students/5/gate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestPortalHandler_GateUnknownStudent(t *testing.T) {
	engine := setupPortalRouter(t, map[uint]*student.Student{})

	body, _ := json.Marshal(GateRequest{Password: "secret"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/portal/students/99/gate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
