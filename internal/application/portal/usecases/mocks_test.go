package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"coachdesk/internal/domain/exercise"
	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockStudentRepo struct {
	mock.Mock
}

func (m *mockStudentRepo) Create(ctx context.Context, s *student.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStudentRepo) Update(ctx context.Context, s *student.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStudentRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*student.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentRepo) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*student.Student, int64, error) {
	args := m.Called(ctx, trainerID, page, pageSize)
	if s := args.Get(0); s != nil {
		return s.([]*student.Student), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockStudentRepo) CountByTrainerID(ctx context.Context, trainerID uint) (int64, error) {
	args := m.Called(ctx, trainerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockWorkoutRepo struct {
	mock.Mock
}

func (m *mockWorkoutRepo) Create(ctx context.Context, w *workout.Workout) error {
	return m.Called(ctx, w).Error(0)
}

func (m *mockWorkoutRepo) Update(ctx context.Context, w *workout.Workout) error {
	return m.Called(ctx, w).Error(0)
}

func (m *mockWorkoutRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockWorkoutRepo) GetByID(ctx context.Context, id uint) (*workout.Workout, error) {
	args := m.Called(ctx, id)
	if w := args.Get(0); w != nil {
		return w.(*workout.Workout), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWorkoutRepo) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*workout.Workout, int64, error) {
	args := m.Called(ctx, trainerID, page, pageSize)
	if w := args.Get(0); w != nil {
		return w.([]*workout.Workout), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockWorkoutRepo) ListByStudentID(ctx context.Context, studentID uint) ([]*workout.Workout, error) {
	args := m.Called(ctx, studentID)
	if w := args.Get(0); w != nil {
		return w.([]*workout.Workout), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockExerciseRepo struct {
	mock.Mock
}

func (m *mockExerciseRepo) Create(ctx context.Context, e *exercise.Exercise) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExerciseRepo) Update(ctx context.Context, e *exercise.Exercise) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExerciseRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExerciseRepo) GetByID(ctx context.Context, id uint) (*exercise.Exercise, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*exercise.Exercise), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExerciseRepo) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*exercise.Exercise, int64, error) {
	args := m.Called(ctx, trainerID, page, pageSize)
	if e := args.Get(0); e != nil {
		return e.([]*exercise.Exercise), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) Create(ctx context.Context, a *schedule.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockScheduleRepo) Update(ctx context.Context, a *schedule.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id uint) (*schedule.Appointment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*schedule.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) ListByTrainerID(ctx context.Context, trainerID uint, from, to time.Time) ([]*schedule.Appointment, error) {
	args := m.Called(ctx, trainerID, from, to)
	if a := args.Get(0); a != nil {
		return a.([]*schedule.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) ListByStudentID(ctx context.Context, studentID uint) ([]*schedule.Appointment, error) {
	args := m.Called(ctx, studentID)
	if a := args.Get(0); a != nil {
		return a.([]*schedule.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}
