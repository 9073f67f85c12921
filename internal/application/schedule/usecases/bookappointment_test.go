package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/shared/errors"
	"coachdesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
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

func activeStudent(t *testing.T, id, trainerID uint) *student.Student {
	t.Helper()
	s, err := student.ReconstructStudent(id, trainerID, "Alice", "alice@example.com", "",
		student.StatusActive, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func inactiveStudent(t *testing.T, id, trainerID uint) *student.Student {
	t.Helper()
	s, err := student.ReconstructStudent(id, trainerID, "Alice", "alice@example.com", "",
		student.StatusInactive, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func bookedAt(t *testing.T, id uint, at time.Time, minutes int) *schedule.Appointment {
	t.Helper()
	a, err := schedule.ReconstructAppointment(id, 1, 2, at, minutes,
		schedule.StatusBooked, "", time.Now(), time.Now())
	require.NoError(t, err)
	return a
}

func TestBookAppointment_Succeeds(t *testing.T) {
	scheduleRepo := new(mockScheduleRepo)
	studentRepo := new(mockStudentRepo)
	uc := NewBookAppointmentUseCase(scheduleRepo, studentRepo, testLogger())

	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	studentRepo.On("GetByID", mock.Anything, uint(2)).Return(activeStudent(t, 2, 1), nil)
	scheduleRepo.On("ListByTrainerID", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Return([]*schedule.Appointment{}, nil)
	scheduleRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Execute(context.Background(), BookAppointmentCommand{
		TrainerID: 1, StudentID: 2, ScheduledAt: at, DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusBooked), result.Status)
}

func TestBookAppointment_RejectsOverlap(t *testing.T) {
	scheduleRepo := new(mockScheduleRepo)
	studentRepo := new(mockStudentRepo)
	uc := NewBookAppointmentUseCase(scheduleRepo, studentRepo, testLogger())

	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	studentRepo.On("GetByID", mock.Anything, uint(2)).Return(activeStudent(t, 2, 1), nil)
	scheduleRepo.On("ListByTrainerID", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Return([]*schedule.Appointment{bookedAt(t, 5, at.Add(30*time.Minute), 60)}, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentCommand{
		TrainerID: 1, StudentID: 2, ScheduledAt: at, DurationMinutes: 60,
	})
	assert.True(t, errors.IsConflictError(err))
	scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookAppointment_IgnoresCancelledSlots(t *testing.T) {
	scheduleRepo := new(mockScheduleRepo)
	studentRepo := new(mockStudentRepo)
	uc := NewBookAppointmentUseCase(scheduleRepo, studentRepo, testLogger())

	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	cancelled, err := schedule.ReconstructAppointment(5, 1, 2, at, 60,
		schedule.StatusCancelled, "", time.Now(), time.Now())
	require.NoError(t, err)

	studentRepo.On("GetByID", mock.Anything, uint(2)).Return(activeStudent(t, 2, 1), nil)
	scheduleRepo.On("ListByTrainerID", mock.Anything, uint(1), mock.Anything, mock.Anything).
		Return([]*schedule.Appointment{cancelled}, nil)
	scheduleRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err = uc.Execute(context.Background(), BookAppointmentCommand{
		TrainerID: 1, StudentID: 2, ScheduledAt: at, DurationMinutes: 60,
	})
	assert.NoError(t, err)
}

func TestBookAppointment_RejectsInactiveStudent(t *testing.T) {
	scheduleRepo := new(mockScheduleRepo)
	studentRepo := new(mockStudentRepo)
	uc := NewBookAppointmentUseCase(scheduleRepo, studentRepo, testLogger())

	studentRepo.On("GetByID", mock.Anything, uint(2)).Return(inactiveStudent(t, 2, 1), nil)

	_, err := uc.Execute(context.Background(), BookAppointmentCommand{
		TrainerID: 1, StudentID: 2, ScheduledAt: time.Now().Add(time.Hour), DurationMinutes: 60,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestBookAppointment_RejectsForeignStudent(t *testing.T) {
	scheduleRepo := new(mockScheduleRepo)
	studentRepo := new(mockStudentRepo)
	uc := NewBookAppointmentUseCase(scheduleRepo, studentRepo, testLogger())

	studentRepo.On("GetByID", mock.Anything, uint(2)).Return(activeStudent(t, 2, 9), nil)

	_, err := uc.Execute(context.Background(), BookAppointmentCommand{
		TrainerID: 1, StudentID: 2, ScheduledAt: time.Now().Add(time.Hour), DurationMinutes: 60,
	})
	assert.True(t, errors.IsForbiddenError(err))
}
