package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
	"coachdesk/internal/infrastructure/persistence/models"
	"coachdesk/internal/shared/db"
	apperrors "coachdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.TrainerModel{},
		&models.StudentModel{},
		&models.ExerciseModel{},
		&models.WorkoutModel{},
		&models.AppointmentModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})
	return gdb
}

func createTestStudent(t *testing.T, repo *StudentRepository, trainerID uint, name string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(trainerID, name, fmt.Sprintf("%s@example.com", name))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestStudentRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewStudentRepository(gdb)

	s := createTestStudent(t, repo, 1, "alice")
	require.NotZero(t, s.ID())

	got, err := repo.GetByID(context.Background(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name())
	assert.Equal(t, student.StatusActive, got.Status())
	assert.Nil(t, got.PasswordHash())
}

func TestStudentRepository_GetByIDNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewStudentRepository(gdb)

	_, err := repo.GetByID(context.Background(), 999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestStudentRepository_UpdatePersistsPasswordHash(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewStudentRepository(gdb)

	s := createTestStudent(t, repo, 1, "alice")
	require.NoError(t, s.SetPortalPassword("$2a$10$hash"))
	require.NoError(t, repo.Update(context.Background(), s))

	got, err := repo.GetByID(context.Background(), s.ID())
	require.NoError(t, err)
	assert.True(t, got.RequiresPassword())

	got.ClearPortalPassword()
	require.NoError(t, repo.Update(context.Background(), got))

	got, err = repo.GetByID(context.Background(), s.ID())
	require.NoError(t, err)
	assert.False(t, got.RequiresPassword())
}

func TestStudentRepository_ListByTrainerID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewStudentRepository(gdb)

	createTestStudent(t, repo, 1, "alice")
	createTestStudent(t, repo, 1, "bob")
	createTestStudent(t, repo, 2, "carol")

	students, total, err := repo.ListByTrainerID(context.Background(), 1, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, students, 2)
}

func TestStudentRepository_DeleteNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewStudentRepository(gdb)

	err := repo.Delete(context.Background(), 999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestWorkoutRepository_ItemsRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewWorkoutRepository(gdb)

	w, err := workout.NewWorkout(1, 2, "Push Day", "notes",
		[]workout.Item{
			{ExerciseID: 1, Sets: 3, Reps: 10, LoadKg: 62.5, RestSeconds: 90},
			{ExerciseID: 2, Sets: 4, Reps: 8},
		})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), w))

	got, err := repo.GetByID(context.Background(), w.ID())
	require.NoError(t, err)
	require.Len(t, got.Items(), 2)
	assert.Equal(t, 62.5, got.Items()[0].LoadKg)
	assert.Equal(t, uint(2), got.Items()[1].ExerciseID)
}

func TestWorkoutRepository_ListByStudentID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewWorkoutRepository(gdb)

	for _, studentID := range []uint{2, 2, 3} {
		w, err := workout.NewWorkout(1, studentID, "Workout", "", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), w))
	}

	workouts, err := repo.ListByStudentID(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, workouts, 2)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	gdb := setupTestDB(t)
	studentRepo := NewStudentRepository(gdb)
	txManager := db.NewTransactionManager(gdb)

	err := txManager.RunInTransaction(context.Background(), func(ctx context.Context) error {
		s, err := student.NewStudent(1, "alice", "alice@example.com")
		if err != nil {
			return err
		}
		if err := studentRepo.Create(ctx, s); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.StudentModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	gdb := setupTestDB(t)
	studentRepo := NewStudentRepository(gdb)
	workoutRepo := NewWorkoutRepository(gdb)
	txManager := db.NewTransactionManager(gdb)

	err := txManager.RunInTransaction(context.Background(), func(ctx context.Context) error {
		s, err := student.NewStudent(1, "alice", "alice@example.com")
		if err != nil {
			return err
		}
		if err := studentRepo.Create(ctx, s); err != nil {
			return err
		}
		w, err := workout.NewWorkout(1, s.ID(), "Push Day", "", nil)
		if err != nil {
			return err
		}
		return workoutRepo.Create(ctx, w)
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.WorkoutModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
