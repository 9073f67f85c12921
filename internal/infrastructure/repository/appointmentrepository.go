package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/infrastructure/persistence/mappers"
	"coachdesk/internal/infrastructure/persistence/models"
	"coachdesk/internal/shared/db"
	apperrors "coachdesk/internal/shared/errors"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *schedule.Appointment) error {
	model := mappers.AppointmentToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AppointmentRepository) Update(ctx context.Context, a *schedule.Appointment) error {
	model := mappers.AppointmentToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppointmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"scheduled_at":     model.ScheduledAt,
			"duration_minutes": model.DurationMinutes,
			"status":           model.Status,
			"notes":            model.Notes,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update appointment: %w", result.Error)
	}

	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*schedule.Appointment, error) {
	var model models.AppointmentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Appointment not found")
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return mappers.AppointmentToDomain(&model)
}

func (r *AppointmentRepository) ListByTrainerID(ctx context.Context, trainerID uint, from, to time.Time) ([]*schedule.Appointment, error) {
	var appointmentModels []models.AppointmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("trainer_id = ? AND scheduled_at >= ? AND scheduled_at < ?", trainerID, from, to).
		Order("scheduled_at ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return r.toDomainList(appointmentModels)
}

func (r *AppointmentRepository) ListByStudentID(ctx context.Context, studentID uint) ([]*schedule.Appointment, error) {
	var appointmentModels []models.AppointmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("student_id = ?", studentID).
		Order("scheduled_at ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments by student: %w", err)
	}

	return r.toDomainList(appointmentModels)
}

func (r *AppointmentRepository) toDomainList(appointmentModels []models.AppointmentModel) ([]*schedule.Appointment, error) {
	appointments := make([]*schedule.Appointment, 0, len(appointmentModels))
	for i := range appointmentModels {
		a, err := mappers.AppointmentToDomain(&appointmentModels[i])
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
