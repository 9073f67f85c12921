package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coachdesk/internal/domain/student"
	"coachdesk/internal/infrastructure/persistence/mappers"
	"coachdesk/internal/infrastructure/persistence/models"
	"coachdesk/internal/shared/db"
	apperrors "coachdesk/internal/shared/errors"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	model := mappers.StudentToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	model := mappers.StudentToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.StudentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"notes":         model.Notes,
			"status":        model.Status,
			"password_hash": model.PasswordHash,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update student: %w", result.Error)
	}

	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.StudentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete student: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Student not found")
	}
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	var model models.StudentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return mappers.StudentToDomain(&model)
}

func (r *StudentRepository) ListByTrainerID(ctx context.Context, trainerID uint, page, pageSize int) ([]*student.Student, int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.StudentModel{}).
		Where("trainer_id = ?", trainerID)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	var studentModels []models.StudentModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&studentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]*student.Student, 0, len(studentModels))
	for i := range studentModels {
		s, err := mappers.StudentToDomain(&studentModels[i])
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}

	return students, total, nil
}

func (r *StudentRepository) CountByTrainerID(ctx context.Context, trainerID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StudentModel{}).
		Where("trainer_id = ? AND status = ?", trainerID, string(student.StatusActive)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
