package mappers

import (
	"coachdesk/internal/domain/student"
	"coachdesk/internal/infrastructure/persistence/models"
)

func StudentToModel(s *student.Student) *models.StudentModel {
	return &models.StudentModel{
		ID:           s.ID(),
		TrainerID:    s.TrainerID(),
		Name:         s.Name(),
		Email:        s.Email(),
		Notes:        s.Notes(),
		Status:       string(s.Status()),
		PasswordHash: s.PasswordHash(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func StudentToDomain(model *models.StudentModel) (*student.Student, error) {
	return student.ReconstructStudent(
		model.ID,
		model.TrainerID,
		model.Name,
		model.Email,
		model.Notes,
		student.Status(model.Status),
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
