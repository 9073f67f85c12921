package dto

import (
	"time"

	"coachdesk/internal/domain/student"
)

type StudentDTO struct {
	ID               uint      `json:"id"`
	TrainerID        uint      `json:"trainer_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Status           string    `json:"status"`
	PasswordRequired bool      `json:"password_required"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToStudentDTO(s *student.Student) *StudentDTO {
	return &StudentDTO{
		ID:               s.ID(),
		TrainerID:        s.TrainerID(),
		Name:             s.Name(),
		Email:            s.Email(),
		Notes:            s.Notes(),
		Status:           string(s.Status()),
		PasswordRequired: s.RequiresPassword(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func ToStudentDTOs(students []*student.Student) []StudentDTO {
	dtos := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		dtos = append(dtos, *ToStudentDTO(s))
	}
	return dtos
}
