// Package dto contains data transfer objects for the exercise library.
package dto

import (
	"time"

	"coachdesk/internal/domain/exercise"
)

type ExerciseDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group,omitempty"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToExerciseDTO(e *exercise.Exercise) *ExerciseDTO {
	return &ExerciseDTO{
		ID:          e.ID(),
		Name:        e.Name(),
		MuscleGroup: e.MuscleGroup(),
		Description: e.Description(),
		VideoURL:    e.VideoURL(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func ToExerciseDTOs(exercises []*exercise.Exercise) []ExerciseDTO {
	dtos := make([]ExerciseDTO, 0, len(exercises))
	for _, e := range exercises {
		dtos = append(dtos, *ToExerciseDTO(e))
	}
	return dtos
}
