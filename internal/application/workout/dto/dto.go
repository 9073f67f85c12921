// Package dto contains data transfer objects for workouts.
package dto

import (
	"time"

	"coachdesk/internal/domain/workout"
)

type WorkoutItemDTO struct {
	ExerciseID  uint    `json:"exercise_id"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	LoadKg      float64 `json:"load_kg"`
	RestSeconds int     `json:"rest_seconds"`
	Notes       string  `json:"notes,omitempty"`
}

type WorkoutDTO struct {
	ID               uint             `json:"id"`
	StudentID        uint             `json:"student_id"`
	Name             string           `json:"name"`
	Notes            string           `json:"notes,omitempty"`
	Items            []WorkoutItemDTO `json:"items"`
	PasswordRequired bool             `json:"password_required"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func ToWorkoutDTO(w *workout.Workout) *WorkoutDTO {
	items := make([]WorkoutItemDTO, 0, len(w.Items()))
	for _, item := range w.Items() {
		items = append(items, WorkoutItemDTO{
			ExerciseID:  item.ExerciseID,
			Sets:        item.Sets,
			Reps:        item.Reps,
			LoadKg:      item.LoadKg,
			RestSeconds: item.RestSeconds,
			Notes:       item.Notes,
		})
	}
	return &WorkoutDTO{
		ID:               w.ID(),
		StudentID:        w.StudentID(),
		Name:             w.Name(),
		Notes:            w.Notes(),
		Items:            items,
		PasswordRequired: w.RequiresPassword(),
		CreatedAt:        w.CreatedAt(),
		UpdatedAt:        w.UpdatedAt(),
	}
}

func ToWorkoutDTOs(workouts []*workout.Workout) []WorkoutDTO {
	dtos := make([]WorkoutDTO, 0, len(workouts))
	for _, w := range workouts {
		dtos = append(dtos, *ToWorkoutDTO(w))
	}
	return dtos
}

// ToItems converts incoming item DTOs to domain items, preserving order.
func ToItems(items []WorkoutItemDTO) []workout.Item {
	out := make([]workout.Item, 0, len(items))
	for _, item := range items {
		out = append(out, workout.Item{
			ExerciseID:  item.ExerciseID,
			Sets:        item.Sets,
			Reps:        item.Reps,
			LoadKg:      item.LoadKg,
			RestSeconds: item.RestSeconds,
			Notes:       item.Notes,
		})
	}
	return out
}
