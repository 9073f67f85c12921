// Package exercise contains the trainer-owned exercise library.
package exercise

import (
	"fmt"
	"time"
)

type Exercise struct {
	id          uint
	trainerID   uint
	name        string
	muscleGroup string
	description string
	videoURL    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExercise(trainerID uint, name, muscleGroup, description, videoURL string) (*Exercise, error) {
	if trainerID == 0 {
		return nil, fmt.Errorf("trainer ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("exercise name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("exercise name too long (max 100 characters)")
	}

	now := time.Now().UTC()
	return &Exercise{
		trainerID:   trainerID,
		name:        name,
		muscleGroup: muscleGroup,
		description: description,
		videoURL:    videoURL,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructExercise(id, trainerID uint, name, muscleGroup, description, videoURL string,
	createdAt, updatedAt time.Time) (*Exercise, error) {

	if id == 0 {
		return nil, fmt.Errorf("exercise ID cannot be zero")
	}

	return &Exercise{
		id:          id,
		trainerID:   trainerID,
		name:        name,
		muscleGroup: muscleGroup,
		description: description,
		videoURL:    videoURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Exercise) ID() uint            { return e.id }
func (e *Exercise) TrainerID() uint     { return e.trainerID }
func (e *Exercise) Name() string        { return e.name }
func (e *Exercise) MuscleGroup() string { return e.muscleGroup }
func (e *Exercise) Description() string { return e.description }
func (e *Exercise) VideoURL() string    { return e.videoURL }
func (e *Exercise) CreatedAt() time.Time { return e.createdAt }
func (e *Exercise) UpdatedAt() time.Time { return e.updatedAt }

func (e *Exercise) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("exercise ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("exercise ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Exercise) Update(name, muscleGroup, description, videoURL string) error {
	if name == "" {
		return fmt.Errorf("exercise name is required")
	}
	e.name = name
	e.muscleGroup = muscleGroup
	e.description = description
	e.videoURL = videoURL
	e.updatedAt = time.Now().UTC()
	return nil
}
