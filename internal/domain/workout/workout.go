// Package workout contains the workout aggregate: an ordered set of exercise
// items assigned to a student, optionally shareable via a public link gated by
// an access password independent of the student's.
package workout

import (
	"fmt"
	"time"
)

// Item is one exercise entry within a workout, with its set/rep/load/rest
// parameters. Items keep their slice order.
type Item struct {
	ExerciseID  uint   `json:"exercise_id"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	LoadKg      float64 `json:"load_kg"`
	RestSeconds int    `json:"rest_seconds"`
	Notes       string `json:"notes,omitempty"`
}

func (i Item) Validate() error {
	if i.ExerciseID == 0 {
		return fmt.Errorf("exercise ID is required")
	}
	if i.Sets <= 0 {
		return fmt.Errorf("sets must be positive")
	}
	if i.Reps <= 0 {
		return fmt.Errorf("reps must be positive")
	}
	if i.LoadKg < 0 {
		return fmt.Errorf("load cannot be negative")
	}
	if i.RestSeconds < 0 {
		return fmt.Errorf("rest cannot be negative")
	}
	return nil
}

type Workout struct {
	id           uint
	trainerID    uint
	studentID    uint
	name         string
	notes        string
	items        []Item
	passwordHash *string // nil means the share link is ungated
	createdAt    time.Time
	updatedAt    time.Time
}

func NewWorkout(trainerID, studentID uint, name, notes string, items []Item) (*Workout, error) {
	if trainerID == 0 {
		return nil, fmt.Errorf("trainer ID is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("workout name is required")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	now := time.Now().UTC()
	return &Workout{
		trainerID: trainerID,
		studentID: studentID,
		name:      name,
		notes:     notes,
		items:     items,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructWorkout(id, trainerID, studentID uint, name, notes string, items []Item,
	passwordHash *string, createdAt, updatedAt time.Time) (*Workout, error) {

	if id == 0 {
		return nil, fmt.Errorf("workout ID cannot be zero")
	}

	return &Workout{
		id:           id,
		trainerID:    trainerID,
		studentID:    studentID,
		name:         name,
		notes:        notes,
		items:        items,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (w *Workout) ID() uint              { return w.id }
func (w *Workout) TrainerID() uint       { return w.trainerID }
func (w *Workout) StudentID() uint       { return w.studentID }
func (w *Workout) Name() string          { return w.name }
func (w *Workout) Notes() string         { return w.notes }
func (w *Workout) Items() []Item         { return w.items }
func (w *Workout) PasswordHash() *string { return w.passwordHash }
func (w *Workout) CreatedAt() time.Time  { return w.createdAt }
func (w *Workout) UpdatedAt() time.Time  { return w.updatedAt }

func (w *Workout) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("workout ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("workout ID cannot be zero")
	}
	w.id = id
	return nil
}

// RequiresPassword reports whether the share link is gated.
func (w *Workout) RequiresPassword() bool {
	return w.passwordHash != nil && *w.passwordHash != ""
}

// SetSharePassword gates the share link with the given password hash.
func (w *Workout) SetSharePassword(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	w.passwordHash = &hash
	w.updatedAt = time.Now().UTC()
	return nil
}

// ClearSharePassword removes the gate.
func (w *Workout) ClearSharePassword() {
	w.passwordHash = nil
	w.updatedAt = time.Now().UTC()
}

func (w *Workout) Update(name, notes string, items []Item) error {
	if name == "" {
		return fmt.Errorf("workout name is required")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	w.name = name
	w.notes = notes
	w.items = items
	w.updatedAt = time.Now().UTC()
	return nil
}
