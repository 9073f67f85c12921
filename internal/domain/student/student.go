// Package student contains the student aggregate: a trainer's client whose
// portal access is optionally protected by an access password.
package student

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Student struct {
	id           uint
	trainerID    uint
	name         string
	email        string
	notes        string
	status       Status
	passwordHash *string // nil means the portal is ungated
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStudent(trainerID uint, name, email string) (*Student, error) {
	if trainerID == 0 {
		return nil, fmt.Errorf("trainer ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("student name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	now := time.Now().UTC()
	return &Student{
		trainerID: trainerID,
		name:      name,
		email:     email,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructStudent reconstructs a student from persistence.
func ReconstructStudent(id, trainerID uint, name, email, notes string, status Status,
	passwordHash *string, createdAt, updatedAt time.Time) (*Student, error) {

	if id == 0 {
		return nil, fmt.Errorf("student ID cannot be zero")
	}
	if status != StatusActive && status != StatusInactive {
		return nil, fmt.Errorf("invalid student status: %s", status)
	}

	return &Student{
		id:           id,
		trainerID:    trainerID,
		name:         name,
		email:        email,
		notes:        notes,
		status:       status,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Student) ID() uint              { return s.id }
func (s *Student) TrainerID() uint       { return s.trainerID }
func (s *Student) Name() string          { return s.name }
func (s *Student) Email() string         { return s.email }
func (s *Student) Notes() string         { return s.notes }
func (s *Student) Status() Status        { return s.status }
func (s *Student) PasswordHash() *string { return s.passwordHash }
func (s *Student) CreatedAt() time.Time  { return s.createdAt }
func (s *Student) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Student) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("student ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("student ID cannot be zero")
	}
	s.id = id
	return nil
}

// RequiresPassword reports whether the portal is gated. A student without a
// stored password is implicitly ungated.
func (s *Student) RequiresPassword() bool {
	return s.passwordHash != nil && *s.passwordHash != ""
}

// SetPortalPassword gates the portal with the given password hash.
func (s *Student) SetPortalPassword(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	s.passwordHash = &hash
	s.updatedAt = time.Now().UTC()
	return nil
}

// ClearPortalPassword removes the gate entirely.
func (s *Student) ClearPortalPassword() {
	s.passwordHash = nil
	s.updatedAt = time.Now().UTC()
}

func (s *Student) Activate() {
	s.status = StatusActive
	s.updatedAt = time.Now().UTC()
}

func (s *Student) Deactivate() {
	s.status = StatusInactive
	s.updatedAt = time.Now().UTC()
}

func (s *Student) UpdateProfile(name, email, notes string) error {
	if name == "" {
		return fmt.Errorf("student name is required")
	}
	s.name = name
	s.email = strings.ToLower(strings.TrimSpace(email))
	s.notes = notes
	s.updatedAt = time.Now().UTC()
	return nil
}
