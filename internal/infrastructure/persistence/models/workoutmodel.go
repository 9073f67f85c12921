package models

import (
	"time"

	"gorm.io/datatypes"
)

type WorkoutModel struct {
	ID           uint           `gorm:"primaryKey"`
	TrainerID    uint           `gorm:"index;not null"`
	StudentID    uint           `gorm:"index;not null"`
	Name         string         `gorm:"size:100;not null"`
	Notes        string         `gorm:"type:text"`
	Items        datatypes.JSON `gorm:"type:json"`
	PasswordHash *string        `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (WorkoutModel) TableName() string {
	return "workouts"
}
