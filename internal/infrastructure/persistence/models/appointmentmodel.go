package models

import "time"

type AppointmentModel struct {
	ID              uint      `gorm:"primaryKey"`
	TrainerID       uint      `gorm:"index;not null"`
	StudentID       uint      `gorm:"index;not null"`
	ScheduledAt     time.Time `gorm:"index;not null"`
	DurationMinutes int       `gorm:"not null"`
	Status          string    `gorm:"size:20;not null;index"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AppointmentModel) TableName() string {
	return "appointments"
}
