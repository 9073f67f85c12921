package models

import "time"

type StudentModel struct {
	ID           uint    `gorm:"primaryKey"`
	TrainerID    uint    `gorm:"index;not null"`
	Name         string  `gorm:"size:100;not null"`
	Email        string  `gorm:"size:255"`
	Notes        string  `gorm:"type:text"`
	Status       string  `gorm:"size:20;not null;index"`
	PasswordHash *string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StudentModel) TableName() string {
	return "students"
}
