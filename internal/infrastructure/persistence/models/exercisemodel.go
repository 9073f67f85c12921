package models

import "time"

type ExerciseModel struct {
	ID          uint   `gorm:"primaryKey"`
	TrainerID   uint   `gorm:"index;not null"`
	Name        string `gorm:"size:100;not null"`
	MuscleGroup string `gorm:"size:50;index"`
	Description string `gorm:"type:text"`
	VideoURL    string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ExerciseModel) TableName() string {
	return "exercises"
}
