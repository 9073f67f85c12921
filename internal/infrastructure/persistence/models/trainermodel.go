package models

import "time"

type TrainerModel struct {
	ID              uint    `gorm:"primaryKey"`
	Email           string  `gorm:"uniqueIndex;size:255;not null"`
	Name            string  `gorm:"size:100;not null"`
	PasswordHash    string  `gorm:"size:255;not null"`
	Plan            string  `gorm:"size:20;not null;default:'Start'"`
	BillingStatus   string  `gorm:"size:20;not null;default:'trialing'"`
	CustomerID      *string `gorm:"size:128;index"`
	SubscriptionID  *string `gorm:"size:128;index"`
	BillingCycleEnd *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TrainerModel) TableName() string {
	return "trainers"
}
