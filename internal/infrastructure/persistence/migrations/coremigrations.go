package migrations

import (
	"gorm.io/gorm"

	"coachdesk/internal/infrastructure/persistence/models"
)

// MigrateCoreTables migrates all application tables.
func MigrateCoreTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TrainerModel{},
		&models.StudentModel{},
		&models.ExerciseModel{},
		&models.WorkoutModel{},
		&models.AppointmentModel{},
	)
}
