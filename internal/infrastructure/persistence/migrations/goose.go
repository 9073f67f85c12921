package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed scripts/*.sql
var migrationScripts embed.FS

// Up applies all pending migrations.
func Up(db *gorm.DB) error {
	return withGoose(db, func(sqlDB *sql.DB) error { return goose.Up(sqlDB, "scripts") })
}

// Down rolls back the most recent migration.
func Down(db *gorm.DB) error {
	return withGoose(db, func(sqlDB *sql.DB) error { return goose.Down(sqlDB, "scripts") })
}

// Status prints migration status to stdout.
func Status(db *gorm.DB) error {
	return withGoose(db, func(sqlDB *sql.DB) error { return goose.Status(sqlDB, "scripts") })
}

func withGoose(db *gorm.DB, fn func(*sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return fn(sqlDB)
}
