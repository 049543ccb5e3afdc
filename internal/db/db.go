package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scriptorium/internal/models"
)

// Init opens the database and migrates the comment engine's tables. The
// handle is returned rather than stored globally; every store takes it
// at construction so tests can swap it out.
func Init(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = conn.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.Report{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return conn, nil
}
