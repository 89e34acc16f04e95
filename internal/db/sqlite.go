package db

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "github.com/abheesh-03/Flight-Tracker/internal/models/gorm"
)

var DB *gorm.DB

// InitSQLite opens the local airport store and migrates its schema. The
// path comes from SQLITE_PATH, defaulting to a file next to the binary.
func InitSQLite() (*gorm.DB, error) {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "flighttracker.db"
	}

	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	if err := database.AutoMigrate(&gormModels.Airport{}); err != nil {
		return nil, fmt.Errorf("failed to migrate airport schema: %w", err)
	}

	DB = database
	return database, nil
}
