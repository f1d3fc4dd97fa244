package db

import (
	"fmt"
	"log"

	"fitness-app/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database backing the dev server and runs
// migrations. Pass ":memory:" for a throwaway database.
func Connect(path string) (Database, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Println("Running database migrations...")
	if err := gdb.AutoMigrate(&entities.User{}, &entities.Activity{}, &entities.Biometric{}, &entities.Recipe{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &GormDatabase{DB: gdb}, nil
}
