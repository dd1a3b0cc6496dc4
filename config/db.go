package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"bookit/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newGormLogger() gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// ConnectDB mở kết nối Postgres, hoặc SQLite khi chỉ cấu hình SQLITE_PATH.
func ConnectDB(s Settings) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: newGormLogger()}

	switch {
	case s.DSN != "":
		db, err := gorm.Open(postgres.Open(s.DSN), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return db, nil
	case s.SQLite != "":
		db, err := gorm.Open(sqlite.Open(s.SQLite), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		// SQLite chỉ cho một writer tại một thời điểm
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
		return db, nil
	}
	return nil, errors.New("DB_DSN or SQLITE_PATH is required")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Room{}, &models.Review{}, &models.Booking{})
}
