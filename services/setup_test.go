package services

import (
	"testing"
	"time"

	"bookit/config"
	"bookit/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB returns an in-memory SQLite database. A single connection keeps
// every goroutine on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func seedRoom(t *testing.T, db *gorm.DB, name string) *models.Room {
	t.Helper()
	room := &models.Room{
		Name:          name,
		Description:   "A quiet room",
		Address:       "12 Harbour St",
		PricePerNight: 100,
		GuestCapacity: 2,
		NumOfBeds:     1,
		Category:      "King",
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func fixedNow(s string) func() time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}
