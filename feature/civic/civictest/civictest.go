// Package civictest provides an in-memory store for tests of the civic packages.
package civictest

import (
	"sync"
	"testing"
	"time"

	"civic-sync/core/database"
	"civic-sync/feature/civic/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database.
//
// The database clock advances one second on every read so that each write gets
// a strictly later updated_at than the previous one.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	var mu sync.Mutex
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.Config.NowFunc = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}

// UpdatedAt reads the stored updated_at of a person or organization.
func UpdatedAt(t testing.TB, db *gorm.DB, table, id string) time.Time {
	t.Helper()

	var ts time.Time
	require.NoError(t, db.Table(table).Select("updated_at").Where("id = ?", id).Row().Scan(&ts))
	return ts
}
