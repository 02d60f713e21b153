// Package dbtest provides throwaway migrated databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"uniadmin-backend/config"
	"uniadmin-backend/internal/db"
)

// NewSQLite returns a migrated in-memory SQLite database private to t.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory DB keeps every pooled connection on the
	// same data while isolating tests from each other.
	gormDB, err := db.Open(&config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return gormDB
}
