package testutils

import (
	"fmt"
	"testing"

	"resource-planner-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory sqlite database with the schema
// migrated. The database is dropped when the test finishes.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	// a named shared-cache database survives across pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:   database.DriverSQLite,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err, "failed to open sqlite test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
