package gorm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	kdb "github.com/psmphuket/portal/pkg/db"
	pdb "github.com/psmphuket/portal/pkg/db/gorm"
)

// testDatabase opens a fresh in-memory database per test. The pool is
// pinned to one connection so every query sees the same sqlite memory.
func testDatabase(t *testing.T) kdb.Database {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqldb, err := conn.DB()
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	database, err := pdb.Wrap(conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}
