// Package storetest opens isolated, migrated in-memory ledgers for tests.
package storetest

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.NewSQLite(&sqlite.Config{Path: t.Name(), InMemory: true, BusyTimeoutMS: 1000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.Migrate(context.Background(), db))
	return db
}

func Count(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT count(*) FROM "+table))
	return n
}
