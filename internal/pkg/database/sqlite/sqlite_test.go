package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &Config{Path: "store.db", BusyTimeoutMS: 250}
	dsn := cfg.DSN()

	assert.Contains(t, dsn, "file:store.db?")
	assert.Contains(t, dsn, "_busy_timeout=250")
	assert.Contains(t, dsn, "_foreign_keys=on")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.NotContains(t, dsn, "mode=memory")
}

func TestDSNInMemorySanitizesName(t *testing.T) {
	cfg := &Config{Path: "TestSale/oversell case", InMemory: true}
	dsn := cfg.DSN()

	assert.Contains(t, dsn, "file:TestSale_oversell_case?")
	assert.Contains(t, dsn, "mode=memory")
	assert.Contains(t, dsn, "cache=shared")
	assert.Contains(t, dsn, "_busy_timeout=5000")
}

func TestNewSQLiteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	db, err := NewSQLite(&Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	var fk int
	require.NoError(t, db.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}
