package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/store/storetest"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertProduct(ctx context.Context, db *sqlx.DB, id string) error {
	now := time.Now().UTC()
	_, err := store.Executor(ctx, db).ExecContext(ctx,
		`INSERT INTO products (id, name, category, price, quantity, min_stock, created_at, updated_at)
		 VALUES (?, 'Widget', 'other', '1', 1, 0, ?, ?)`, id, now, now)
	return err
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := storetest.NewDB(t)
	require.NoError(t, store.Migrate(context.Background(), db))
	require.NoError(t, store.Migrate(context.Background(), db))

	for _, table := range []string{"products", "customers", "sales", "supplies", "inventory_checks"} {
		assert.Equal(t, 0, storetest.Count(t, db, table), table)
	}
}

func TestDoCommits(t *testing.T) {
	db := storetest.NewDB(t)
	tm := store.NewTxManager(db)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return insertProduct(ctx, db, "p-1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, storetest.Count(t, db, "products"))
}

func TestDoRollsBackOnError(t *testing.T) {
	db := storetest.NewDB(t)
	tm := store.NewTxManager(db)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		require.NoError(t, insertProduct(ctx, db, "p-1"))
		return apperror.Validation("late failure")
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, 0, storetest.Count(t, db, "products"))
}

func TestDoWrapsDriverErrors(t *testing.T) {
	db := storetest.NewDB(t)
	tm := store.NewTxManager(db)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		require.NoError(t, insertProduct(ctx, db, "p-1"))
		return insertProduct(ctx, db, "p-1") // duplicate key
	})
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.Equal(t, 0, storetest.Count(t, db, "products"))
}

func TestDoRollsBackOnPanic(t *testing.T) {
	db := storetest.NewDB(t)
	tm := store.NewTxManager(db)

	assert.Panics(t, func() {
		_ = tm.Do(context.Background(), func(ctx context.Context) error {
			require.NoError(t, insertProduct(ctx, db, "p-1"))
			panic("boom")
		})
	})
	assert.Equal(t, 0, storetest.Count(t, db, "products"))
}

func TestDoNestedJoinsOuter(t *testing.T) {
	db := storetest.NewDB(t)
	tm := store.NewTxManager(db)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		if err := tm.Do(ctx, func(ctx context.Context) error {
			return insertProduct(ctx, db, "p-1")
		}); err != nil {
			return err
		}
		return errors.New("outer fails")
	})
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.Equal(t, 0, storetest.Count(t, db, "products"))
}

func TestDoHonoursCancelledContext(t *testing.T) {
	db := storetest.NewDB(t)
	tm := store.NewTxManager(db)
	ctx, cancel := context.WithCancel(context.Background())

	err := tm.Do(ctx, func(txCtx context.Context) error {
		if err := insertProduct(txCtx, db, "p-1"); err != nil {
			return err
		}
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.Equal(t, 0, storetest.Count(t, db, "products"))
}

func TestExecutorOutsideUnitOfWork(t *testing.T) {
	db := storetest.NewDB(t)
	assert.Same(t, db, store.Executor(context.Background(), db))
}
