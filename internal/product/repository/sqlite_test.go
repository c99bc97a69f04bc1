package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/product/repository"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/store/storetest"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(quantity int, barcode *string) *model.Product {
	now := time.Now().UTC()
	return &model.Product{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      "Widget",
		Category:  model.CategoryOther,
		Price:     decimal.RequireFromString("2.50"),
		Quantity:  quantity,
		MinStock:  1,
		Barcode:   barcode,
	}
}

func TestAdjustQuantityNeverGoesNegative(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteRepository(storetest.NewDB(t))
	p := newProduct(3, nil)
	require.NoError(t, repo.Create(ctx, p))

	ok, err := repo.AdjustQuantity(ctx, p.ID, -3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AdjustQuantity(ctx, p.ID, -1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AdjustQuantity(ctx, p.ID, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AdjustQuantity(ctx, "missing", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
}

func TestIsBarcodeUnique(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteRepository(storetest.NewDB(t))
	code := "4006381333931"
	p := newProduct(1, &code)
	require.NoError(t, repo.Create(ctx, p))

	unique, err := repo.IsBarcodeUnique(ctx, code, "")
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = repo.IsBarcodeUnique(ctx, code, p.ID)
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = repo.IsBarcodeUnique(ctx, "", "")
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestRepositoryJoinsUnitOfWork(t *testing.T) {
	ctx := context.Background()
	db := storetest.NewDB(t)
	repo := repository.NewSQLiteRepository(db)
	tm := store.NewTxManager(db)

	p := newProduct(1, nil)
	err := tm.Do(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got, "reads inside the unit of work see its writes")
		return context.Canceled
	})
	assert.Error(t, err)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
