package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/app/apptest"
	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckSnapshotsExpectedQuantity(t *testing.T) {
	ctx := context.Background()
	l, _ := apptest.New(t)
	p := apptest.Product(t, l, "Widget", "1.00", 7, 0)

	c, err := l.Inventory.RecordCheck(ctx, &dto.RecordCheckInput{ProductID: p.ID, CountedQuantity: 5, Notes: " two missing "})
	require.NoError(t, err)

	assert.Equal(t, 7, c.ExpectedQuantity)
	assert.Equal(t, 5, c.CountedQuantity)
	assert.Equal(t, -2, c.Discrepancy())
	assert.Equal(t, "two missing", c.Notes)
	// A check never moves stock.
	assert.Equal(t, 7, apptest.Quantity(t, l, p.ID))
}

func TestRecordCheckErrors(t *testing.T) {
	ctx := context.Background()
	l, _ := apptest.New(t)
	p := apptest.Product(t, l, "Widget", "1.00", 7, 0)

	_, err := l.Inventory.RecordCheck(ctx, &dto.RecordCheckInput{ProductID: "missing", CountedQuantity: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = l.Inventory.RecordCheck(ctx, &dto.RecordCheckInput{ProductID: p.ID, CountedQuantity: -1})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	checks, err := l.Inventory.ListChecks(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestListChecksNewestFirst(t *testing.T) {
	ctx := context.Background()
	l, _ := apptest.New(t)
	p := apptest.Product(t, l, "Widget", "1.00", 7, 0)
	other := apptest.Product(t, l, "Other", "1.00", 1, 0)

	for _, n := range []int{7, 6, 7} {
		_, err := l.Inventory.RecordCheck(ctx, &dto.RecordCheckInput{ProductID: p.ID, CountedQuantity: n})
		require.NoError(t, err)
	}
	_, err := l.Inventory.RecordCheck(ctx, &dto.RecordCheckInput{ProductID: other.ID, CountedQuantity: 1})
	require.NoError(t, err)

	checks, err := l.Inventory.ListChecks(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, checks, 3)
	for i := 1; i < len(checks); i++ {
		assert.False(t, checks[i].CheckedAt.After(checks[i-1].CheckedAt))
	}
}
