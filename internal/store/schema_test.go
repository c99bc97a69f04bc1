package store_test

import (
	"testing"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/store/storetest"
	"github.com/stretchr/testify/assert"
)

func TestSchemaChecksMoneyRanges(t *testing.T) {
	db := storetest.NewDB(t)
	now := time.Now().UTC()

	insertCustomer := func(id, discount, total string) error {
		_, err := db.Exec(`INSERT INTO customers (id, name, discount, total_purchases, created_at, updated_at)
			VALUES (?, 'Ana', ?, ?, ?, ?)`, id, discount, total, now, now)
		return err
	}
	assert.NoError(t, insertCustomer("c-1", "100", "0"))
	assert.NoError(t, insertCustomer("c-2", "0", "12.50"))
	assert.Error(t, insertCustomer("c-3", "101", "0"))
	assert.Error(t, insertCustomer("c-4", "-1", "0"))
	assert.Error(t, insertCustomer("c-5", "10", "-0.01"))

	_, err := db.Exec(`INSERT INTO products (id, name, category, price, quantity, min_stock, created_at, updated_at)
		VALUES ('p-1', 'Widget', 'other', '-1', 1, 0, ?, ?)`, now, now)
	assert.Error(t, err)

	assert.Equal(t, 2, storetest.Count(t, db, "customers"))
	assert.Equal(t, 0, storetest.Count(t, db, "products"))
}
