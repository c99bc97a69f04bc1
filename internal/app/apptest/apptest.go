// Package apptest builds a fully wired ledger over an isolated in-memory store.
package apptest

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/app"
	customerDto "github.com/fekuna/omnipos-ledger/internal/customer/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/lock"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	productDto "github.com/fekuna/omnipos-ledger/internal/product/dto"
	"github.com/fekuna/omnipos-ledger/internal/store/storetest"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func New(t *testing.T) (*app.Ledger, *sqlx.DB) {
	t.Helper()
	db := storetest.NewDB(t)
	return app.New(db, lock.NewMemoryLocker(), logger.NewNop()), db
}

func Product(t *testing.T, l *app.Ledger, name, price string, quantity, minStock int) *model.Product {
	t.Helper()
	p, err := l.Products.CreateProduct(context.Background(), &productDto.CreateProductInput{
		Name:     name,
		Category: model.CategoryOther,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
		MinStock: minStock,
	})
	require.NoError(t, err)
	return p
}

func Customer(t *testing.T, l *app.Ledger, name, discount string) *model.Customer {
	t.Helper()
	c, err := l.Customers.CreateCustomer(context.Background(), &customerDto.CreateCustomerInput{
		Name:     name,
		Discount: decimal.RequireFromString(discount),
	})
	require.NoError(t, err)
	return c
}

// Quantity reads the stored stock level directly.
func Quantity(t *testing.T, l *app.Ledger, productID string) int {
	t.Helper()
	p, err := l.Products.GetProduct(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func SetPrice(t *testing.T, l *app.Ledger, productID, price string) {
	t.Helper()
	d := decimal.RequireFromString(price)
	_, err := l.Products.UpdateProduct(context.Background(), &productDto.UpdateProductInput{ID: productID, Price: &d})
	require.NoError(t, err)
}
