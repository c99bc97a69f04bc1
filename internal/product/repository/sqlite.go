package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/product/dto"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, category, price, quantity, min_stock,
            barcode, description, created_at, updated_at
        )
        VALUES (
            :id, :name, :category, :price, :quantity, :min_stock,
            :barcode, :description, :created_at, :updated_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, p)
	return apperror.Storage("insert product", err)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = ? LIMIT 1`
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage("find product", err)
	}
	return &product, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	if f == nil {
		f = &dto.ProductFilters{}
	}
	conditions := []string{}
	args := []interface{}{}

	if f.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, f.Category)
	}
	if f.LowStock {
		conditions = append(conditions, "quantity < min_stock")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Whitelisted to keep user input out of ORDER BY
	orderBy := "created_at"
	switch f.SortBy {
	case "name":
		orderBy = "name"
	case "quantity":
		orderBy = "quantity"
	case "price":
		orderBy = "CAST(price AS REAL)"
	}
	if f.SortDesc {
		orderBy += " DESC"
	} else {
		orderBy += " ASC"
	}

	query := "SELECT * FROM products" + whereClause + " ORDER BY " + orderBy + ", id ASC"

	products := []model.Product{}
	if err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &products, query, args...); err != nil {
		return nil, apperror.Storage("list products", err)
	}
	return products, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            category = :category,
            price = :price,
            quantity = :quantity,
            min_stock = :min_stock,
            barcode = :barcode,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, p)
	return apperror.Storage("update product", err)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := store.Executor(ctx, r.DB).ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return apperror.Storage("delete product", err)
}

func (r *SQLiteRepository) IsBarcodeUnique(ctx context.Context, barcode, excludeID string) (bool, error) {
	if barcode == "" {
		return true, nil
	}
	var count int
	query := `SELECT count(*) FROM products WHERE barcode = ?`
	args := []interface{}{barcode}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}

	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &count, query, args...)
	if err != nil {
		return false, apperror.Storage("check barcode", err)
	}
	return count == 0, nil
}

func (r *SQLiteRepository) AdjustQuantity(ctx context.Context, id string, delta int) (bool, error) {
	query := `
		UPDATE products
		SET quantity = quantity + ?, updated_at = ?
		WHERE id = ? AND quantity + ? >= 0
	`
	res, err := store.Executor(ctx, r.DB).ExecContext(ctx, query, delta, time.Now().UTC(), id, delta)
	if err != nil {
		return false, apperror.Storage("adjust quantity", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Storage("adjust quantity", err)
	}
	return rows == 1, nil
}
