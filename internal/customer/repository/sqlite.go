package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (id, name, phone, email, discount, total_purchases, created_at, updated_at)
        VALUES (:id, :name, :phone, :email, :discount, :total_purchases, :created_at, :updated_at)
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, c)
	return apperror.Storage("insert customer", err)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &customer, `SELECT * FROM customers WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage("find customer", err)
	}
	return &customer, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &customers, `SELECT * FROM customers ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, apperror.Storage("list customers", err)
	}
	return customers, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET name = :name,
            phone = :phone,
            email = :email,
            discount = :discount,
            total_purchases = :total_purchases,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, c)
	return apperror.Storage("update customer", err)
}

func (r *SQLiteRepository) SetTotalPurchases(ctx context.Context, id string, total decimal.Decimal) error {
	_, err := store.Executor(ctx, r.DB).ExecContext(ctx,
		`UPDATE customers SET total_purchases = ?, updated_at = ? WHERE id = ?`,
		total, time.Now().UTC(), id)
	return apperror.Storage("update total purchases", err)
}
