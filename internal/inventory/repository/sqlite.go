package repository

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.InventoryCheck) error {
	query := `
        INSERT INTO inventory_checks (id, product_id, expected_quantity, counted_quantity, notes, checked_at)
        VALUES (:id, :product_id, :expected_quantity, :counted_quantity, :notes, :checked_at)
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, c)
	return apperror.Storage("insert inventory check", err)
}

func (r *SQLiteRepository) FindByProduct(ctx context.Context, productID string) ([]model.InventoryCheck, error) {
	checks := []model.InventoryCheck{}
	query := `SELECT * FROM inventory_checks WHERE product_id = ? ORDER BY checked_at DESC, id DESC`
	if err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &checks, query, productID); err != nil {
		return nil, apperror.Storage("list inventory checks", err)
	}
	return checks, nil
}

func (r *SQLiteRepository) CountByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &count, `SELECT count(*) FROM inventory_checks WHERE product_id = ?`, productID)
	if err != nil {
		return 0, apperror.Storage("count inventory checks", err)
	}
	return count, nil
}

func (r *SQLiteRepository) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := store.Executor(ctx, r.DB).ExecContext(ctx, `DELETE FROM inventory_checks WHERE product_id = ?`, productID)
	return apperror.Storage("delete inventory checks", err)
}
