package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/supply/dto"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *model.Supply) error {
	query := `
        INSERT INTO supplies (id, supplier, product_id, quantity, cost, supply_date)
        VALUES (:id, :supplier, :product_id, :quantity, :cost, :supply_date)
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, s)
	return apperror.Storage("insert supply", err)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Supply, error) {
	var s model.Supply
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &s, `SELECT * FROM supplies WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage("find supply", err)
	}
	return &s, nil
}

func whereClause(f *dto.SupplyFilters) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	if f == nil {
		return "", args
	}
	if f.ProductID != "" {
		conditions = append(conditions, "product_id = ?")
		args = append(args, f.ProductID)
	}
	if f.StartDate != nil {
		conditions = append(conditions, "supply_date >= ?")
		args = append(args, f.StartDate.UTC())
	}
	if f.EndDate != nil {
		conditions = append(conditions, "supply_date <= ?")
		args = append(args, f.EndDate.UTC())
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.SupplyFilters) ([]model.Supply, error) {
	where, args := whereClause(f)
	supplies := []model.Supply{}
	query := "SELECT * FROM supplies" + where + " ORDER BY supply_date DESC, id DESC"
	if err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &supplies, query, args...); err != nil {
		return nil, apperror.Storage("list supplies", err)
	}
	return supplies, nil
}

func (r *SQLiteRepository) SumCost(ctx context.Context, f *dto.SupplyFilters) (decimal.Decimal, error) {
	where, args := whereClause(f)
	var costs []decimal.Decimal
	if err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &costs, "SELECT cost FROM supplies"+where, args...); err != nil {
		return decimal.Zero, apperror.Storage("sum supply cost", err)
	}
	return decimal.Sum(decimal.Zero, costs...), nil
}

func (r *SQLiteRepository) CountByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &count, `SELECT count(*) FROM supplies WHERE product_id = ?`, productID)
	if err != nil {
		return 0, apperror.Storage("count supplies", err)
	}
	return count, nil
}

func (r *SQLiteRepository) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := store.Executor(ctx, r.DB).ExecContext(ctx, `DELETE FROM supplies WHERE product_id = ?`, productID)
	return apperror.Storage("delete supplies", err)
}
