package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/sale/dto"
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

func (r *SQLiteRepository) Create(ctx context.Context, s *model.Sale) error {
	query := `
        INSERT INTO sales (id, product_id, customer_id, quantity, unit_price, total, sale_date)
        VALUES (:id, :product_id, :customer_id, :quantity, :unit_price, :total, :sale_date)
    `
	_, err := sqlx.NamedExecContext(ctx, store.Executor(ctx, r.DB), query, s)
	return apperror.Storage("insert sale", err)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	var sale model.Sale
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &sale, `SELECT * FROM sales WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage("find sale", err)
	}
	return &sale, nil
}

func whereClause(f *dto.SaleFilters) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	if f == nil {
		return "", args
	}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = ?")
		args = append(args, f.ProductID)
	}
	if f.CustomerID != "" {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, f.CustomerID)
	}
	// Stored timestamps are UTC, so bound values must be too for text comparison.
	if f.StartDate != nil {
		conditions = append(conditions, "sale_date >= ?")
		args = append(args, f.StartDate.UTC())
	}
	if f.EndDate != nil {
		conditions = append(conditions, "sale_date <= ?")
		args = append(args, f.EndDate.UTC())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.Sale, error) {
	where, args := whereClause(f)
	order := " ORDER BY sale_date ASC, id ASC"
	if f != nil && f.Newest {
		order = " ORDER BY sale_date DESC, id DESC"
	}

	sales := []model.Sale{}
	err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &sales, "SELECT * FROM sales"+where+order, args...)
	if err != nil {
		return nil, apperror.Storage("list sales", err)
	}
	return sales, nil
}

// SumTotal adds totals in Go; SQLite SUM over TEXT would go through REAL.
func (r *SQLiteRepository) SumTotal(ctx context.Context, f *dto.SaleFilters) (decimal.Decimal, error) {
	where, args := whereClause(f)

	var totals []decimal.Decimal
	err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &totals, "SELECT total FROM sales"+where, args...)
	if err != nil {
		return decimal.Zero, apperror.Storage("sum sales", err)
	}
	return decimal.Sum(decimal.Zero, totals...), nil
}

func (r *SQLiteRepository) BestSelling(ctx context.Context, limit int) ([]model.ProductSales, error) {
	query := `
        SELECT p.*, SUM(s.quantity) AS total_sold
        FROM products p
        JOIN sales s ON s.product_id = p.id
        GROUP BY p.id
        ORDER BY total_sold DESC, p.id ASC
        LIMIT ?
    `
	items := []model.ProductSales{}
	if err := sqlx.SelectContext(ctx, store.Executor(ctx, r.DB), &items, query, limit); err != nil {
		return nil, apperror.Storage("best selling products", err)
	}
	return items, nil
}

func (r *SQLiteRepository) CountByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, store.Executor(ctx, r.DB), &count, `SELECT count(*) FROM sales WHERE product_id = ?`, productID)
	if err != nil {
		return 0, apperror.Storage("count sales", err)
	}
	return count, nil
}

func (r *SQLiteRepository) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := store.Executor(ctx, r.DB).ExecContext(ctx, `DELETE FROM sales WHERE product_id = ?`, productID)
	return apperror.Storage("delete sales", err)
}
