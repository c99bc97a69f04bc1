package store

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// TxManager runs a unit of work: every repository call made with the context
// passed to fn joins the same transaction.
type TxManager struct {
	DB *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{DB: db}
}

// Do commits only when fn returns nil. Any error, panic or cancelled context rolls back.
// Nested calls reuse the outer transaction.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.DB.BeginTxx(ctx, nil)
	if err != nil {
		return apperror.Storage("begin unit of work", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return apperror.Storage("unit of work", err)
	}
	if err = ctx.Err(); err != nil {
		return apperror.Storage("unit of work", err)
	}
	if err = tx.Commit(); err != nil {
		return apperror.Storage("commit unit of work", err)
	}
	return nil
}

// Executor returns the transaction carried by ctx, or db outside a unit of work.
func Executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
