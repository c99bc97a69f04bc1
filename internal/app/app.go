// Package app wires the ledger's repositories and use cases over one store.
// In-process callers (presentation, export) hold a *Ledger and use only its use cases.
package app

import (
	"github.com/fekuna/omnipos-ledger/internal/customer"
	"github.com/fekuna/omnipos-ledger/internal/inventory"
	"github.com/fekuna/omnipos-ledger/internal/pkg/lock"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/product"
	"github.com/fekuna/omnipos-ledger/internal/report"
	"github.com/fekuna/omnipos-ledger/internal/sale"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/supply"
	"github.com/jmoiron/sqlx"

	custRepoPkg "github.com/fekuna/omnipos-ledger/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-ledger/internal/customer/usecase"

	invRepoPkg "github.com/fekuna/omnipos-ledger/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-ledger/internal/inventory/usecase"

	prodRepoPkg "github.com/fekuna/omnipos-ledger/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-ledger/internal/product/usecase"

	reportUCPkg "github.com/fekuna/omnipos-ledger/internal/report/usecase"

	saleRepoPkg "github.com/fekuna/omnipos-ledger/internal/sale/repository"
	saleUCPkg "github.com/fekuna/omnipos-ledger/internal/sale/usecase"

	supRepoPkg "github.com/fekuna/omnipos-ledger/internal/supply/repository"
	supUCPkg "github.com/fekuna/omnipos-ledger/internal/supply/usecase"
)

type Ledger struct {
	Products  product.UseCase
	Customers customer.UseCase
	Sales     sale.UseCase
	Supplies  supply.UseCase
	Inventory inventory.UseCase
	Reports   report.UseCase
}

func New(db *sqlx.DB, locker lock.Locker, log logger.ZapLogger) *Ledger {
	// Repositories
	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	custRepo := custRepoPkg.NewSQLiteRepository(db)
	saleRepo := saleRepoPkg.NewSQLiteRepository(db)
	supRepo := supRepoPkg.NewSQLiteRepository(db)
	invRepo := invRepoPkg.NewSQLiteRepository(db)
	txManager := store.NewTxManager(db)

	// UseCases
	return &Ledger{
		Products:  prodUCPkg.NewProductUseCase(prodRepo, saleRepo, supRepo, invRepo, txManager, locker, log),
		Customers: custUCPkg.NewCustomerUseCase(custRepo, txManager, log),
		Sales:     saleUCPkg.NewSaleUseCase(saleRepo, prodRepo, custRepo, txManager, locker, log),
		Supplies:  supUCPkg.NewSupplyUseCase(supRepo, prodRepo, txManager, locker, log),
		Inventory: invUCPkg.NewInventoryUseCase(invRepo, prodRepo, txManager, log),
		Reports:   reportUCPkg.NewReportUseCase(prodRepo, saleRepo, supRepo, txManager, log),
	}
}
