package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supply struct {
	ID         string          `db:"id" json:"id"`
	Supplier   string          `db:"supplier" json:"supplier"`
	ProductID  string          `db:"product_id" json:"product_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	Cost       decimal.Decimal `db:"cost" json:"cost"`
	SupplyDate time.Time       `db:"supply_date" json:"supply_date"`
}
