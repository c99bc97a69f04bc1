package model

import "github.com/shopspring/decimal"

type Customer struct {
	BaseModel
	Name           string          `db:"name" json:"name"`
	Phone          *string         `db:"phone" json:"phone"`       // Nullable
	Email          *string         `db:"email" json:"email"`       // Nullable
	Discount       decimal.Decimal `db:"discount" json:"discount"` // Percent, 0..100
	TotalPurchases decimal.Decimal `db:"total_purchases" json:"total_purchases"`
}
