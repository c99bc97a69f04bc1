package model

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Sale is append-only. UnitPrice is the product price at the moment of sale.
type Sale struct {
	ID         string          `db:"id" json:"id"`
	ProductID  string          `db:"product_id" json:"product_id"`
	CustomerID *string         `db:"customer_id" json:"customer_id"` // Nullable, anonymous sale
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	Total      decimal.Decimal `db:"total" json:"total"`
	SaleDate   time.Time       `db:"sale_date" json:"sale_date"`
}

// SaleTotal is unitPrice * quantity, reduced by discount percent when positive.
func SaleTotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if discount.IsPositive() {
		total = total.Mul(hundred.Sub(discount)).Div(hundred)
	}
	return total
}

type ProductSales struct {
	Product
	TotalSold int `db:"total_sold" json:"total_sold"`
}
