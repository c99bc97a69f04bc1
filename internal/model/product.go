package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `db:"name" json:"name"`
	Category    Category        `db:"category" json:"category"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Quantity    int             `db:"quantity" json:"quantity"`
	MinStock    int             `db:"min_stock" json:"min_stock"`
	Barcode     *string         `db:"barcode" json:"barcode"`         // Nullable
	Description *string         `db:"description" json:"description"` // Nullable
}

// IsLowStock is the single low-stock predicate. Zero stock is also low stock.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.MinStock
}

// ProductRelations counts the records a cascade delete of the product removes.
type ProductRelations struct {
	Sales           int `db:"sales" json:"sales"`
	Supplies        int `db:"supplies" json:"supplies"`
	InventoryChecks int `db:"inventory_checks" json:"inventory_checks"`
}

func (r ProductRelations) Total() int {
	return r.Sales + r.Supplies + r.InventoryChecks
}
