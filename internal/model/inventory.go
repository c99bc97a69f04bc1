package model

import "time"

// InventoryCheck records a physical count. It never changes stock by itself.
type InventoryCheck struct {
	ID               string    `db:"id" json:"id"`
	ProductID        string    `db:"product_id" json:"product_id"`
	ExpectedQuantity int       `db:"expected_quantity" json:"expected_quantity"`
	CountedQuantity  int       `db:"counted_quantity" json:"counted_quantity"`
	Notes            string    `db:"notes" json:"notes"`
	CheckedAt        time.Time `db:"checked_at" json:"checked_at"`
}

func (c *InventoryCheck) Discrepancy() int {
	return c.CountedQuantity - c.ExpectedQuantity
}
