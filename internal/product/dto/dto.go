package dto

type ProductFilters struct {
	Category string
	LowStock bool // quantity < min_stock
	SortBy   string // name, price, quantity, created_at
	SortDesc bool
}
