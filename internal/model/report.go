package model

import "github.com/shopspring/decimal"

// Summary is the dashboard snapshot handed to reporting collaborators.
type Summary struct {
	TotalSalesAmount decimal.Decimal `json:"total_sales_amount"`
	TotalSupplyCost  decimal.Decimal `json:"total_supply_cost"`
	UnitsInStock     int             `json:"units_in_stock"`
	ProductCount     int             `json:"product_count"`
	LowStockCount    int             `json:"low_stock_count"`
	OutOfStockCount  int             `json:"out_of_stock_count"`
}
