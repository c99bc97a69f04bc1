package dto

import "time"

// SaleFilters narrows sale listings. Start and End are inclusive and only
// applied when set.
type SaleFilters struct {
	ProductID  string
	CustomerID string
	StartDate  *time.Time
	EndDate    *time.Time
	Newest     bool // order by sale_date DESC instead of ASC
}
