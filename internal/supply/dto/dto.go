package dto

import "time"

type SupplyFilters struct {
	ProductID string
	StartDate *time.Time
	EndDate   *time.Time
}
