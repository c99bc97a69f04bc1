package dto

import "github.com/shopspring/decimal"

type CreateCustomerInput struct {
	Name     string          `validate:"required,max=200"`
	Phone    string          `validate:"max=32"`
	Email    string          `validate:"omitempty,email"`
	Discount decimal.Decimal `validate:"dgte=0,dlte=100"`
}

// UpdateCustomerInput is a partial update. TotalPurchases is for corrections only;
// sales raise it through the sale use case.
type UpdateCustomerInput struct {
	ID             string           `validate:"required"`
	Name           *string          `validate:"omitempty,min=1,max=200"`
	Phone          *string          `validate:"omitempty,max=32"`
	Email          *string          `validate:"omitempty,max=254"`
	Discount       *decimal.Decimal `validate:"omitempty,dgte=0,dlte=100"`
	TotalPurchases *decimal.Decimal `validate:"omitempty,dgte=0"`
}
