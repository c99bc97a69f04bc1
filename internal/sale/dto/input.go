package dto

type RecordSaleInput struct {
	ProductID  string  `validate:"required"`
	Quantity   int     `validate:"gt=0"`
	CustomerID *string `validate:"omitempty,min=1"` // nil for an anonymous sale
}
