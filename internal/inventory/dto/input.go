package dto

type RecordCheckInput struct {
	ProductID       string `validate:"required"`
	CountedQuantity int    `validate:"gte=0"`
	Notes           string `validate:"max=1000"`
}
