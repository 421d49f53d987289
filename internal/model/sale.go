package model

import "github.com/google/uuid"

// Sale is immutable once recorded: total and profit are snapshots of the
// product's price and cost at the moment of sale, never recomputed.
type Sale struct {
	BaseModel
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"produto_id"`
	Product       Product   `json:"-" validate:"-"`
	Quantity      int       `gorm:"not null" json:"quantidade"`
	PaymentMethod string    `gorm:"type:varchar(30);not null" json:"forma_pagamento"`
	TotalValue    float64   `gorm:"type:numeric(10,2);not null" json:"valor_total"`
	Profit        float64   `gorm:"type:numeric(10,2);not null" json:"lucro"`
}

// SaleInput is the request payload for recording a sale.
type SaleInput struct {
	ProductID     uuid.UUID `json:"produto_id" validate:"uuid_required"`
	Quantity      int       `json:"quantidade" validate:"required,gt=0"`
	PaymentMethod string    `json:"forma_pagamento" validate:"required"` // CASH, PIX, CARTAO...
}

// NewSale builds a sale from the product's current price and cost.
func NewSale(product *Product, input *SaleInput) *Sale {
	totalValue := product.Price * float64(input.Quantity)
	return &Sale{
		ProductID:     product.ID,
		Quantity:      input.Quantity,
		PaymentMethod: input.PaymentMethod,
		TotalValue:    totalValue,
		Profit:        totalValue - product.Cost*float64(input.Quantity),
	}
}
