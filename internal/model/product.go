package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);not null" json:"nome" validate:"required"`
	Price    float64 `gorm:"type:numeric(10,2);not null" json:"preco" validate:"gte=0"`
	Cost     float64 `gorm:"type:numeric(10,2);not null" json:"custo" validate:"gte=0"`
	Stock    int     `gorm:"not null;default:0" json:"estoque" validate:"gte=0"`
	MinStock int     `gorm:"default:0" json:"estoque_minimo" validate:"gte=0"`

	// Category references are optional; deleting a category leaves the product in place.
	CategoryID    *uuid.UUID   `gorm:"type:uuid" json:"categoria_id"`
	SubcategoryID *uuid.UUID   `gorm:"type:uuid" json:"subcategoria_id"`
	Category      *Category    `gorm:"constraint:OnDelete:SET NULL" json:"-" validate:"-"`
	Subcategory   *Subcategory `gorm:"constraint:OnDelete:SET NULL" json:"-" validate:"-"`

	Sales []Sale `json:"-" validate:"-"`
}

// LowStock reports whether the product is at or below its minimum stock threshold.
func (p *Product) LowStock() bool {
	return p.MinStock > 0 && p.Stock <= p.MinStock
}
