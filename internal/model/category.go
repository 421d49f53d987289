package model

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"nome" validate:"required"`

	Subcategories []Subcategory `json:"subcategorias,omitempty" validate:"-"`
}

type Subcategory struct {
	BaseModel
	Name       string    `gorm:"type:varchar(100);not null" json:"nome" validate:"required"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null" json:"categoria_id" validate:"uuid_required"`
}
