package repository

import (
	"time"

	"go-loja-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleReportRow is a sale joined with its product name, as served by the
// sales report. Values come straight from the sale row: the report is a fold
// over recorded figures, not a recomputation from current prices.
type SaleReportRow struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"produto_id"`
	ProductName   string    `json:"produto_nome"`
	Quantity      int       `json:"quantidade"`
	PaymentMethod string    `json:"forma_pagamento"`
	TotalValue    float64   `json:"valor_total"`
	Profit        float64   `json:"lucro"`
	Date          time.Time `json:"data"`
}

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindByID(id uuid.UUID) (*model.Sale, error)
	Delete(tx *gorm.DB, id uuid.UUID) (bool, error)
	FindAllForReport() ([]SaleReportRow, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create inserts the sale within the caller's transaction so the insert and
// the stock decrement commit or roll back together.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Delete removes the sale within the caller's transaction. False means the
// sale was already gone (possibly reversed concurrently), and the caller must
// not release stock for it.
func (r *saleRepo) Delete(tx *gorm.DB, id uuid.UUID) (bool, error) {
	res := tx.Delete(&model.Sale{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *saleRepo) FindAllForReport() ([]SaleReportRow, error) {
	var rows []SaleReportRow
	err := r.db.Model(&model.Sale{}).
		Select(`sales.id, sales.product_id, products.name AS product_name,
			sales.quantity, sales.payment_method, sales.total_value, sales.profit,
			sales.created_at AS date`).
		Joins("JOIN products ON products.id = sales.product_id").
		Order("sales.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
