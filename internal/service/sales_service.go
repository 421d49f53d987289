package service

import (
	"errors"

	"go-loja-backend/internal/model"
	"go-loja-backend/internal/repository"
	"go-loja-backend/internal/ws"
	"go-loja-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesReport is the GET /relatorio-vendas payload. TotalProfit is a fold
// over the profit recorded on each sale.
type SalesReport struct {
	Sales       []repository.SaleReportRow `json:"vendas"`
	TotalProfit float64                    `json:"totalLucro"`
}

type SalesService interface {
	CreateSale(input *model.SaleInput) (*model.Sale, error)
	DeleteSale(id uuid.UUID) error
	Report() (*SalesReport, error)
}

type salesService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	tx          repository.TxManager
	hub         *ws.Hub
}

func NewSalesService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, tx repository.TxManager, hub *ws.Hub) SalesService {
	return &salesService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		tx:          tx,
		hub:         hub,
	}
}

// CreateSale validates stock, snapshots the product's price and cost into the
// sale's totals, and performs the stock decrement plus the sale insert as one
// transaction. Either both writes commit or neither does.
func (s *salesService) CreateSale(input *model.SaleInput) (*model.Sale, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var sale *model.Sale
	err := s.tx.Transaction(func(tx *gorm.DB) error {
		// Lock the product row so concurrent sales of the same product
		// serialize here.
		product, err := s.productRepo.FindByIDForUpdate(tx, input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if product.Stock < input.Quantity {
			return ErrInsufficientStock
		}

		sale = model.NewSale(product, input)

		// Conditional decrement. The stock >= quantity guard keeps stock
		// non-negative even against writers that skip the row lock.
		ok, err := s.productRepo.ReserveStock(tx, product.ID, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientStock
		}

		return s.saleRepo.Create(tx, sale)
	})
	if err != nil {
		return nil, err
	}

	s.notifyStockChange(sale.ProductID, "sale_created")
	return sale, nil
}

// DeleteSale reverses a sale: the record is removed and the sold units go
// back to the product's stock, in one transaction. A failed release rolls
// the deletion back so sale history and stock never diverge.
func (s *salesService) DeleteSale(id uuid.UUID) error {
	var productID uuid.UUID
	err := s.tx.Transaction(func(tx *gorm.DB) error {
		sale, err := s.saleRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSaleNotFound
			}
			return err
		}
		productID = sale.ProductID

		deleted, err := s.saleRepo.Delete(tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			// Reversed by a concurrent request between the read and the
			// delete; stock was already released there.
			return ErrSaleNotFound
		}

		ok, err := s.productRepo.ReleaseStock(tx, sale.ProductID, sale.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyStockChange(productID, "sale_reversed")
	return nil
}

// Report lists all sales, most recent first, with the profit total.
func (s *salesService) Report() (*SalesReport, error) {
	rows, err := s.saleRepo.FindAllForReport()
	if err != nil {
		return nil, err
	}

	report := &SalesReport{Sales: rows}
	if report.Sales == nil {
		report.Sales = []repository.SaleReportRow{}
	}
	for _, row := range rows {
		report.TotalProfit += row.Profit
	}
	return report, nil
}

func (s *salesService) notifyStockChange(productID uuid.UUID, action string) {
	if s.hub == nil {
		return
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return
	}
	go s.hub.PublishStockChange(ws.StockChange{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		Stock:     product.Stock,
		LowStock:  product.LowStock(),
	})
}
