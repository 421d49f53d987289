package repository

import (
	"go-loja-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRow is a product joined with its category and subcategory names,
// as served by GET /produtos.
type ProductRow struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"nome"`
	Price           float64    `json:"preco"`
	Cost            float64    `json:"custo"`
	Stock           int        `json:"estoque"`
	MinStock        int        `json:"estoque_minimo"`
	CategoryID      *uuid.UUID `json:"categoria_id"`
	SubcategoryID   *uuid.UUID `json:"subcategoria_id"`
	CategoryName    string     `json:"categoria_nome"`
	SubcategoryName string     `json:"subcategoria_nome"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]ProductRow, error)
	FindLowStock() ([]ProductRow, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	ReserveStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error)
	ReleaseStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error)
	CountSales(id uuid.UUID) (int64, error)
	Delete(id uuid.UUID) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

const productRowSelect = `products.id, products.name, products.price, products.cost,
	products.stock, products.min_stock, products.category_id, products.subcategory_id,
	COALESCE(categories.name, '') AS category_name,
	COALESCE(subcategories.name, '') AS subcategory_name`

func (r *productRepo) FindAll() ([]ProductRow, error) {
	var rows []ProductRow
	err := r.db.Model(&model.Product{}).
		Select(productRowSelect).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN subcategories ON subcategories.id = products.subcategory_id").
		Order("products.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) FindLowStock() ([]ProductRow, error) {
	var rows []ProductRow
	err := r.db.Model(&model.Product{}).
		Select(productRowSelect).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN subcategories ON subcategories.id = products.subcategory_id").
		Where("products.min_stock > 0 AND products.stock <= products.min_stock").
		Order("products.stock ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate locks the product row so concurrent sales against the
// same product serialize (SELECT ... FOR UPDATE). Must run inside tx.
func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ReserveStock decrements stock as a single conditional update. The
// stock >= quantity guard means stock can never go negative; an unsatisfied
// guard reports false with no mutation.
func (r *productRepo) ReserveStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	return res.RowsAffected > 0, res.Error
}

// ReleaseStock puts units back after a sale reversal. False means the
// product no longer exists.
func (r *productRepo) ReleaseStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) CountSales(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).Where("product_id = ?", id).Count(&count).Error
	return count, err
}

func (r *productRepo) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
