package service

import (
	"errors"

	"go-loja-backend/internal/model"
	"go-loja-backend/internal/repository"
	"go-loja-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(product *model.Product) (*repository.ProductRow, error)
	ListProducts() ([]repository.ProductRow, error)
	ListLowStock() ([]repository.ProductRow, error)
	DeleteProduct(id uuid.UUID) error

	CreateCategory(category *model.Category) error
	ListCategories() ([]model.Category, error)
	DeleteCategory(id uuid.UUID) error

	CreateSubcategory(subcategory *model.Subcategory) error
	ListSubcategories() ([]model.Subcategory, error)
	DeleteSubcategory(id uuid.UUID) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
	}
}

func (s *catalogService) CreateProduct(product *model.Product) (*repository.ProductRow, error) {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return nil, validationError(errs)
	}

	row := repository.ProductRow{}
	if product.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(*product.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		row.CategoryName = category.Name
	}
	if product.SubcategoryID != nil {
		subcategory, err := s.categoryRepo.FindSubcategoryByID(*product.SubcategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSubcategoryNotFound
			}
			return nil, err
		}
		row.SubcategoryName = subcategory.Name
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	row.ID = product.ID
	row.Name = product.Name
	row.Price = product.Price
	row.Cost = product.Cost
	row.Stock = product.Stock
	row.MinStock = product.MinStock
	row.CategoryID = product.CategoryID
	row.SubcategoryID = product.SubcategoryID
	return &row, nil
}

func (s *catalogService) ListProducts() ([]repository.ProductRow, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) ListLowStock() ([]repository.ProductRow, error) {
	return s.productRepo.FindLowStock()
}

// DeleteProduct refuses to remove a product that still has sales on record.
// Cascading would rewrite the sales history the report is built from.
func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	count, err := s.productRepo.CountSales(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductInUse
	}

	deleted, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

func (s *catalogService) CreateCategory(category *model.Category) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return validationError(errs)
	}
	return s.categoryRepo.CreateCategory(category)
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAllCategories()
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	deleted, err := s.categoryRepo.DeleteCategory(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) CreateSubcategory(subcategory *model.Subcategory) error {
	if errs := validator.ValidateStruct(subcategory); len(errs) > 0 {
		return validationError(errs)
	}
	if _, err := s.categoryRepo.FindCategoryByID(subcategory.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.CreateSubcategory(subcategory)
}

func (s *catalogService) ListSubcategories() ([]model.Subcategory, error) {
	return s.categoryRepo.FindAllSubcategories()
}

func (s *catalogService) DeleteSubcategory(id uuid.UUID) error {
	deleted, err := s.categoryRepo.DeleteSubcategory(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSubcategoryNotFound
	}
	return nil
}
