package service

import (
	"database/sql"

	"go-loja-backend/internal/model"
	"go-loja-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// stubTxManager runs the unit of work with a nil tx and counts invocations.
type stubTxManager struct {
	calls int
}

func (s *stubTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	s.calls++
	return fc(nil)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) FindAll() ([]repository.ProductRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProductRow), args.Error(1)
}

func (m *mockProductRepo) FindLowStock() ([]repository.ProductRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProductRow), args.Error(1)
}

func (m *mockProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockProductRepo) ReserveStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	args := m.Called(tx, id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) ReleaseStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	args := m.Called(tx, id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) CountSales(id uuid.UUID) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Delete(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type mockSaleRepo struct {
	mock.Mock
}

func (m *mockSaleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return m.Called(tx, sale).Error(0)
}

func (m *mockSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *mockSaleRepo) Delete(tx *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSaleRepo) FindAllForReport() ([]repository.SaleReportRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SaleReportRow), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) CreateCategory(category *model.Category) error {
	return m.Called(category).Error(0)
}

func (m *mockCategoryRepo) FindAllCategories() ([]model.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindCategoryByID(id uuid.UUID) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *mockCategoryRepo) DeleteCategory(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) CreateSubcategory(subcategory *model.Subcategory) error {
	return m.Called(subcategory).Error(0)
}

func (m *mockCategoryRepo) FindAllSubcategories() ([]model.Subcategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subcategory), args.Error(1)
}

func (m *mockCategoryRepo) FindSubcategoryByID(id uuid.UUID) (*model.Subcategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subcategory), args.Error(1)
}

func (m *mockCategoryRepo) DeleteSubcategory(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}
