package service

import (
	"testing"

	"go-loja-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newCatalogFixture() (*mockProductRepo, *mockCategoryRepo, CatalogService) {
	productRepo := new(mockProductRepo)
	categoryRepo := new(mockCategoryRepo)
	return productRepo, categoryRepo, NewCatalogService(productRepo, categoryRepo)
}

func TestCreateProductResolvesCategoryNames(t *testing.T) {
	productRepo, categoryRepo, svc := newCatalogFixture()

	categoryID := uuid.New()
	category := &model.Category{BaseModel: model.BaseModel{ID: categoryID}, Name: "Bebidas"}
	categoryRepo.On("FindCategoryByID", categoryID).Return(category, nil)
	productRepo.On("Create", mock.AnythingOfType("*model.Product")).Return(nil)

	row, err := svc.CreateProduct(&model.Product{
		Name:       "Suco de Laranja 1L",
		Price:      7.50,
		Cost:       4.00,
		Stock:      30,
		CategoryID: &categoryID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Suco de Laranja 1L", row.Name)
	assert.Equal(t, "Bebidas", row.CategoryName)
	assert.Equal(t, 7.50, row.Price)
	productRepo.AssertExpectations(t)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	productRepo, categoryRepo, svc := newCatalogFixture()

	categoryID := uuid.New()
	categoryRepo.On("FindCategoryByID", categoryID).Return(nil, gorm.ErrRecordNotFound)

	row, err := svc.CreateProduct(&model.Product{Name: "Suco", Price: 1, Cost: 1, CategoryID: &categoryID})

	assert.Nil(t, row)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	productRepo, _, svc := newCatalogFixture()

	var vErr *ValidationError

	row, err := svc.CreateProduct(&model.Product{Price: 1, Cost: 1}) // missing name
	assert.Nil(t, row)
	assert.ErrorAs(t, err, &vErr)

	row, err = svc.CreateProduct(&model.Product{Name: "Suco", Price: -1, Cost: 1})
	assert.Nil(t, row)
	assert.ErrorAs(t, err, &vErr)

	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteProductBlockedWhileSalesExist(t *testing.T) {
	productRepo, _, svc := newCatalogFixture()

	id := uuid.New()
	productRepo.On("CountSales", id).Return(int64(3), nil)

	err := svc.DeleteProduct(id)

	assert.ErrorIs(t, err, ErrProductInUse)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteProduct(t *testing.T) {
	productRepo, _, svc := newCatalogFixture()

	id := uuid.New()
	productRepo.On("CountSales", id).Return(int64(0), nil)
	productRepo.On("Delete", id).Return(true, nil)

	assert.NoError(t, svc.DeleteProduct(id))
	productRepo.AssertExpectations(t)
}

func TestDeleteProductNotFound(t *testing.T) {
	productRepo, _, svc := newCatalogFixture()

	id := uuid.New()
	productRepo.On("CountSales", id).Return(int64(0), nil)
	productRepo.On("Delete", id).Return(false, nil)

	assert.ErrorIs(t, svc.DeleteProduct(id), ErrProductNotFound)
}

func TestCreateSubcategoryRequiresExistingCategory(t *testing.T) {
	_, categoryRepo, svc := newCatalogFixture()

	categoryID := uuid.New()
	categoryRepo.On("FindCategoryByID", categoryID).Return(nil, gorm.ErrRecordNotFound)

	err := svc.CreateSubcategory(&model.Subcategory{Name: "Refrigerantes", CategoryID: categoryID})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	categoryRepo.AssertNotCalled(t, "CreateSubcategory", mock.Anything)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	_, categoryRepo, svc := newCatalogFixture()

	id := uuid.New()
	categoryRepo.On("DeleteCategory", id).Return(false, nil)

	assert.ErrorIs(t, svc.DeleteCategory(id), ErrCategoryNotFound)
}

func TestDeleteSubcategoryNotFound(t *testing.T) {
	_, categoryRepo, svc := newCatalogFixture()

	id := uuid.New()
	categoryRepo.On("DeleteSubcategory", id).Return(false, nil)

	assert.ErrorIs(t, svc.DeleteSubcategory(id), ErrSubcategoryNotFound)
}
