package repository

import (
	"go-loja-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	CreateCategory(category *model.Category) error
	FindAllCategories() ([]model.Category, error)
	FindCategoryByID(id uuid.UUID) (*model.Category, error)
	DeleteCategory(id uuid.UUID) (bool, error)

	CreateSubcategory(subcategory *model.Subcategory) error
	FindAllSubcategories() ([]model.Subcategory, error)
	FindSubcategoryByID(id uuid.UUID) (*model.Subcategory, error)
	DeleteSubcategory(id uuid.UUID) (bool, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) CreateCategory(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAllCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindCategoryByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) DeleteCategory(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&model.Category{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *categoryRepo) CreateSubcategory(subcategory *model.Subcategory) error {
	return r.db.Create(subcategory).Error
}

func (r *categoryRepo) FindAllSubcategories() ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	err := r.db.Order("name ASC").Find(&subcategories).Error
	return subcategories, err
}

func (r *categoryRepo) FindSubcategoryByID(id uuid.UUID) (*model.Subcategory, error) {
	var subcategory model.Subcategory
	err := r.db.First(&subcategory, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *categoryRepo) DeleteSubcategory(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&model.Subcategory{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
