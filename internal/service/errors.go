package service

import (
	"errors"
	"fmt"

	"go-loja-backend/pkg/validator"
)

// Expected business outcomes. The HTTP layer maps these to status codes;
// anything else is an internal failure and surfaces as a generic 500.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrSaleNotFound        = errors.New("sale not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrProductInUse        = errors.New("product has recorded sales")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

// ValidationError reports the first field that failed input validation.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", e.Field, e.Tag)
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return &ValidationError{Field: first.FailedField, Tag: first.Tag}
}
