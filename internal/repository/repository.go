package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxManager runs a unit of work inside a database transaction. *gorm.DB
// satisfies it directly; services receive it explicitly instead of sharing a
// package-level handle.
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
