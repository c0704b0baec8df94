package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrHasDependents is returned by delete operations when order_details rows
// still reference the target. The legacy backend disabled foreign key checks
// around deletes instead, which orphaned line items.
var ErrHasDependents = errors.New("has dependent rows")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
