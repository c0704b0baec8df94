package repo

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/groceryhub/grocery-backend/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UnitOfMeasure{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return New(db)
}

func seedUnit(t *testing.T, r *GormRepo, name string) int64 {
	t.Helper()
	u := models.UnitOfMeasure{UnitOfMeasureName: name}
	require.NoError(t, r.DB.Create(&u).Error)
	return u.UnitOfMeasureID
}

func seedCategory(t *testing.T, r *GormRepo, name string) int64 {
	t.Helper()
	c := models.Category{CategoryName: name}
	require.NoError(t, r.DB.Create(&c).Error)
	return c.CategoryID
}

func seedProduct(t *testing.T, r *GormRepo, name string, unitID, categoryID int64, price float64) int64 {
	t.Helper()
	p := models.Product{Name: name, UnitOfMeasureID: unitID, CategoryID: categoryID, PricePerUnit: price}
	require.NoError(t, r.DB.Create(&p).Error)
	return p.ProductID
}
