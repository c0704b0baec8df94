package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/groceryhub/grocery-backend/internal/models"
)

// ProductWithUnit is the joined products x unit_of_measures row every product
// query returns.
type ProductWithUnit struct {
	ProductID         int64   `json:"product_id"`
	Name              string  `json:"name"`
	UnitOfMeasureID   int64   `json:"unit_of_measure_id"`
	PricePerUnit      float64 `json:"price_per_unit"`
	UnitOfMeasureName string  `json:"unit_of_measure_name"`
}

const productUnitSelect = "products.product_id, products.name, products.unit_of_measure_id, products.price_per_unit, unit_of_measures.unit_of_measure_name"

func (r *GormRepo) productUnitQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("products").
		Select(productUnitSelect).
		Joins("INNER JOIN unit_of_measures ON products.unit_of_measure_id = unit_of_measures.unit_of_measure_id")
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]ProductWithUnit, error) {
	items := make([]ProductWithUnit, 0)
	if err := r.productUnitQuery(ctx).Order("products.product_id ASC").Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, productID int64) (*ProductWithUnit, error) {
	var item ProductWithUnit
	res := r.productUnitQuery(ctx).Where("products.product_id = ?", productID).Limit(1).Scan(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// SearchProductByName is an exact-match lookup. A missing product is not an
// error: the result is nil.
func (r *GormRepo) SearchProductByName(ctx context.Context, name string) (*ProductWithUnit, error) {
	var item ProductWithUnit
	res := r.productUnitQuery(ctx).Where("products.name = ?", name).Limit(1).Scan(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) (int64, error) {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return 0, err
	}
	return p.ProductID, nil
}

func (r *GormRepo) UpdateProductPrice(ctx context.Context, productID int64, price float64) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ?", productID).
		Update("price_per_unit", price)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteProduct refuses to delete a product that order_details still
// reference and returns ErrHasDependents instead. Deleting a missing product
// returns (false, nil).
func (r *GormRepo) DeleteProduct(ctx context.Context, productID int64) (bool, error) {
	deleted := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&models.OrderDetail{}).Where("product_id = ?", productID).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return ErrHasDependents
		}

		res := tx.Where("product_id = ?", productID).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
