package repo

import (
	"context"

	"github.com/groceryhub/grocery-backend/internal/models"
)

func (r *GormRepo) ListUnitOfMeasures(ctx context.Context) ([]models.UnitOfMeasure, error) {
	units := make([]models.UnitOfMeasure, 0)
	if err := r.DB.WithContext(ctx).Order("unit_of_measure_id ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}
