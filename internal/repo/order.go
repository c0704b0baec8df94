package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/groceryhub/grocery-backend/internal/models"
)

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.DB.WithContext(ctx).Order("order_id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	var ord models.Order
	err := r.DB.WithContext(ctx).Preload("Details").First(&ord, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

// CreateOrder inserts the order row with a server-assigned timestamp and then
// every line item tagged with the generated order id, all in one transaction.
// A failing line item rolls back the order row as well.
func (r *GormRepo) CreateOrder(ctx context.Context, ord *models.Order) (int64, error) {
	details := ord.Details
	ord.Details = nil
	ord.Datetime = time.Now().UTC()

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ord).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].OrderID = ord.OrderID
			if err := tx.Create(&details[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	ord.Details = details
	return ord.OrderID, nil
}

// DeleteOrder removes the order together with its line items. The legacy
// FK-toggle bracket is gone: line items belong to their order and travel with
// it.
func (r *GormRepo) DeleteOrder(ctx context.Context, orderID int64) (bool, error) {
	deleted := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}

		res := tx.Where("order_id = ?", orderID).Delete(&models.Order{})
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

func (r *GormRepo) UpdateOrderAmount(ctx context.Context, orderID int64, amount float64) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("total_amount", amount)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
