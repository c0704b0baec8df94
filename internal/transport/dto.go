package transport

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/groceryhub/grocery-backend/internal/models"
)

// ErrValidation marks malformed request payloads: missing required fields or
// values that do not coerce to the expected numeric type.
var ErrValidation = errors.New("validation")

type CreateProductRequest struct {
	Name            string   `json:"name"`
	UnitOfMeasureID int64    `json:"unit_of_measure_id"`
	PricePerUnit    *float64 `json:"price_per_unit"`
	CategoryID      int64    `json:"category_id"`
}

func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if r.UnitOfMeasureID == 0 {
		return fmt.Errorf("%w: unit_of_measure_id required", ErrValidation)
	}
	if r.PricePerUnit == nil {
		return fmt.Errorf("%w: price_per_unit required", ErrValidation)
	}
	if *r.PricePerUnit < 0 {
		return fmt.Errorf("%w: price_per_unit must be >= 0", ErrValidation)
	}
	return nil
}

func (r *CreateProductRequest) ToModel() *models.Product {
	return &models.Product{
		Name:            r.Name,
		UnitOfMeasureID: r.UnitOfMeasureID,
		PricePerUnit:    *r.PricePerUnit,
		CategoryID:      r.CategoryID,
	}
}

type UpdatePriceRequest struct {
	PricePerUnit *float64 `json:"price_per_unit"`
}

func (r *UpdatePriceRequest) Validate() error {
	if r.PricePerUnit == nil {
		return fmt.Errorf("%w: price_per_unit required", ErrValidation)
	}
	if *r.PricePerUnit < 0 {
		return fmt.Errorf("%w: price_per_unit must be >= 0", ErrValidation)
	}
	return nil
}

type UpdateAmountRequest struct {
	TotalAmount *float64 `json:"total_amount"`
}

func (r *UpdateAmountRequest) Validate() error {
	if r.TotalAmount == nil {
		return fmt.Errorf("%w: total_amount required", ErrValidation)
	}
	if *r.TotalAmount < 0 {
		return fmt.Errorf("%w: total_amount must be >= 0", ErrValidation)
	}
	return nil
}

// CreateOrderItem fields are json.Number so string-typed numerics from the
// legacy frontend ("123", "2", "50.0") still coerce.
type CreateOrderItem struct {
	ProductID  json.Number `json:"product_id"`
	Quantity   json.Number `json:"quantity"`
	TotalPrice json.Number `json:"total_price"`
}

type CreateOrderRequest struct {
	CustomerName string            `json:"customer_name"`
	TotalAmount  *float64          `json:"total_amount"`
	OrderDetails []CreateOrderItem `json:"order_details"`
}

func (r *CreateOrderRequest) ToModel() (*models.Order, error) {
	if r.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer_name required", ErrValidation)
	}
	if r.TotalAmount == nil {
		return nil, fmt.Errorf("%w: total_amount required", ErrValidation)
	}
	if *r.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: total_amount must be >= 0", ErrValidation)
	}

	details := make([]models.OrderDetail, 0, len(r.OrderDetails))
	for i, item := range r.OrderDetails {
		productID, err := item.ProductID.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: order_details[%d].product_id: %v", ErrValidation, i, err)
		}
		quantity, err := item.Quantity.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: order_details[%d].quantity: %v", ErrValidation, i, err)
		}
		totalPrice, err := item.TotalPrice.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: order_details[%d].total_price: %v", ErrValidation, i, err)
		}
		if quantity < 0 || totalPrice < 0 {
			return nil, fmt.Errorf("%w: order_details[%d] must be >= 0", ErrValidation, i)
		}

		details = append(details, models.OrderDetail{
			ProductID:  productID,
			Quantity:   quantity,
			TotalPrice: totalPrice,
		})
	}

	return &models.Order{
		CustomerName: r.CustomerName,
		TotalAmount:  *r.TotalAmount,
		Details:      details,
	}, nil
}
