package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SalesOrder struct {
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Datetime     time.Time `json:"datetime"`
	TotalAmount  float64   `json:"total_amount"`
}

type ProductSales struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity float64 `json:"total_quantity"`
}

type CategorySales struct {
	CategoryName string  `json:"category_name"`
	TotalSales   float64 `json:"total_sales"`
}

// TotalSales returns one record per order in [start, end] plus the grand
// total, summed over the fetched rows rather than in SQL.
func (r *GormRepo) TotalSales(ctx context.Context, start, end time.Time) ([]SalesOrder, float64, error) {
	rows := make([]SalesOrder, 0)
	err := r.DB.WithContext(ctx).Raw(
		"SELECT order_id, customer_name, datetime, total_amount FROM orders WHERE datetime BETWEEN ? AND ? ORDER BY order_id",
		start, end,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, row := range rows {
		total += row.TotalAmount
	}
	return rows, total, nil
}

// TopSellingProducts ranks products by quantity sold in [start, end],
// capped at five. Ties fall wherever the database puts them.
func (r *GormRepo) TopSellingProducts(ctx context.Context, start, end time.Time) ([]ProductSales, error) {
	rows := make([]ProductSales, 0)
	err := r.DB.WithContext(ctx).Raw(
		`SELECT products.product_id, products.name AS product_name, SUM(order_details.quantity) AS total_quantity
		 FROM products
		 JOIN order_details ON products.product_id = order_details.product_id
		 JOIN orders ON order_details.order_id = orders.order_id
		 WHERE orders.datetime BETWEEN ? AND ?
		 GROUP BY products.product_id, products.name
		 ORDER BY total_quantity DESC
		 LIMIT 5`,
		start, end,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesByCategory sums order_details.total_price per category over
// [start, end], descending. Totals are rounded to 2 decimals here rather
// than in SQL, half away from zero.
func (r *GormRepo) SalesByCategory(ctx context.Context, start, end time.Time) ([]CategorySales, error) {
	rows := make([]CategorySales, 0)
	err := r.DB.WithContext(ctx).Raw(
		`SELECT categories.category_name, SUM(order_details.total_price) AS total_sales
		 FROM categories
		 JOIN products ON categories.category_id = products.category_id
		 JOIN order_details ON products.product_id = order_details.product_id
		 JOIN orders ON order_details.order_id = orders.order_id
		 WHERE orders.datetime BETWEEN ? AND ?
		 GROUP BY categories.category_id, categories.category_name
		 ORDER BY total_sales DESC`,
		start, end,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].TotalSales = decimal.NewFromFloat(rows[i].TotalSales).Round(2).InexactFloat64()
	}
	return rows, nil
}
