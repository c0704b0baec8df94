package models

import (
	"time"
)

type Product struct {
	ProductID       int64   `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name            string  `gorm:"column:name;not null"                       json:"name"`
	UnitOfMeasureID int64   `gorm:"column:unit_of_measure_id;not null"         json:"unit_of_measure_id"`
	PricePerUnit    float64 `gorm:"column:price_per_unit;not null"             json:"price_per_unit"`
	CategoryID      int64   `gorm:"column:category_id"                         json:"category_id"`
}

func (Product) TableName() string { return "products" }

type UnitOfMeasure struct {
	UnitOfMeasureID   int64  `gorm:"column:unit_of_measure_id;primaryKey;autoIncrement" json:"unit_of_measure_id"`
	UnitOfMeasureName string `gorm:"column:unit_of_measure_name;not null"               json:"unit_of_measure_name"`
}

func (UnitOfMeasure) TableName() string { return "unit_of_measures" }

type Category struct {
	CategoryID   int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"column:category_name;not null"               json:"category_name"`
}

func (Category) TableName() string { return "categories" }

type Order struct {
	OrderID      int64         `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerName string        `gorm:"column:customer_name;not null"            json:"customer_name"`
	TotalAmount  float64       `gorm:"column:total_amount;not null"             json:"total_amount"`
	Datetime     time.Time     `gorm:"column:datetime;not null"                 json:"datetime"`
	Details      []OrderDetail `gorm:"foreignKey:OrderID;references:OrderID"    json:"order_details,omitempty"`
}

func (Order) TableName() string { return "orders" }

type OrderDetail struct {
	OrderDetailID int64   `gorm:"column:order_detail_id;primaryKey;autoIncrement" json:"-"`
	OrderID       int64   `gorm:"column:order_id;index;not null"                  json:"order_id"`
	ProductID     int64   `gorm:"column:product_id;not null"                      json:"product_id"`
	Quantity      float64 `gorm:"column:quantity;not null"                        json:"quantity"`
	TotalPrice    float64 `gorm:"column:total_price;not null"                     json:"total_price"`
}

func (OrderDetail) TableName() string { return "order_details" }
