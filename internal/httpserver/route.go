package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	OrderHandler   *OrderHTTP
	UOMHandler     *UnitOfMeasureHTTP
	ReportHandler  *ReportHTTP
	SearchHandler  *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PATCH("/:id/price", d.ProductHandler.UpdatePrice)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)
	if d.SearchHandler != nil {
		products.GET("/fulltext", d.SearchHandler.Search)
	}

	orders := v1.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PATCH("/:id/amount", d.OrderHandler.UpdateAmount)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	v1.GET("/unit_of_measures", d.UOMHandler.GetUnitOfMeasures)

	v1.GET("/reports/sales", d.ReportHandler.GetSalesReport)
}
