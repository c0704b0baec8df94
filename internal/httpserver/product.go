package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/groceryhub/grocery-backend/internal/repo"
	"github.com/groceryhub/grocery-backend/internal/transport"
	"github.com/groceryhub/grocery-backend/pkg/logging"
)

type ProductHTTP struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
	Indexer  ProductIndexer
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Repo.ListProducts(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) SearchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	item, err := h.Repo.SearchProductByName(ctx, name)
	if err != nil {
		l.Error("search_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search product")
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("create_product_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prod := req.ToModel()
	id, err := h.Repo.CreateProduct(ctx, prod)
	if err != nil {
		l.Error("create_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create product")
	}

	h.indexProduct(c, id)
	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_created",
		"productID": id,
		"name":      prod.Name,
	})

	l.Info("create_product_success", "product_id", id)
	return c.JSON(http.StatusCreated, map[string]any{"product_id": id})
}

func (h *ProductHTTP) UpdatePrice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_price")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.Repo.UpdateProductPrice(ctx, id, *req.PricePerUnit)
	if err != nil {
		l.Error("update_price_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update price")
	}
	if !updated {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	h.indexProduct(c, id)
	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_updated",
		"productID": id,
		"price":     *req.PricePerUnit,
	})

	return c.JSON(http.StatusOK, map[string]any{"product_id": id, "price_per_unit": *req.PricePerUnit})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	deleted, err := h.Repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrHasDependents) {
			l.Warn("delete_product_failed", "status", 409, "product_id", id)
			return echo.NewHTTPError(http.StatusConflict, "product has order line items")
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	if h.Indexer != nil {
		if err := h.Indexer.DeleteProduct(ctx, id); err != nil {
			l.Error("es delete failed", "product_id", id, "error", err)
		}
	}
	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) indexProduct(c echo.Context, id int64) {
	if h.Indexer == nil {
		return
	}
	ctx := c.Request().Context()
	item, err := h.Repo.GetProduct(ctx, id)
	if err != nil || item == nil {
		logging.FromContext(ctx).Error("es index skipped", "product_id", id, "error", err)
		return
	}
	if err := h.Indexer.IndexProduct(ctx, item); err != nil {
		logging.FromContext(ctx).Error("es index failed", "product_id", id, "error", err)
	}
}
