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

type OrderHTTP struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	orders, err := h.Repo.ListOrders(ctx)
	if err != nil {
		l.Error("get_orders_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	ord, err := h.Repo.GetOrder(ctx, id)
	if err != nil {
		l.Error("get_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get order")
	}
	if ord == nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	return c.JSON(http.StatusOK, ord)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ord, err := req.ToModel()
	if err != nil {
		if errors.Is(err, transport.ErrValidation) {
			l.Warn("create_order_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	id, err := h.Repo.CreateOrder(ctx, ord)
	if err != nil {
		l.Error("create_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create order")
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":     "order_created",
		"orderID":  id,
		"customer": ord.CustomerName,
		"total":    ord.TotalAmount,
	})

	l.Info("create_order_success", "order_id", id, "items", len(ord.Details))
	return c.JSON(http.StatusCreated, map[string]any{"order_id": id})
}

func (h *OrderHTTP) UpdateAmount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_amount")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.UpdateAmountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.Repo.UpdateOrderAmount(ctx, id, *req.TotalAmount)
	if err != nil {
		l.Error("update_amount_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update order")
	}
	if !updated {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	return c.JSON(http.StatusOK, map[string]any{"order_id": id, "total_amount": *req.TotalAmount})
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	deleted, err := h.Repo.DeleteOrder(ctx, id)
	if err != nil {
		l.Error("delete_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete order")
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_deleted",
		"orderID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
