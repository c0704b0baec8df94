package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groceryhub/grocery-backend/internal/models"
	"github.com/groceryhub/grocery-backend/internal/repo"
)

func seedUnitAndProduct(t *testing.T, r *repo.GormRepo, name string, price float64) (int64, int64) {
	t.Helper()
	u := models.UnitOfMeasure{UnitOfMeasureName: "kg"}
	require.NoError(t, r.DB.Create(&u).Error)
	p := models.Product{Name: name, UnitOfMeasureID: u.UnitOfMeasureID, PricePerUnit: price}
	require.NoError(t, r.DB.Create(&p).Error)
	return u.UnitOfMeasureID, p.ProductID
}

func TestGetProductsHandler(t *testing.T) {
	env := newTestEnv(t)
	_, pid := seedUnitAndProduct(t, env.Repo, "rice", 2.5)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products", nil)
	require.NoError(t, env.Products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []repo.ProductWithUnit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, pid, resp[0].ProductID)
	require.Equal(t, "kg", resp[0].UnitOfMeasureName)
}

func TestCreateProductHandler(t *testing.T) {
	env := newTestEnv(t)

	u := models.UnitOfMeasure{UnitOfMeasureName: "each"}
	require.NoError(t, env.Repo.DB.Create(&u).Error)

	body := map[string]any{
		"name":               "eggs",
		"unit_of_measure_id": u.UnitOfMeasureID,
		"price_per_unit":     3.1,
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", body)
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ProductID int64 `json:"product_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.ProductID)

	event := env.lastEvent()
	require.Equal(t, "product_created", event["type"])
	require.Equal(t, "eggs", event["name"])
}

func TestCreateProductHandlerMissingField(t *testing.T) {
	env := newTestEnv(t)

	// no price_per_unit
	body := map[string]any{
		"name":               "eggs",
		"unit_of_measure_id": 1,
	}
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", body)
	requireHTTPError(t, env.Products.CreateProduct(c), http.StatusBadRequest)
}

func TestSearchProductHandler(t *testing.T) {
	env := newTestEnv(t)
	seedUnitAndProduct(t, env.Repo, "milk", 1.2)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/search?name=milk", nil)
	require.NoError(t, env.Products.SearchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp repo.ProductWithUnit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "milk", resp.Name)

	_, c = env.doJSONRequest(http.MethodGet, "/api/v1/products/search?name=nope", nil)
	requireHTTPError(t, env.Products.SearchProduct(c), http.StatusNotFound)

	_, c = env.doJSONRequest(http.MethodGet, "/api/v1/products/search", nil)
	requireHTTPError(t, env.Products.SearchProduct(c), http.StatusBadRequest)
}

func TestUpdatePriceHandler(t *testing.T) {
	env := newTestEnv(t)
	_, pid := seedUnitAndProduct(t, env.Repo, "bread", 1.0)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/products/1/price", map[string]any{"price_per_unit": 1.4})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Products.UpdatePrice(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := env.Repo.GetProduct(context.Background(), pid)
	require.NoError(t, err)
	require.Equal(t, 1.4, got.PricePerUnit)

	_, c = env.doJSONRequest(http.MethodPatch, "/api/v1/products/999/price", map[string]any{"price_per_unit": 2.0})
	c.SetParamNames("id")
	c.SetParamValues("999")
	requireHTTPError(t, env.Products.UpdatePrice(c), http.StatusNotFound)
}

func TestDeleteProductHandler(t *testing.T) {
	env := newTestEnv(t)
	seedUnitAndProduct(t, env.Repo, "butter", 4.0)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Products.DeleteProduct(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	event := env.lastEvent()
	require.Equal(t, "product_deleted", event["type"])

	_, c = env.doJSONRequest(http.MethodDelete, "/api/v1/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	requireHTTPError(t, env.Products.DeleteProduct(c), http.StatusNotFound)
}

func TestDeleteProductHandlerWithDependents(t *testing.T) {
	env := newTestEnv(t)
	_, pid := seedUnitAndProduct(t, env.Repo, "cheese", 7.0)

	_, err := env.Repo.CreateOrder(context.Background(), &models.Order{
		CustomerName: "John Doe",
		TotalAmount:  7.0,
		Details:      []models.OrderDetail{{ProductID: pid, Quantity: 1, TotalPrice: 7.0}},
	})
	require.NoError(t, err)

	_, c := env.doJSONRequest(http.MethodDelete, "/api/v1/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	requireHTTPError(t, env.Products.DeleteProduct(c), http.StatusConflict)
}
