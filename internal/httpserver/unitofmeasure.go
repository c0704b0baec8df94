package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/groceryhub/grocery-backend/internal/repo"
	"github.com/groceryhub/grocery-backend/pkg/logging"
)

type UnitOfMeasureHTTP struct {
	Repo *repo.GormRepo
}

func (h *UnitOfMeasureHTTP) GetUnitOfMeasures(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "uom.get_unit_of_measures")

	units, err := h.Repo.ListUnitOfMeasures(ctx)
	if err != nil {
		l.Error("get_unit_of_measures_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list unit of measures")
	}

	return c.JSON(http.StatusOK, units)
}
