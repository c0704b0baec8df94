package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/groceryhub/grocery-backend/internal/repo"
	"github.com/groceryhub/grocery-backend/pkg/logging"
)

const dateLayout = "2006-01-02"

type ReportHTTP struct {
	Repo *repo.GormRepo
}

// GetSalesReport dispatches on report_type the way the legacy /salesReport
// endpoint did: total_sales, top_selling_products, sales_by_category.
func (h *ReportHTTP) GetSalesReport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "report.sales")

	start, err := time.Parse(dateLayout, c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}
	// end_date is inclusive: extend it to the last instant of that day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	reportType := c.QueryParam("report_type")
	switch reportType {
	case "total_sales":
		rows, total, err := h.Repo.TotalSales(ctx, start, end)
		if err != nil {
			l.Error("total_sales_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot build report")
		}
		// Per-order records plus one trailing summary object, told apart by
		// its total_sales key. Legacy response shape, callers rely on it.
		out := make([]any, 0, len(rows)+1)
		for _, row := range rows {
			out = append(out, row)
		}
		out = append(out, map[string]float64{"total_sales": total})
		return c.JSON(http.StatusOK, out)

	case "top_selling_products":
		rows, err := h.Repo.TopSellingProducts(ctx, start, end)
		if err != nil {
			l.Error("top_selling_products_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot build report")
		}
		return c.JSON(http.StatusOK, rows)

	case "sales_by_category":
		rows, err := h.Repo.SalesByCategory(ctx, start, end)
		if err != nil {
			l.Error("sales_by_category_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot build report")
		}
		return c.JSON(http.StatusOK, rows)

	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown report_type")
	}
}
