package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pricewise/catalog-api/internal/api/metrics"
	"github.com/pricewise/catalog-api/internal/core/ports"
)

// ForecastHandler serves the demand-forecast endpoint. The route is public:
// the front-end renders forecasts on its landing page before login.
type ForecastHandler struct {
	service ports.CatalogService
}

func NewForecastHandler(service ports.CatalogService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// Get handles GET /api/demand-forecast?product_ids=1,2,3.
//
// @Summary      Demand forecast for selected products
// @Tags         forecast
// @Produce      json
// @Param        product_ids  query     string  true  "Comma-separated product ids"
// @Success      200  {array}   forecastResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/demand-forecast [get]
func (h *ForecastHandler) Get(c echo.Context) error {
	raw := c.QueryParam("product_ids")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_ids parameter is required")
	}

	ids, err := parseIDList(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ids provided")
	}

	rows, err := h.service.DemandForecast(c.Request().Context(), ids)
	if err != nil {
		return err
	}

	metrics.ForecastRequestsTotal.Inc()
	return c.JSON(http.StatusOK, toForecastResponses(rows))
}

// parseIDList parses a comma-separated id list, tolerating whitespace around
// each entry.
func parseIDList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
