package handler

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/pricewise/catalog-api/internal/core/domain"
	"github.com/pricewise/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:           req.Name,
		Description:    req.Description,
		CostPrice:      *req.CostPrice,
		SellingPrice:   *req.SellingPrice,
		CategoryID:     *req.CategoryID,
		StockAvailable: *req.StockAvailable,
		UnitsSold:      req.UnitsSold,
		CustomerRating: req.CustomerRating,
		DemandForecast: req.DemandForecast,
		OptimizedPrice: req.OptimizedPrice,
	}
}

// --- Service result → HTTP response ---

func toProductResponses(products []domain.ProductWithCategory) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productResponse{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			CostPrice:      p.CostPrice,
			SellingPrice:   p.SellingPrice,
			CategoryName:   p.CategoryName,
			StockAvailable: p.StockAvailable,
			UnitsSold:      p.UnitsSold,
			CustomerRating: p.CustomerRating,
			DemandForecast: p.DemandForecast,
			OptimizedPrice: p.OptimizedPrice,
		}
	}
	return out
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name}
	}
	return out
}

func toForecastResponses(rows []ports.ForecastRow) []forecastResponse {
	out := make([]forecastResponse, len(rows))
	for i, r := range rows {
		out[i] = forecastResponse{
			ProductID:                r.ProductID,
			ProductName:              r.ProductName,
			CategoryName:             r.CategoryName,
			CostPrice:                dollars(r.CostPrice),
			SellingPrice:             dollars(r.SellingPrice),
			StockAvailable:           humanize.Comma(int64(r.StockAvailable)),
			UnitsSold:                humanize.Comma(int64(r.UnitsSold)),
			CalculatedDemandForecast: r.Forecast,
		}
	}
	return out
}

// dollars renders a price with a currency prefix and no trailing zeros:
// 750 → "$750", 299.99 → "$299.99".
func dollars(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}
