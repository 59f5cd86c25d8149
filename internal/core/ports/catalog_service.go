package ports

import (
	"context"

	"github.com/pricewise/catalog-api/internal/core/domain"
)

// ProductInput carries all fields needed to create or fully replace a product.
// Field presence is validated by the transport layer; absent optional fields
// arrive as their zero value.
type ProductInput struct {
	Name           string
	Description    string
	CostPrice      float64
	SellingPrice   float64
	CategoryID     int
	StockAvailable int
	UnitsSold      int
	CustomerRating float64
	DemandForecast float64
	OptimizedPrice float64
}

// ForecastRow is one product's computed demand forecast together with the
// figures it was derived from.
type ForecastRow struct {
	ProductID      int
	ProductName    string
	CategoryName   string
	CostPrice      float64
	SellingPrice   float64
	StockAvailable int
	UnitsSold      int
	Forecast       float64
}

// CatalogService defines use-case operations over the product catalog.
type CatalogService interface {
	CreateProduct(ctx context.Context, input ProductInput) (int, error)
	ListProducts(ctx context.Context, categoryID *int) ([]domain.ProductWithCategory, error)
	SearchProducts(ctx context.Context, name string) ([]domain.ProductWithCategory, error)
	UpdateProduct(ctx context.Context, id int, input ProductInput) error
	DeleteProduct(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// DemandForecast computes the current demand estimate for each requested
	// product. Unknown ids are skipped.
	DemandForecast(ctx context.Context, productIDs []int) ([]ForecastRow, error)
}
