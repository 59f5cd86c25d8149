package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pricewise/catalog-api/internal/core/domain"
	"github.com/pricewise/catalog-api/internal/core/ports"
)

// CatalogService implements product and category use cases.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// CreateProduct validates the category reference before writing anything.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.ProductInput) (int, error) {
	ok, err := s.repo.CategoryExists(ctx, input.CategoryID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrInvalidCategory
	}

	id, err := s.repo.CreateProduct(ctx, productFromInput(0, input))
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return 0, err
	}

	s.logger.Info().Int("product_id", id).Int("category_id", input.CategoryID).Msg("product created")
	return id, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID *int) ([]domain.ProductWithCategory, error) {
	return s.repo.ListProducts(ctx, categoryID)
}

// SearchProducts matches the name case-insensitively as a substring. An empty
// result is reported as domain.ErrNoProductsFound, distinct from a query error.
func (s *CatalogService) SearchProducts(ctx context.Context, name string) ([]domain.ProductWithCategory, error) {
	products, err := s.repo.SearchProducts(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoProductsFound
	}
	return products, nil
}

// UpdateProduct fully replaces the row. The existence check precedes the write.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int, input ports.ProductInput) error {
	exists, err := s.repo.ProductExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	ok, err := s.repo.CategoryExists(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCategory
	}

	if err := s.repo.UpdateProduct(ctx, productFromInput(id, input)); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return err
	}
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	exists, err := s.repo.ProductExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return err
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// DemandForecast recomputes the demand estimate for each requested product
// from its current stock and sales figures. Ids matching no product are skipped.
func (s *CatalogService) DemandForecast(ctx context.Context, productIDs []int) ([]ports.ForecastRow, error) {
	products, err := s.repo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]ports.ForecastRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ports.ForecastRow{
			ProductID:      p.ID,
			ProductName:    p.Name,
			CategoryName:   p.CategoryName,
			CostPrice:      p.CostPrice,
			SellingPrice:   p.SellingPrice,
			StockAvailable: p.StockAvailable,
			UnitsSold:      p.UnitsSold,
			Forecast:       domain.ComputeForecast(p.UnitsSold, p.SellingPrice, p.StockAvailable),
		})
	}
	return rows, nil
}

func productFromInput(id int, in ports.ProductInput) *domain.Product {
	return &domain.Product{
		ID:             id,
		Name:           in.Name,
		Description:    in.Description,
		CostPrice:      in.CostPrice,
		SellingPrice:   in.SellingPrice,
		CategoryID:     in.CategoryID,
		StockAvailable: in.StockAvailable,
		UnitsSold:      in.UnitsSold,
		CustomerRating: in.CustomerRating,
		DemandForecast: in.DemandForecast,
		OptimizedPrice: in.OptimizedPrice,
	}
}
