package ports

import (
	"context"

	"github.com/pricewise/catalog-api/internal/core/domain"
)

// CatalogRepository defines persistence operations for products and categories.
type CatalogRepository interface {
	// CategoryExists reports whether a category with the given id exists.
	CategoryExists(ctx context.Context, categoryID int) (bool, error)
	// CreateProduct inserts a product and returns its assigned id.
	CreateProduct(ctx context.Context, p *domain.Product) (int, error)
	// ProductExists reports whether a product with the given id exists.
	ProductExists(ctx context.Context, id int) (bool, error)
	// UpdateProduct fully replaces the row identified by p.ID.
	UpdateProduct(ctx context.Context, p *domain.Product) error
	// DeleteProduct removes the product with the given id.
	DeleteProduct(ctx context.Context, id int) error
	// ListProducts returns products joined with their category name, ordered
	// by id. When categoryID is non-nil the result is restricted to that category.
	ListProducts(ctx context.Context, categoryID *int) ([]domain.ProductWithCategory, error)
	// SearchProducts returns products whose name contains the pattern,
	// case-insensitively.
	SearchProducts(ctx context.Context, namePattern string) ([]domain.ProductWithCategory, error)
	// FindProductsByIDs returns the joined rows for the given ids. Ids that
	// match no row are silently absent from the result.
	FindProductsByIDs(ctx context.Context, ids []int) ([]domain.ProductWithCategory, error)
	// ListCategories returns all categories ordered by id.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
