package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pricewise/catalog-api/internal/core/domain"
)

// joinedProductColumns is the select list shared by every joined product read.
const joinedProductColumns = `
	p.id, p.name, p.description, p.cost_price, p.selling_price,
	c.name AS category_name, p.stock_available, p.units_sold,
	p.customer_rating, p.demand_forecast, p.optimized_price
`

// CatalogRepository implements ports.CatalogRepository over Postgres.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, categoryID)
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) (int, error) {
	var id int
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO products
			(name, description, cost_price, selling_price, category_id,
			 stock_available, units_sold, customer_rating, demand_forecast, optimized_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		p.Name, p.Description, p.CostPrice, p.SellingPrice, p.CategoryID,
		p.StockAvailable, p.UnitsSold, p.CustomerRating, p.DemandForecast, p.OptimizedPrice,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) ProductExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return exists, nil
}

// UpdateProduct overwrites every column of the row — full replacement semantics.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, cost_price = $3, selling_price = $4,
		    category_id = $5, stock_available = $6, units_sold = $7,
		    customer_rating = $8, demand_forecast = $9, optimized_price = $10
		WHERE id = $11`,
		p.Name, p.Description, p.CostPrice, p.SellingPrice, p.CategoryID,
		p.StockAvailable, p.UnitsSold, p.CustomerRating, p.DemandForecast, p.OptimizedPrice,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context, categoryID *int) ([]domain.ProductWithCategory, error) {
	query := `
		SELECT ` + joinedProductColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE p.category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY p.id`

	products := []domain.ProductWithCategory{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *CatalogRepository) SearchProducts(ctx context.Context, namePattern string) ([]domain.ProductWithCategory, error) {
	products := []domain.ProductWithCategory{}
	err := r.db.SelectContext(ctx, &products, `
		SELECT `+joinedProductColumns+`
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.name ILIKE '%' || $1 || '%'
		ORDER BY p.id`, namePattern)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (r *CatalogRepository) FindProductsByIDs(ctx context.Context, ids []int) ([]domain.ProductWithCategory, error) {
	products := []domain.ProductWithCategory{}
	err := r.db.SelectContext(ctx, &products, `
		SELECT `+joinedProductColumns+`
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = ANY($1)
		ORDER BY p.id`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	return products, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	err := r.db.SelectContext(ctx, &categories,
		`SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
