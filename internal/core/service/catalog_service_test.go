package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pricewise/catalog-api/internal/core/domain"
	"github.com/pricewise/catalog-api/internal/core/ports"
)

type stubCatalogRepo struct {
	categories map[int]string
	products   map[int]*domain.Product
	nextID     int
	writes     int
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		categories: map[int]string{1: "Electronics", 2: "Mobility"},
		products:   make(map[int]*domain.Product),
		nextID:     1,
	}
}

func (r *stubCatalogRepo) CategoryExists(_ context.Context, categoryID int) (bool, error) {
	_, ok := r.categories[categoryID]
	return ok, nil
}

func (r *stubCatalogRepo) CreateProduct(_ context.Context, p *domain.Product) (int, error) {
	r.writes++
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.products[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubCatalogRepo) ProductExists(_ context.Context, id int) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *stubCatalogRepo) UpdateProduct(_ context.Context, p *domain.Product) error {
	r.writes++
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubCatalogRepo) DeleteProduct(_ context.Context, id int) error {
	r.writes++
	delete(r.products, id)
	return nil
}

func (r *stubCatalogRepo) joined(p *domain.Product) domain.ProductWithCategory {
	return domain.ProductWithCategory{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		CostPrice:      p.CostPrice,
		SellingPrice:   p.SellingPrice,
		CategoryName:   r.categories[p.CategoryID],
		StockAvailable: p.StockAvailable,
		UnitsSold:      p.UnitsSold,
		CustomerRating: p.CustomerRating,
		DemandForecast: p.DemandForecast,
		OptimizedPrice: p.OptimizedPrice,
	}
}

func (r *stubCatalogRepo) ListProducts(_ context.Context, categoryID *int) ([]domain.ProductWithCategory, error) {
	out := []domain.ProductWithCategory{}
	for id := 1; id < r.nextID; id++ {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		out = append(out, r.joined(p))
	}
	return out, nil
}

func (r *stubCatalogRepo) SearchProducts(_ context.Context, namePattern string) ([]domain.ProductWithCategory, error) {
	out := []domain.ProductWithCategory{}
	for id := 1; id < r.nextID; id++ {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if containsFold(p.Name, namePattern) {
			out = append(out, r.joined(p))
		}
	}
	return out, nil
}

func (r *stubCatalogRepo) FindProductsByIDs(_ context.Context, ids []int) ([]domain.ProductWithCategory, error) {
	out := []domain.ProductWithCategory{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, r.joined(p))
		}
	}
	return out, nil
}

func (r *stubCatalogRepo) ListCategories(_ context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	for id := 1; id <= len(r.categories); id++ {
		out = append(out, domain.Category{ID: id, Name: r.categories[id]})
	}
	return out, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func testInput(name string, categoryID int) ports.ProductInput {
	return ports.ProductInput{
		Name:           name,
		CostPrice:      150,
		SellingPrice:   299.99,
		CategoryID:     categoryID,
		StockAvailable: 80,
		UnitsSold:      40,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	id, err := svc.CreateProduct(context.Background(), testInput("Electric Scooter", 2))
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
}

func TestCatalogService_CreateProduct_InvalidCategory(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.CreateProduct(context.Background(), testInput("Ghost", 99)); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestCatalogService_ListProducts_FilterByCategory(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	_, _ = svc.CreateProduct(context.Background(), testInput("Laptop", 1))
	_, _ = svc.CreateProduct(context.Background(), testInput("Electric Scooter", 2))

	all, err := svc.ListProducts(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}

	mobility := 2
	filtered, err := svc.ListProducts(context.Background(), &mobility)
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Electric Scooter" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}
	if filtered[0].CategoryName != "Mobility" {
		t.Fatalf("expected category name to be joined, got %q", filtered[0].CategoryName)
	}
}

func TestCatalogService_SearchProducts_CaseInsensitiveSubstring(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	_, _ = svc.CreateProduct(context.Background(), testInput("Electric Scooter", 2))

	results, err := svc.SearchProducts(context.Background(), "scoot")
	if err != nil {
		t.Fatalf("SearchProducts returned error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Electric Scooter" {
		t.Fatalf("unexpected search result: %+v", results)
	}
}

func TestCatalogService_SearchProducts_NoMatches(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	_, _ = svc.CreateProduct(context.Background(), testInput("Laptop", 1))

	if _, err := svc.SearchProducts(context.Background(), "scooter"); err != domain.ErrNoProductsFound {
		t.Fatalf("expected ErrNoProductsFound, got %v", err)
	}
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	if err := svc.UpdateProduct(context.Background(), 42, testInput("Laptop", 1)); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestCatalogService_UpdateProduct_FullReplacement(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	id, _ := svc.CreateProduct(context.Background(), testInput("Electric Scooter", 2))

	replacement := testInput("Electric Scooter Pro", 2)
	replacement.SellingPrice = 399.99
	if err := svc.UpdateProduct(context.Background(), id, replacement); err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}

	stored := repo.products[id]
	if stored.Name != "Electric Scooter Pro" || stored.SellingPrice != 399.99 {
		t.Fatalf("row not replaced: %+v", stored)
	}
	// Fields absent from the replacement payload are zeroed, not preserved.
	if stored.CustomerRating != 0 {
		t.Fatalf("expected customer_rating reset to 0, got %v", stored.CustomerRating)
	}
}

func TestCatalogService_UpdateProduct_InvalidCategory(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	id, _ := svc.CreateProduct(context.Background(), testInput("Laptop", 1))

	if err := svc.UpdateProduct(context.Background(), id, testInput("Laptop", 99)); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	if err := svc.DeleteProduct(context.Background(), 7); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	id, _ := svc.CreateProduct(context.Background(), testInput("Laptop", 1))
	if err := svc.DeleteProduct(context.Background(), id); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if _, ok := repo.products[id]; ok {
		t.Fatalf("product still present after delete")
	}
}

func TestCatalogService_DemandForecast(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	input := testInput("Laptop", 1)
	input.SellingPrice = 750
	input.UnitsSold = 50
	input.StockAvailable = 100
	id, _ := svc.CreateProduct(context.Background(), input)

	rows, err := svc.DemandForecast(context.Background(), []int{id, 999})
	if err != nil {
		t.Fatalf("DemandForecast returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected unknown id to be skipped, got %d rows", len(rows))
	}
	if rows[0].Forecast != 371.29 {
		t.Fatalf("expected forecast 371.29, got %v", rows[0].Forecast)
	}
	if rows[0].CategoryName != "Electronics" {
		t.Fatalf("expected joined category name, got %q", rows[0].CategoryName)
	}
}

func TestCatalogService_ListCategories(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}
