package domain

import "errors"

var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrProductNotFound  = errors.New("product not found")
	ErrNoProductsFound  = errors.New("no products found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Category is immutable reference data consumed by products.
type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Product is the catalog aggregate. The category reference must resolve to an
// existing Category at write time.
type Product struct {
	ID             int     `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Description    string  `json:"description" db:"description"`
	CostPrice      float64 `json:"cost_price" db:"cost_price"`
	SellingPrice   float64 `json:"selling_price" db:"selling_price"`
	CategoryID     int     `json:"category_id" db:"category_id"`
	StockAvailable int     `json:"stock_available" db:"stock_available"`
	UnitsSold      int     `json:"units_sold" db:"units_sold"`
	CustomerRating float64 `json:"customer_rating" db:"customer_rating"`
	DemandForecast float64 `json:"demand_forecast" db:"demand_forecast"`
	OptimizedPrice float64 `json:"optimized_price" db:"optimized_price"`
}

// ProductWithCategory is the joined read model used by list, search, and
// forecast queries: the category id is resolved to its name.
type ProductWithCategory struct {
	ID             int     `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Description    string  `json:"description" db:"description"`
	CostPrice      float64 `json:"cost_price" db:"cost_price"`
	SellingPrice   float64 `json:"selling_price" db:"selling_price"`
	CategoryName   string  `json:"category_name" db:"category_name"`
	StockAvailable int     `json:"stock_available" db:"stock_available"`
	UnitsSold      int     `json:"units_sold" db:"units_sold"`
	CustomerRating float64 `json:"customer_rating" db:"customer_rating"`
	DemandForecast float64 `json:"demand_forecast" db:"demand_forecast"`
	OptimizedPrice float64 `json:"optimized_price" db:"optimized_price"`
}
