package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for write operations that return no entity.
type messageResponse struct {
	Message string `json:"message"`
}

// productRequest is the body for both POST /api/products and PUT /products/:id
// (full replacement). Required numeric fields are pointers so that an explicit
// zero is distinguishable from an absent field; the remaining figures default
// to zero when omitted.
type productRequest struct {
	Name           string   `json:"name"            validate:"required"`
	Description    string   `json:"description"`
	CostPrice      *float64 `json:"cost_price"      validate:"required"`
	SellingPrice   *float64 `json:"selling_price"   validate:"required"`
	CategoryID     *int     `json:"category_id"     validate:"required"`
	StockAvailable *int     `json:"stock_available" validate:"required"`
	UnitsSold      int      `json:"units_sold"      validate:"gte=0"`
	CustomerRating float64  `json:"customer_rating" validate:"gte=0"`
	DemandForecast float64  `json:"demand_forecast" validate:"gte=0"`
	OptimizedPrice float64  `json:"optimized_price" validate:"gte=0"`
}

// productResponse is the joined list/search item: the category reference is
// resolved to its name.
type productResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CostPrice      float64 `json:"cost_price"`
	SellingPrice   float64 `json:"selling_price"`
	CategoryName   string  `json:"category_name"`
	StockAvailable int     `json:"stock_available"`
	UnitsSold      int     `json:"units_sold"`
	CustomerRating float64 `json:"customer_rating"`
	DemandForecast float64 `json:"demand_forecast"`
	OptimizedPrice float64 `json:"optimized_price"`
}

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// forecastResponse carries one product's computed demand estimate. Monetary
// and count fields are display-formatted strings; the forecast itself stays
// numeric.
type forecastResponse struct {
	ProductID                int     `json:"product_id"`
	ProductName              string  `json:"product_name"`
	CategoryName             string  `json:"category_name"`
	CostPrice                string  `json:"cost_price"`
	SellingPrice             string  `json:"selling_price"`
	StockAvailable           string  `json:"stock_available"`
	UnitsSold                string  `json:"units_sold"`
	CalculatedDemandForecast float64 `json:"calculated_demand_forecast"`
}
