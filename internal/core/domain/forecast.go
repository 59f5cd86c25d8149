package domain

import "math"

// ComputeForecast estimates demand from sales velocity relative to remaining
// stock: (unitsSold * sellingPrice) / (stockAvailable + 1). The +1 keeps the
// division defined when stock is exhausted. The result is rounded to two
// decimal places for display.
func ComputeForecast(unitsSold int, sellingPrice float64, stockAvailable int) float64 {
	forecast := (float64(unitsSold) * sellingPrice) / float64(stockAvailable+1)
	return math.Round(forecast*100) / 100
}
