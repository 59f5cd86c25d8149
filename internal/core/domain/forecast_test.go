package domain

import "testing"

func TestComputeForecast(t *testing.T) {
	tests := []struct {
		name         string
		unitsSold    int
		sellingPrice float64
		stock        int
		want         float64
	}{
		{name: "typical figures", unitsSold: 50, sellingPrice: 750, stock: 100, want: 371.29},
		{name: "exhausted stock divides by one", unitsSold: 10, sellingPrice: 100, stock: 0, want: 1000},
		{name: "no sales", unitsSold: 0, sellingPrice: 500, stock: 20, want: 0},
		{name: "rounds to two decimals", unitsSold: 1, sellingPrice: 10, stock: 2, want: 3.33},
		{name: "high demand low stock", unitsSold: 1000, sellingPrice: 99.99, stock: 1, want: 49995},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeForecast(tt.unitsSold, tt.sellingPrice, tt.stock)
			if got != tt.want {
				t.Fatalf("ComputeForecast(%d, %v, %d) = %v, want %v",
					tt.unitsSold, tt.sellingPrice, tt.stock, got, tt.want)
			}
		})
	}
}
