package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeProducts(t *testing.T) {
	products := []Product{
		{Name: "Widget", PurchasePrice: 10, SalePrice: 15},
		{Name: "Gadget", PurchasePrice: 20, SalePrice: 25},
		{Name: "Freebie", PurchasePrice: 0, SalePrice: 0},
	}

	summary := SummarizeProducts(products)

	assert.Equal(t, 30.0, summary.TotalPurchase)
	assert.Equal(t, 40.0, summary.TotalSale)
	assert.Equal(t, 10.0, summary.TotalProfit)
	assert.Equal(t, 3, summary.ProductCount)
}

func TestSummarizeProducts_ProfitIdentity(t *testing.T) {
	products := []Product{
		{Name: "A", PurchasePrice: 1.10, SalePrice: 2.30},
		{Name: "B", PurchasePrice: 5.25, SalePrice: 4.75},
	}

	summary := SummarizeProducts(products)

	assert.Equal(t, summary.TotalSale-summary.TotalPurchase, summary.TotalProfit)

	perLine := 0.0
	for _, p := range products {
		perLine += p.Profit()
	}
	assert.InDelta(t, perLine, summary.TotalProfit, 1e-9,
		"total profit must match the sum of per-product profits")
}

func TestSummarizeProducts_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, SummarizeProducts(nil))
}

func TestSummarizeProducts_Deterministic(t *testing.T) {
	products := []Product{
		{Name: "A", PurchasePrice: 0.1, SalePrice: 0.2},
		{Name: "B", PurchasePrice: 0.3, SalePrice: 0.4},
	}

	assert.Equal(t, SummarizeProducts(products), SummarizeProducts(products),
		"equal inputs must always yield equal outputs")
}

func TestSummarizeSales(t *testing.T) {
	salesList := []*Sale{
		{Summary: Summary{TotalPurchase: 10, TotalSale: 15, TotalProfit: 5, ProductCount: 1}},
		{Summary: Summary{TotalPurchase: 20, TotalSale: 25, TotalProfit: 5, ProductCount: 2}},
	}

	summary := SummarizeSales(salesList)

	assert.Equal(t, Summary{TotalPurchase: 30, TotalSale: 40, TotalProfit: 10, ProductCount: 3}, summary)
}
