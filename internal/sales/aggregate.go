package sales

// SummarizeProducts folds a list of line items into the totals stored
// on the sale. Pure computation, deterministic for equal inputs.
func SummarizeProducts(products []Product) Summary {
	summary := Summary{ProductCount: len(products)}
	for _, p := range products {
		summary.TotalPurchase += p.PurchasePrice
		summary.TotalSale += p.SalePrice
	}
	summary.TotalProfit = summary.TotalSale - summary.TotalPurchase
	return summary
}

// SummarizeSales folds the stored summaries of a set of sales into one.
// Callers restrict the input to whatever subset is relevant, typically
// active sales only.
func SummarizeSales(sales []*Sale) Summary {
	var summary Summary
	for _, s := range sales {
		summary.TotalPurchase += s.Summary.TotalPurchase
		summary.TotalSale += s.Summary.TotalSale
		summary.ProductCount += s.Summary.ProductCount
	}
	summary.TotalProfit = summary.TotalSale - summary.TotalPurchase
	return summary
}
