package sales

import "time"

// DateLayout is the calendar-date format used for sale dates, with no
// time component.
const DateLayout = "2006-01-02"

// StatusActive is the lifecycle status assigned to every sale at
// creation. Reports only count sales in this status.
const StatusActive = "active"

// PaymentMethodOther is the reserved payment method value signalling
// that the real method is carried in the otherPaymentMethod field of
// the submission. Stored records never contain it.
const PaymentMethodOther = "other"

// Product is a single line item of a sale.
type Product struct {
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalePrice     float64 `json:"salePrice"`
}

// Profit returns the margin of the line item. It is always derived,
// never stored.
func (p Product) Profit() float64 {
	return p.SalePrice - p.PurchasePrice
}

// Summary holds the per-sale totals persisted alongside the products so
// list reads do not recompute them. It must equal the fold of the
// products at every write.
type Summary struct {
	TotalPurchase float64 `json:"totalPurchase"`
	TotalSale     float64 `json:"totalSale"`
	TotalProfit   float64 `json:"totalProfit"`
	ProductCount  int     `json:"quantidadeProdutos"`
}

// Sale represents one recorded sales transaction with its line items.
type Sale struct {
	ID            string     `json:"id"`
	SaleDate      string     `json:"saleDate"`
	PaymentMethod string     `json:"paymentMethod"`
	Products      []Product  `json:"products"`
	Summary       Summary    `json:"summary"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ProductInput is a submitted line item. Prices are pointers so a
// missing field can be told apart from an explicit zero.
type ProductInput struct {
	Name          string   `json:"name"`
	PurchasePrice *float64 `json:"purchasePrice"`
	SalePrice     *float64 `json:"salePrice"`
}

// CreateSaleInput is the payload of a sale submission.
type CreateSaleInput struct {
	SaleDate           string         `json:"saleDate"`
	PaymentMethod      string         `json:"paymentMethod"`
	OtherPaymentMethod string         `json:"otherPaymentMethod"`
	Products           []ProductInput `json:"products"`
}

// UpdateSaleInput is a partial sale update. Nil fields are left
// untouched on the stored record.
type UpdateSaleInput struct {
	SaleDate      *string        `json:"saleDate"`
	PaymentMethod *string        `json:"paymentMethod"`
	Products      []ProductInput `json:"products"`
	Status        *string        `json:"status"`
}

// ReportSummary aggregates totals across all active sales.
type ReportSummary struct {
	TotalVendas   int     `json:"totalVendas"`
	VendasAtivas  int     `json:"vendasAtivas"`
	TotalCompra   float64 `json:"totalCompra"`
	TotalVenda    float64 `json:"totalVenda"`
	LucroTotal    float64 `json:"lucroTotal"`
	TotalProdutos int     `json:"totalProdutos"`
}

// ReportPeriod is the rolling window the recent-sales count covers.
type ReportPeriod struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// Report is the statistics payload served by the reports endpoint.
type Report struct {
	Resumo             ReportSummary  `json:"resumo"`
	VendasPorPagamento map[string]int `json:"vendasPorPagamento"`
	VendasRecentes     int            `json:"vendasRecentes"`
	Periodo            ReportPeriod   `json:"periodo"`
}
