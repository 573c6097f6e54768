package sales

import (
	"time"

	"go.uber.org/zap"
	resty "resty.dev/v3"
)

// Mirror duplicates a sale's line items into a secondary analytical
// sink. Implementations report plain success or failure and never let
// an error or panic escape their boundary.
type Mirror interface {
	MirrorSale(sale *Sale) bool
}

// mirrorRow is the row shape of the analytical table: one row per
// product line item, loosely keyed by the sale's ID and date.
type mirrorRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SalePrice     float64 `json:"sale_price"`
	PurchasePrice float64 `json:"purchase_price"`
	CreatedAt     string  `json:"created_at"`
}

// SupabaseMirror writes rows to a Supabase table through its PostgREST
// endpoint.
type SupabaseMirror struct {
	client *resty.Client
	table  string
	logger *zap.Logger
}

// NewSupabaseMirror creates a mirror targeting the given Supabase
// project URL and service key.
func NewSupabaseMirror(baseURL, key, table string, logger *zap.Logger) *SupabaseMirror {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("apikey", key).
		SetHeader("Authorization", "Bearer "+key).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal")

	return &SupabaseMirror{
		client: client,
		table:  table,
		logger: logger,
	}
}

// MirrorSale inserts one row per product line item. All failures are
// logged and converted to a false return.
func (m *SupabaseMirror) MirrorSale(sale *Sale) bool {
	rows := make([]mirrorRow, 0, len(sale.Products))
	for _, p := range sale.Products {
		rows = append(rows, mirrorRow{
			ID:            sale.ID,
			Name:          p.Name,
			SalePrice:     p.SalePrice,
			PurchasePrice: p.PurchasePrice,
			CreatedAt:     sale.SaleDate,
		})
	}

	resp, err := m.client.R().
		SetBody(rows).
		Post("/rest/v1/" + m.table)
	if err != nil {
		m.logger.Error("mirror request failed", zap.String("sale_id", sale.ID), zap.Error(err))
		return false
	}
	if resp.IsError() {
		m.logger.Error("mirror rejected insert",
			zap.String("sale_id", sale.ID),
			zap.Int("status", resp.StatusCode()),
		)
		return false
	}
	return true
}

// NoopMirror is used when no analytical sink is configured; every
// mirror write reports success.
type NoopMirror struct{}

func (NoopMirror) MirrorSale(*Sale) bool { return true }
