package sales

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrValidation wraps every rejection of a submitted payload.
var ErrValidation = errors.New("invalid sale payload")

// ErrMirror signals that the analytical sink refused the duplicate
// write. The primary store may already hold the record.
var ErrMirror = errors.New("mirror write failed")

// Service provides high-level sales management operations on a Storage
// backend with a best-effort Mirror sink.
type Service struct {
	storage Storage
	mirror  Mirror
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new Service. A nil mirror disables the
// analytical sink.
func NewService(storage Storage, mirror Mirror, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	if mirror == nil {
		mirror = NoopMirror{}
	}
	return &Service{
		storage: storage,
		mirror:  mirror,
		logger:  logger,
		now:     time.Now,
	}
}

// validateProducts checks the submitted line items and converts them
// into stored products.
func validateProducts(inputs []ProductInput) ([]Product, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one product is required", ErrValidation)
	}
	products := make([]Product, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Name) == "" || in.PurchasePrice == nil || in.SalePrice == nil {
			return nil, fmt.Errorf("%w: every product needs a name, a purchase price and a sale price", ErrValidation)
		}
		if *in.PurchasePrice < 0 || *in.SalePrice < 0 {
			return nil, fmt.Errorf("%w: product prices cannot be negative", ErrValidation)
		}
		products = append(products, Product{
			Name:          in.Name,
			PurchasePrice: *in.PurchasePrice,
			SalePrice:     *in.SalePrice,
		})
	}
	return products, nil
}

func validateSaleDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: sale date is required", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: sale date must be in YYYY-MM-DD format", ErrValidation)
	}
	return nil
}

// normalizePaymentMethod resolves the reserved "other" value to the
// companion free-text method so the stored record never carries the
// sentinel.
func normalizePaymentMethod(method, other string) (string, error) {
	if strings.TrimSpace(method) == "" {
		return "", fmt.Errorf("%w: payment method is required", ErrValidation)
	}
	if method != PaymentMethodOther {
		return method, nil
	}
	if strings.TrimSpace(other) == "" {
		return "", fmt.Errorf("%w: other payment method must be provided", ErrValidation)
	}
	return other, nil
}

// CreateSale validates a submission, persists it on the primary store
// and mirrors its line items. Creation only reports success when both
// sinks were written; on a mirror failure the primary record is kept
// and the divergence is logged.
func (s *Service) CreateSale(input CreateSaleInput) (*Sale, error) {
	if err := validateSaleDate(input.SaleDate); err != nil {
		return nil, err
	}
	method, err := normalizePaymentMethod(input.PaymentMethod, input.OtherPaymentMethod)
	if err != nil {
		return nil, err
	}
	products, err := validateProducts(input.Products)
	if err != nil {
		return nil, err
	}

	sale := &Sale{
		ID:            uuid.NewString(),
		SaleDate:      input.SaleDate,
		PaymentMethod: method,
		Products:      products,
		Summary:       SummarizeProducts(products),
		Status:        StatusActive,
		CreatedAt:     s.now(),
	}

	if err := s.storage.Append(sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, err
	}

	if !s.mirror.MirrorSale(sale) {
		s.logger.Warn("sale persisted but mirror write failed",
			zap.String("sale_id", sale.ID),
			zap.String("sale_date", sale.SaleDate),
		)
		return nil, fmt.Errorf("%w: sale %s", ErrMirror, sale.ID)
	}

	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("payment_method", sale.PaymentMethod),
		zap.Int("products", len(sale.Products)),
	)
	return sale, nil
}

// GetSale retrieves a single sale by ID.
func (s *Service) GetSale(id string) (*Sale, error) {
	return s.storage.FindByID(id)
}

// SearchSales filters the stored list. The date filter is an exact
// match, the payment method filter a case-insensitive substring match,
// and a positive limit truncates to the first N results in stored
// order.
func (s *Service) SearchSales(date, paymentMethod string, limit int) ([]*Sale, error) {
	all, err := s.storage.List()
	if err != nil {
		s.logger.Error("failed to list sales", zap.Error(err))
		return nil, err
	}

	filtered := make([]*Sale, 0, len(all))
	method := strings.ToLower(paymentMethod)
	for _, sale := range all {
		if date != "" && sale.SaleDate != date {
			continue
		}
		if method != "" && !strings.Contains(strings.ToLower(sale.PaymentMethod), method) {
			continue
		}
		filtered = append(filtered, sale)
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// UpdateSale merges a partial payload over the stored record. ID and
// CreatedAt are preserved, UpdatedAt is stamped and the summary is
// recomputed so no stale derived data crosses the write boundary.
func (s *Service) UpdateSale(id string, input UpdateSaleInput) (*Sale, error) {
	existing, err := s.storage.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.SaleDate != nil {
		if err := validateSaleDate(*input.SaleDate); err != nil {
			return nil, err
		}
		updated.SaleDate = *input.SaleDate
	}
	if input.PaymentMethod != nil {
		if strings.TrimSpace(*input.PaymentMethod) == "" {
			return nil, fmt.Errorf("%w: payment method is required", ErrValidation)
		}
		updated.PaymentMethod = *input.PaymentMethod
	}
	if input.Products != nil {
		products, err := validateProducts(input.Products)
		if err != nil {
			return nil, err
		}
		updated.Products = products
	}
	if input.Status != nil {
		if strings.TrimSpace(*input.Status) == "" {
			return nil, fmt.Errorf("%w: status cannot be blank", ErrValidation)
		}
		updated.Status = *input.Status
	}

	updated.Summary = SummarizeProducts(updated.Products)
	now := s.now()
	updated.UpdatedAt = &now

	if err := s.storage.Replace(id, &updated); err != nil {
		s.logger.Error("failed to update sale", zap.String("sale_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("sale updated", zap.String("sale_id", id))
	return &updated, nil
}

// DeleteSale removes a sale and returns the removed record.
func (s *Service) DeleteSale(id string) (*Sale, error) {
	removed, err := s.storage.Remove(id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		}
		return nil, err
	}
	s.logger.Info("sale deleted", zap.String("sale_id", id))
	return removed, nil
}

// Report computes aggregate statistics over the stored list at a fixed
// "now": totals across active sales, counts per payment method and the
// number of active sales dated within the 30 days ending today.
func (s *Service) Report() (*Report, error) {
	all, err := s.storage.List()
	if err != nil {
		s.logger.Error("failed to list sales for report", zap.Error(err))
		return nil, err
	}

	active := make([]*Sale, 0, len(all))
	for _, sale := range all {
		if sale.Status == StatusActive {
			active = append(active, sale)
		}
	}

	now := s.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -30)

	byPayment := make(map[string]int)
	recent := 0
	for _, sale := range active {
		byPayment[sale.PaymentMethod]++
		d, err := time.Parse(DateLayout, sale.SaleDate)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			recent++
		}
	}

	agg := SummarizeSales(active)
	return &Report{
		Resumo: ReportSummary{
			TotalVendas:   len(all),
			VendasAtivas:  len(active),
			TotalCompra:   agg.TotalPurchase,
			TotalVenda:    agg.TotalSale,
			LucroTotal:    agg.TotalProfit,
			TotalProdutos: agg.ProductCount,
		},
		VendasPorPagamento: byPayment,
		VendasRecentes:     recent,
		Periodo: ReportPeriod{
			Inicio: start.Format(DateLayout),
			Fim:    end.Format(DateLayout),
		},
	}, nil
}
