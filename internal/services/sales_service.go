package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"
)

// Custom Errors
var (
	// ErrNotProvisioned means the product has no stock row at all. The menu
	// and stock tables are only soft-linked, so this can happen for products
	// added since the last save.
	ErrNotProvisioned = errors.New("product has no stock record")

	// ErrInsufficientStock means fewer units are on hand than requested.
	ErrInsufficientStock = errors.New("insufficient stock for product")
)

// --- DTOs ---

// PostSaleRequest is the sale-entry form payload.
type PostSaleRequest struct {
	Product       string `json:"product" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	CustomerTaxID string `json:"customer_tax_id"` // CPF, optional
}

// --- SalesService Interface ---

// SalesService is the only place inventory is mutated downward: a successful
// post decrements stock, appends one sale record and persists the full table
// set in one step.
type SalesService interface {
	PostSale(req PostSaleRequest) (*models.SaleRecord, error)
	// ListSales returns the most recent sales first. limit <= 0 means all.
	ListSales(limit int) []models.SaleRecord
}

type salesService struct {
	store *store.Store
	now   func() time.Time
}

// NewSalesService creates a new SalesService over the table store.
func NewSalesService(st *store.Store) SalesService {
	return &salesService{store: st, now: time.Now}
}

func (s *salesService) PostSale(req PostSaleRequest) (*models.SaleRecord, error) {
	if strings.TrimSpace(req.Product) == "" {
		return nil, fmt.Errorf("%w: product is required", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	var posted models.SaleRecord
	err := s.store.Update(func(t *store.Tables, _ *models.CompanyProfile) error {
		idx := -1
		for i, e := range t.Stock {
			if e.Product == req.Product {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrNotProvisioned, req.Product)
		}
		if t.Stock[idx].Quantity < req.Quantity {
			return fmt.Errorf("%w: only %d unit(s) of %q available",
				ErrInsufficientStock, t.Stock[idx].Quantity, req.Product)
		}

		t.Stock[idx].Quantity -= req.Quantity
		posted = models.SaleRecord{
			ID:            len(t.Sales),
			Time:          s.now(),
			Product:       req.Product,
			Quantity:      req.Quantity,
			CustomerTaxID: strings.TrimSpace(req.CustomerTaxID),
		}
		t.Sales = append(t.Sales, posted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &posted, nil
}

func (s *salesService) ListSales(limit int) []models.SaleRecord {
	sales := s.store.Tables().Sales

	// Recent first.
	out := make([]models.SaleRecord, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		out = append(out, sales[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
