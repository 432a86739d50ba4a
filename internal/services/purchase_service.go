package services

import (
	"fmt"
	"strings"
	"time"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"
	"pizzeria_backend/pkg/utils"
)

// --- DTOs ---

// PostPurchaseRequest is the purchase/expense entry form payload.
type PostPurchaseRequest struct {
	Date     string  `json:"date"` // YYYY-MM-DD, defaults to today
	Item     string  `json:"item" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Supplier string  `json:"supplier"`
	Category string  `json:"category"`
}

// --- PurchaseService Interface ---

// PurchaseService appends to the purchases/expenses log. Purchases have no
// inventory effect.
type PurchaseService interface {
	PostPurchase(req PostPurchaseRequest) (*models.PurchaseRecord, error)
	// ListPurchases returns the most recent purchases first. limit <= 0 means all.
	ListPurchases(limit int) []models.PurchaseRecord
}

type purchaseService struct {
	store *store.Store
	now   func() time.Time
}

// NewPurchaseService creates a new PurchaseService over the table store.
func NewPurchaseService(st *store.Store) PurchaseService {
	return &purchaseService{store: st, now: time.Now}
}

func (s *purchaseService) PostPurchase(req PostPurchaseRequest) (*models.PurchaseRecord, error) {
	if utils.IsEmpty(req.Item) {
		return nil, fmt.Errorf("%w: item description is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	date := s.now()
	if req.Date != "" {
		parsed, err := time.Parse(store.DateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
		date = parsed
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "Outros"
	}

	record := models.PurchaseRecord{
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Item:     strings.TrimSpace(req.Item),
		Amount:   req.Amount,
		Supplier: strings.TrimSpace(req.Supplier),
		Category: category,
	}

	err := s.store.Update(func(t *store.Tables, _ *models.CompanyProfile) error {
		t.Purchases = append(t.Purchases, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *purchaseService) ListPurchases(limit int) []models.PurchaseRecord {
	purchases := s.store.Tables().Purchases

	out := make([]models.PurchaseRecord, 0, len(purchases))
	for i := len(purchases) - 1; i >= 0; i-- {
		out = append(out, purchases[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
