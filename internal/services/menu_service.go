package services

import (
	"fmt"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"
)

// --- MenuService Interface ---

// MenuService implements the menu and stock grid editors: the menu table is
// replaced wholesale, stock accepts quantity changes only. Every write runs
// the save-time invariants (empty names dropped, stock resynchronized to the
// menu's product set).
type MenuService interface {
	GetMenu() []models.MenuItem
	// ReplaceMenu swaps in the edited menu table and returns it as persisted
	// (after normalization).
	ReplaceMenu(menu []models.MenuItem) ([]models.MenuItem, error)

	// GetStock returns the stock table pre-synced to the current menu, so the
	// editor always shows exactly one row per menu product.
	GetStock() []models.StockEntry
	// UpdateStock sets quantities for existing products. Unknown products are
	// ignored (the menu is the source of truth for the product set).
	UpdateStock(changes []models.StockQuantity) ([]models.StockEntry, error)
}

type menuService struct {
	store *store.Store
}

// NewMenuService creates a new MenuService over the table store.
func NewMenuService(st *store.Store) MenuService {
	return &menuService{store: st}
}

func (s *menuService) GetMenu() []models.MenuItem {
	return s.store.Tables().Menu
}

func (s *menuService) ReplaceMenu(menu []models.MenuItem) ([]models.MenuItem, error) {
	var saved []models.MenuItem
	err := s.store.Update(func(t *store.Tables, _ *models.CompanyProfile) error {
		t.Menu = append([]models.MenuItem(nil), menu...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved = s.store.Tables().Menu
	return saved, nil
}

func (s *menuService) GetStock() []models.StockEntry {
	tables := s.store.Tables()
	return store.SyncStock(tables.Stock, tables.Menu)
}

func (s *menuService) UpdateStock(changes []models.StockQuantity) ([]models.StockEntry, error) {
	for _, change := range changes {
		if change.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity for %q cannot be negative", ErrValidation, change.Product)
		}
	}

	err := s.store.Update(func(t *store.Tables, _ *models.CompanyProfile) error {
		t.Stock = store.SyncStock(t.Stock, t.Menu)
		byProduct := make(map[string]int, len(t.Stock))
		for i, e := range t.Stock {
			byProduct[e.Product] = i
		}
		for _, change := range changes {
			if i, ok := byProduct[change.Product]; ok {
				t.Stock[i].Quantity = change.Quantity
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.store.Tables().Stock, nil
}
