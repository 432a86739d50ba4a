package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pizzeria_backend/internal/models"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	st, err := Open(filepath.Join(dir, "pizzaria_db.xlsx"), filepath.Join(dir, "config_empresa.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func TestOpenCreatesDefaultSchema(t *testing.T) {
	dir := t.TempDir()
	st := openTestStore(t, dir)

	if _, err := os.Stat(filepath.Join(dir, "pizzaria_db.xlsx")); err != nil {
		t.Fatalf("workbook not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config_empresa.json")); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	tables := st.Tables()
	if len(tables.Menu) != 0 || len(tables.Stock) != 0 || len(tables.Sales) != 0 || len(tables.Purchases) != 0 {
		t.Fatalf("expected empty tables, got %+v", tables)
	}
	if got := st.Company().TradeName; got != "Pizzaria Casa Velha" {
		t.Fatalf("expected default trade name, got %q", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := openTestStore(t, dir)

	saleTime := time.Date(2025, 8, 12, 20, 15, 0, 0, time.UTC)
	err := st.Update(func(tb *Tables, c *models.CompanyProfile) error {
		tb.Menu = []models.MenuItem{
			{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10},
			{Name: "Coca-Cola", Category: "Bebidas", Price: 8, Cost: 3},
		}
		tb.Stock = []models.StockEntry{{Product: "Margherita", Quantity: 5}}
		tb.Sales = []models.SaleRecord{{Time: saleTime, Product: "Margherita", Quantity: 2, CustomerTaxID: "123.456.789-00"}}
		tb.Purchases = []models.PurchaseRecord{{Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), Item: "Farinha", Amount: 150.5, Supplier: "Moinho Sul", Category: "Mercadorias"}}
		c.TradeName = "Pizzaria Teste"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded := openTestStore(t, dir)
	tables := reloaded.Tables()

	if len(tables.Menu) != 2 || tables.Menu[0].Name != "Margherita" || tables.Menu[0].Price != 30 {
		t.Fatalf("menu round trip failed: %+v", tables.Menu)
	}
	if len(tables.Sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(tables.Sales))
	}
	sale := tables.Sales[0]
	if sale.Time.Format(TimeLayout) != saleTime.Format(TimeLayout) {
		t.Fatalf("sale time round trip failed: %v", sale.Time)
	}
	if sale.Product != "Margherita" || sale.Quantity != 2 || sale.CustomerTaxID != "123.456.789-00" {
		t.Fatalf("sale round trip failed: %+v", sale)
	}
	if sale.ID != 0 {
		t.Fatalf("expected sale ID 0, got %d", sale.ID)
	}
	if len(tables.Purchases) != 1 || tables.Purchases[0].Item != "Farinha" || tables.Purchases[0].Amount != 150.5 {
		t.Fatalf("purchase round trip failed: %+v", tables.Purchases)
	}
	if got := reloaded.Company().TradeName; got != "Pizzaria Teste" {
		t.Fatalf("company round trip failed: %q", got)
	}
}

func TestSaveSyncsStockToMenu(t *testing.T) {
	dir := t.TempDir()
	st := openTestStore(t, dir)

	err := st.Update(func(tb *Tables, _ *models.CompanyProfile) error {
		tb.Menu = []models.MenuItem{
			{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10},
			{Name: "Calabresa", Category: "Pizzas", Price: 32, Cost: 12},
		}
		tb.Stock = []models.StockEntry{
			{Product: "Margherita", Quantity: 5},
			{Product: "Removida", Quantity: 9}, // no longer on the menu
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stock := st.Tables().Stock
	if len(stock) != 2 {
		t.Fatalf("expected stock synced to 2 products, got %+v", stock)
	}
	if stock[0].Product != "Margherita" || stock[0].Quantity != 5 {
		t.Fatalf("existing quantity lost: %+v", stock[0])
	}
	if stock[1].Product != "Calabresa" || stock[1].Quantity != 0 {
		t.Fatalf("new product should default to zero: %+v", stock[1])
	}
}

func TestSaveDropsMenuRowsWithoutName(t *testing.T) {
	dir := t.TempDir()
	st := openTestStore(t, dir)

	err := st.Update(func(tb *Tables, _ *models.CompanyProfile) error {
		tb.Menu = []models.MenuItem{
			{Name: "Margherita", Price: 30, Cost: 10},
			{Name: "   ", Price: 5, Cost: 1},
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	menu := st.Tables().Menu
	if len(menu) != 1 || menu[0].Name != "Margherita" {
		t.Fatalf("expected unnamed row dropped, got %+v", menu)
	}
}

func TestUpdateErrorRollsBack(t *testing.T) {
	dir := t.TempDir()
	st := openTestStore(t, dir)

	if err := st.Update(func(tb *Tables, _ *models.CompanyProfile) error {
		tb.Menu = []models.MenuItem{{Name: "Margherita", Price: 30, Cost: 10}}
		return nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sentinel := errors.New("boom")
	err := st.Update(func(tb *Tables, _ *models.CompanyProfile) error {
		tb.Menu = nil
		tb.Sales = append(tb.Sales, models.SaleRecord{Product: "Margherita", Quantity: 1})
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	tables := st.Tables()
	if len(tables.Menu) != 1 || len(tables.Sales) != 0 {
		t.Fatalf("rejected update leaked partial mutation: %+v", tables)
	}
}

func TestOpenCorruptWorkbook(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pizzaria_db.xlsx")
	cfgPath := filepath.Join(dir, "config_empresa.json")

	if err := os.WriteFile(dbPath, []byte("this is not a workbook"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Open(dbPath, cfgPath)
	if !errors.Is(err, ErrStoreUnreadable) {
		t.Fatalf("expected ErrStoreUnreadable, got %v", err)
	}
}

func TestSyncStockDeduplicates(t *testing.T) {
	menu := []models.MenuItem{
		{Name: "Margherita"},
		{Name: "Margherita"}, // duplicate menu row
		{Name: "Calabresa"},
	}
	stock := []models.StockEntry{
		{Product: "Margherita", Quantity: 4},
		{Product: "Margherita", Quantity: 7}, // first row wins
	}

	synced := SyncStock(stock, menu)
	if len(synced) != 2 {
		t.Fatalf("expected 2 entries, got %+v", synced)
	}
	if synced[0].Product != "Margherita" || synced[0].Quantity != 4 {
		t.Fatalf("unexpected first entry: %+v", synced[0])
	}
	if synced[1].Product != "Calabresa" || synced[1].Quantity != 0 {
		t.Fatalf("unexpected second entry: %+v", synced[1])
	}
}
