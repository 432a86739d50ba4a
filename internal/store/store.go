package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"pizzeria_backend/internal/models"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrStoreUnreadable is returned when the persisted container exists but
	// cannot be parsed. The session must halt rather than guess; deleting the
	// files makes the store regenerate an empty schema.
	ErrStoreUnreadable = errors.New("data store unreadable or malformed")
)

// Sheet names and column layouts match the legacy pizzaria_db.xlsx workbook so
// existing store files keep working.
const (
	sheetMenu      = "Cardapio"
	sheetStock     = "Estoque"
	sheetSales     = "Vendas"
	sheetPurchases = "Compras"

	// TimeLayout is how sale timestamps are serialized in the workbook.
	TimeLayout = "2006-01-02 15:04:05"
	// DateLayout is how purchase dates are serialized.
	DateLayout = "2006-01-02"
)

var (
	menuHeader      = []interface{}{"Produto", "Categoria", "Preco_Venda", "Custo_Unitario"}
	stockHeader     = []interface{}{"Produto", "Quantidade_Estoque"}
	salesHeader     = []interface{}{"Data", "Produto", "Quantidade", "CPF_Cliente"}
	purchasesHeader = []interface{}{"Data", "Item", "Valor", "Fornecedor", "Categoria_Despesa"}
)

// Tables is the full in-memory table set. All operations read the whole set
// and write the whole set back; there is no incremental persistence.
type Tables struct {
	Menu      []models.MenuItem
	Stock     []models.StockEntry
	Sales     []models.SaleRecord
	Purchases []models.PurchaseRecord
}

// Store owns the table set plus the company profile, backed by one xlsx
// workbook and one JSON configuration file. A single mutex serializes access:
// each user-initiated action runs to completion before the next is accepted.
type Store struct {
	mu      sync.Mutex
	dbPath  string
	cfgPath string

	tables  Tables
	company models.CompanyProfile
}

// Open loads the store from dbPath/cfgPath. Missing files are synthesized
// with the empty default schema and persisted before loading. A container
// that exists but cannot be parsed returns an error wrapping
// ErrStoreUnreadable.
func Open(dbPath, cfgPath string) (*Store, error) {
	s := &Store{dbPath: dbPath, cfgPath: cfgPath}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		if err := s.writeWorkbook(Tables{}); err != nil {
			return nil, fmt.Errorf("creating initial workbook: %w", err)
		}
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := s.writeConfig(models.DefaultCompanyProfile()); err != nil {
			return nil, fmt.Errorf("creating initial config: %w", err)
		}
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tables returns a deep copy of the current table set.
func (s *Store) Tables() Tables {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTables(s.tables)
}

// Company returns the current company profile.
func (s *Store) Company() models.CompanyProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

// Update runs fn against the mutable table set and company profile under the
// store lock. If fn returns nil the whole store is saved; if fn returns an
// error nothing is persisted and the in-memory state is rolled back, so a
// rejected command leaves no partial mutation.
func (s *Store) Update(fn func(t *Tables, c *models.CompanyProfile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backupTables := copyTables(s.tables)
	backupCompany := s.company

	if err := fn(&s.tables, &s.company); err != nil {
		s.tables = backupTables
		s.company = backupCompany
		return err
	}
	if err := s.save(); err != nil {
		s.tables = backupTables
		s.company = backupCompany
		return err
	}
	return nil
}

// save normalizes the table set (save-time invariants) and writes everything.
// Caller must hold the lock.
func (s *Store) save() error {
	s.normalize()
	if err := s.writeWorkbook(s.tables); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	if err := s.writeConfig(s.company); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// normalize applies the soft invariants enforced at save time:
// menu rows without a product name are dropped, the stock table is
// resynchronized to exactly the menu's product set (orphans removed, new
// products inserted at zero), and sale IDs are renumbered by position.
func (s *Store) normalize() {
	menu := s.tables.Menu[:0]
	for _, item := range s.tables.Menu {
		if strings.TrimSpace(item.Name) != "" {
			menu = append(menu, item)
		}
	}
	s.tables.Menu = menu

	s.tables.Stock = SyncStock(s.tables.Stock, s.tables.Menu)

	for i := range s.tables.Sales {
		s.tables.Sales[i].ID = i
	}
}

// SyncStock returns stock restricted to the menu's product set, preserving
// existing quantities and adding missing products at zero, in menu order.
func SyncStock(stock []models.StockEntry, menu []models.MenuItem) []models.StockEntry {
	onHand := make(map[string]int, len(stock))
	seen := make(map[string]bool, len(stock))
	for _, e := range stock {
		if !seen[e.Product] {
			onHand[e.Product] = e.Quantity
			seen[e.Product] = true
		}
	}

	synced := make([]models.StockEntry, 0, len(menu))
	added := make(map[string]bool, len(menu))
	for _, item := range menu {
		if added[item.Name] {
			continue
		}
		added[item.Name] = true
		synced = append(synced, models.StockEntry{Product: item.Name, Quantity: onHand[item.Name]})
	}
	return synced
}

// --- loading ---

func (s *Store) load() error {
	f, err := excelize.OpenFile(s.dbPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnreadable, s.dbPath, err)
	}
	defer f.Close()

	tables := Tables{}
	if tables.Menu, err = readMenuSheet(f); err != nil {
		return fmt.Errorf("%w: sheet %s: %v", ErrStoreUnreadable, sheetMenu, err)
	}
	if tables.Stock, err = readStockSheet(f); err != nil {
		return fmt.Errorf("%w: sheet %s: %v", ErrStoreUnreadable, sheetStock, err)
	}
	if tables.Sales, err = readSalesSheet(f); err != nil {
		return fmt.Errorf("%w: sheet %s: %v", ErrStoreUnreadable, sheetSales, err)
	}
	// Older store files predate the purchases sheet; treat it as empty.
	if sheetExists(f, sheetPurchases) {
		if tables.Purchases, err = readPurchasesSheet(f); err != nil {
			return fmt.Errorf("%w: sheet %s: %v", ErrStoreUnreadable, sheetPurchases, err)
		}
	}

	raw, err := os.ReadFile(s.cfgPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnreadable, s.cfgPath, err)
	}
	var company models.CompanyProfile
	if err := json.Unmarshal(raw, &company); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnreadable, s.cfgPath, err)
	}

	s.tables = tables
	s.company = company
	s.normalize()
	return nil
}

func sheetExists(f *excelize.File, name string) bool {
	for _, n := range f.GetSheetList() {
		if n == name {
			return true
		}
	}
	return false
}

// cell returns the i-th cell of a row; GetRows trims trailing empty cells so
// rows may be shorter than the header.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// Numeric cells are coerced best-effort: junk reads as zero, the same way the
// analytics layer treats unpriced rows.
func cellFloat(row []string, i int) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell(row, i), ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func cellInt(row []string, i int) int {
	return int(cellFloat(row, i))
}

func cellTime(row []string, i int) (time.Time, error) {
	raw := cell(row, i)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{TimeLayout, DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func readMenuSheet(f *excelize.File) ([]models.MenuItem, error) {
	rows, err := f.GetRows(sheetMenu)
	if err != nil {
		return nil, err
	}
	var menu []models.MenuItem
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if cell(row, 0) == "" {
			continue
		}
		menu = append(menu, models.MenuItem{
			Name:     cell(row, 0),
			Category: cell(row, 1),
			Price:    cellFloat(row, 2),
			Cost:     cellFloat(row, 3),
		})
	}
	return menu, nil
}

func readStockSheet(f *excelize.File) ([]models.StockEntry, error) {
	rows, err := f.GetRows(sheetStock)
	if err != nil {
		return nil, err
	}
	var stock []models.StockEntry
	for i, row := range rows {
		if i == 0 || cell(row, 0) == "" {
			continue
		}
		stock = append(stock, models.StockEntry{
			Product:  cell(row, 0),
			Quantity: cellInt(row, 1),
		})
	}
	return stock, nil
}

func readSalesSheet(f *excelize.File) ([]models.SaleRecord, error) {
	rows, err := f.GetRows(sheetSales)
	if err != nil {
		return nil, err
	}
	var sales []models.SaleRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cell(row, 0) == "" && cell(row, 1) == "" {
			continue
		}
		when, err := cellTime(row, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		sales = append(sales, models.SaleRecord{
			Time:          when,
			Product:       cell(row, 1),
			Quantity:      cellInt(row, 2),
			CustomerTaxID: cell(row, 3),
		})
	}
	return sales, nil
}

func readPurchasesSheet(f *excelize.File) ([]models.PurchaseRecord, error) {
	rows, err := f.GetRows(sheetPurchases)
	if err != nil {
		return nil, err
	}
	var purchases []models.PurchaseRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cell(row, 1) == "" {
			continue
		}
		when, err := cellTime(row, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		purchases = append(purchases, models.PurchaseRecord{
			Date:     when,
			Item:     cell(row, 1),
			Amount:   cellFloat(row, 2),
			Supplier: cell(row, 3),
			Category: cell(row, 4),
		})
	}
	return purchases, nil
}

// --- writing ---

// writeWorkbook serializes all four sheets and replaces the workbook file via
// a temp-file rename, so the backup on disk is always one consistent snapshot.
func (s *Store) writeWorkbook(t Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range []struct {
		name   string
		header []interface{}
	}{
		{sheetMenu, menuHeader},
		{sheetStock, stockHeader},
		{sheetSales, salesHeader},
		{sheetPurchases, purchasesHeader},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.name, "A1", &sheet.header); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, item := range t.Menu {
		row := []interface{}{item.Name, item.Category, item.Price, item.Cost}
		if err := setRow(f, sheetMenu, i+2, row); err != nil {
			return err
		}
	}
	for i, e := range t.Stock {
		row := []interface{}{e.Product, e.Quantity}
		if err := setRow(f, sheetStock, i+2, row); err != nil {
			return err
		}
	}
	for i, sale := range t.Sales {
		row := []interface{}{sale.Time.Format(TimeLayout), sale.Product, sale.Quantity, sale.CustomerTaxID}
		if err := setRow(f, sheetSales, i+2, row); err != nil {
			return err
		}
	}
	for i, p := range t.Purchases {
		row := []interface{}{p.Date.Format(DateLayout), p.Item, p.Amount, p.Supplier, p.Category}
		if err := setRow(f, sheetPurchases, i+2, row); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o755); err != nil {
		return err
	}
	tmp := s.dbPath + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, s.dbPath)
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	cellRef, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cellRef, &values)
}

func (s *Store) writeConfig(c models.CompanyProfile) error {
	raw, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	tmp := s.cfgPath + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.cfgPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.cfgPath)
}

func copyTables(t Tables) Tables {
	return Tables{
		Menu:      append([]models.MenuItem(nil), t.Menu...),
		Stock:     append([]models.StockEntry(nil), t.Stock...),
		Sales:     append([]models.SaleRecord(nil), t.Sales...),
		Purchases: append([]models.PurchaseRecord(nil), t.Purchases...),
	}
}
