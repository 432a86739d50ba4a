package models

import "time"

// SaleRecord is one row of the append-only sales log (Vendas sheet).
// Records are keyed by position: ID is the zero-based row index, assigned on
// load/append and never persisted.
type SaleRecord struct {
	ID            int       `json:"id"`
	Time          time.Time `json:"time"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	CustomerTaxID string    `json:"customer_tax_id,omitempty"` // CPF, optional
}

// PurchaseRecord is one row of the purchases/expenses log (Compras sheet).
type PurchaseRecord struct {
	Date     time.Time `json:"date"` // date-only precision
	Item     string    `json:"item"`
	Amount   float64   `json:"amount"`
	Supplier string    `json:"supplier,omitempty"`
	Category string    `json:"category"`
}

// ExpenseCategories are the suggested purchase categories. Free text is
// accepted; these are what the entry form offers.
var ExpenseCategories = []string{"Mercadorias", "Aluguel", "Salários", "Marketing", "Outros"}
