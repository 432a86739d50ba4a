package models

// MenuItem represents a sellable product on the menu (Cardapio sheet).
// Name is the key; sales and stock reference it by value.
type MenuItem struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"` // sale price per unit
	Cost     float64 `json:"cost"`  // unit cost
}

// StockEntry represents the on-hand quantity for one menu item (Estoque sheet).
// The product set is resynchronized to the menu on every save.
type StockEntry struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// StockQuantity is the update payload for the stock editor: only the
// quantity of an existing product may be changed.
type StockQuantity struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity"`
}
