package models

import "time"

// EnrichedSale is a sale joined with its menu item, restricted to rows where
// both price and cost are positive (anything else is treated as not yet
// priced, not a real transaction).
type EnrichedSale struct {
	Time     time.Time `json:"time"`
	Product  string    `json:"product"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Cost     float64   `json:"cost"`
	Revenue  float64   `json:"revenue"`
	Profit   float64   `json:"profit"`
}

// MetricPoint is one labeled value in a breakdown (product, category, day or
// weekday, depending on the report).
type MetricPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AnalyticsSummary holds the dashboard KPIs and breakdowns for a date range.
type AnalyticsSummary struct {
	TotalRevenue          float64       `json:"total_revenue"`
	TotalProfit           float64       `json:"total_profit"`
	TotalUnits            int           `json:"total_units"`
	TopProductsByQuantity []MetricPoint `json:"top_products_by_quantity"`
	TopProductsByProfit   []MetricPoint `json:"top_products_by_profit"`
	RevenueByCategory     []MetricPoint `json:"revenue_by_category"`
	RevenueByDay          []MetricPoint `json:"revenue_by_day"`
	RevenueByWeekday      []MetricPoint `json:"revenue_by_weekday"`
}

// SalesRange describes what analyzable data exists: the span of valid
// (priced) sales, and whether unpriced sales are being hidden from the
// charts. The frontend seeds its date pickers and warnings from this.
type SalesRange struct {
	HasSales      bool       `json:"has_sales"`       // any sale at all in the log
	HasValidSales bool       `json:"has_valid_sales"` // sales with positive price and cost
	FirstSale     *time.Time `json:"first_sale,omitempty"`
	LastSale      *time.Time `json:"last_sale,omitempty"`
}
