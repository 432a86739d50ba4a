package services

import (
	"sort"
	"time"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"
)

// --- AnalyticsService Interface ---

// AnalyticsService derives the dashboard aggregates from the sales log joined
// with the menu. Sales whose item has a non-positive price or cost are
// treated as not yet priced and excluded from every figure.
type AnalyticsService interface {
	// Summary aggregates sales in the half-open range [from, to).
	// topQuantity/topProfit bound the product rankings; <= 0 falls back to
	// the dashboard defaults (5 and 10).
	Summary(from, to time.Time, topQuantity, topProfit int) models.AnalyticsSummary
	Range() models.SalesRange
}

type analyticsService struct {
	store *store.Store
}

// NewAnalyticsService creates a new AnalyticsService over the table store.
func NewAnalyticsService(st *store.Store) AnalyticsService {
	return &analyticsService{store: st}
}

// weekdayLabels is the calendar order used by the weekday breakdown.
var weekdayLabels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (s *analyticsService) Summary(from, to time.Time, topQuantity, topProfit int) models.AnalyticsSummary {
	if topQuantity <= 0 {
		topQuantity = 5
	}
	if topProfit <= 0 {
		topProfit = 10
	}

	tables := s.store.Tables()
	enriched := enrichSales(tables.Sales, tables.Menu)

	var filtered []models.EnrichedSale
	for _, e := range enriched {
		if e.Time.Before(from) || !e.Time.Before(to) {
			continue
		}
		filtered = append(filtered, e)
	}

	summary := models.AnalyticsSummary{}
	unitsByProduct := newOrderedSums()
	profitByProduct := newOrderedSums()
	revenueByCategory := newOrderedSums()
	revenueByDay := newOrderedSums()
	revenueByWeekday := newOrderedSums()

	for _, e := range filtered {
		summary.TotalRevenue += e.Revenue
		summary.TotalProfit += e.Profit
		summary.TotalUnits += e.Quantity

		// Rows with an empty product or category are excluded from the
		// corresponding breakdown only, never from the totals.
		if e.Product != "" {
			unitsByProduct.add(e.Product, float64(e.Quantity))
			profitByProduct.add(e.Product, e.Profit)
		}
		if e.Category != "" {
			revenueByCategory.add(e.Category, e.Revenue)
		}
		revenueByDay.add(e.Time.Format(store.DateLayout), e.Revenue)
		revenueByWeekday.add(e.Time.Weekday().String(), e.Revenue)
	}

	summary.TopProductsByQuantity = topN(unitsByProduct.points(), topQuantity)
	summary.TopProductsByProfit = topN(profitByProduct.points(), topProfit)
	summary.RevenueByCategory = revenueByCategory.points()
	summary.RevenueByDay = sortedByLabel(revenueByDay.points())
	summary.RevenueByWeekday = weekdayPoints(revenueByWeekday)
	return summary
}

func (s *analyticsService) Range() models.SalesRange {
	tables := s.store.Tables()
	result := models.SalesRange{HasSales: len(tables.Sales) > 0}

	enriched := enrichSales(tables.Sales, tables.Menu)
	if len(enriched) == 0 {
		return result
	}
	result.HasValidSales = true

	first, last := enriched[0].Time, enriched[0].Time
	for _, e := range enriched[1:] {
		if e.Time.Before(first) {
			first = e.Time
		}
		if e.Time.After(last) {
			last = e.Time
		}
	}
	result.FirstSale = &first
	result.LastSale = &last
	return result
}

// enrichSales left-joins sales to menu items by product name and keeps only
// rows with a positive price and cost. Revenue and profit are computed per
// row: revenue = qty*price, profit = revenue - qty*cost.
func enrichSales(sales []models.SaleRecord, menu []models.MenuItem) []models.EnrichedSale {
	byName := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		if _, ok := byName[item.Name]; !ok {
			byName[item.Name] = item
		}
	}

	var enriched []models.EnrichedSale
	for _, sale := range sales {
		item, ok := byName[sale.Product]
		if !ok || item.Price <= 0 || item.Cost <= 0 {
			continue
		}
		revenue := float64(sale.Quantity) * item.Price
		enriched = append(enriched, models.EnrichedSale{
			Time:     sale.Time,
			Product:  sale.Product,
			Category: item.Category,
			Quantity: sale.Quantity,
			Price:    item.Price,
			Cost:     item.Cost,
			Revenue:  revenue,
			Profit:   revenue - float64(sale.Quantity)*item.Cost,
		})
	}
	return enriched
}

// orderedSums accumulates label -> sum while remembering first-seen order, so
// rankings have a deterministic tie-break.
type orderedSums struct {
	order []string
	sums  map[string]float64
}

func newOrderedSums() *orderedSums {
	return &orderedSums{sums: make(map[string]float64)}
}

func (a *orderedSums) add(label string, v float64) {
	if _, ok := a.sums[label]; !ok {
		a.order = append(a.order, label)
	}
	a.sums[label] += v
}

func (a *orderedSums) points() []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(a.order))
	for _, label := range a.order {
		points = append(points, models.MetricPoint{Label: label, Value: a.sums[label]})
	}
	return points
}

// topN sorts by value descending; the stable sort keeps first-seen order on
// ties.
func topN(points []models.MetricPoint, n int) []models.MetricPoint {
	sorted := append([]models.MetricPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sortedByLabel(points []models.MetricPoint) []models.MetricPoint {
	sorted := append([]models.MetricPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })
	return sorted
}

// weekdayPoints emits all seven weekdays in calendar order, zero-filled.
func weekdayPoints(sums *orderedSums) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(weekdayLabels))
	for _, label := range weekdayLabels {
		points = append(points, models.MetricPoint{Label: label, Value: sums.sums[label]})
	}
	return points
}
