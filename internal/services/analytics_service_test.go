package services

import (
	"testing"
	"time"

	"pizzeria_backend/internal/models"
	"pizzeria_backend/internal/store"
)

func seedSales(t *testing.T, st *store.Store, sales []models.SaleRecord) {
	t.Helper()
	err := st.Update(func(tb *store.Tables, _ *models.CompanyProfile) error {
		tb.Sales = append(tb.Sales, sales...)
		return nil
	})
	if err != nil {
		t.Fatalf("seed sales: %v", err)
	}
}

func at(day int, hour int) time.Time {
	return time.Date(2025, 8, day, hour, 0, 0, 0, time.UTC)
}

func TestSummaryTotals(t *testing.T) {
	st := setupTestStore(t)
	seedMenu(t, st,
		[]models.MenuItem{{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10}},
		map[string]int{"Margherita": 5},
	)
	seedSales(t, st, []models.SaleRecord{{Time: at(12, 20), Product: "Margherita", Quantity: 2}})
	svc := NewAnalyticsService(st)

	summary := svc.Summary(time.Time{}, at(31, 0), 0, 0)
	if summary.TotalRevenue != 60 {
		t.Fatalf("expected revenue 60, got %v", summary.TotalRevenue)
	}
	if summary.TotalProfit != 40 {
		t.Fatalf("expected profit 40, got %v", summary.TotalProfit)
	}
	if summary.TotalUnits != 2 {
		t.Fatalf("expected 2 units, got %d", summary.TotalUnits)
	}
}

func TestSummaryExcludesUnpricedRows(t *testing.T) {
	st := setupTestStore(t)
	seedMenu(t, st,
		[]models.MenuItem{
			{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10},
			{Name: "Promo Nova", Category: "Pizzas", Price: 0, Cost: 0}, // not yet priced
			{Name: "Sem Custo", Category: "Pizzas", Price: 20, Cost: 0}, // cost missing
		},
		map[string]int{},
	)
	seedSales(t, st, []models.SaleRecord{
		{Time: at(12, 20), Product: "Margherita", Quantity: 1},
		{Time: at(12, 21), Product: "Promo Nova", Quantity: 4},
		{Time: at(12, 22), Product: "Sem Custo", Quantity: 4},
		{Time: at(12, 23), Product: "Produto Removido", Quantity: 4}, // no menu match
	})
	svc := NewAnalyticsService(st)

	summary := svc.Summary(time.Time{}, at(31, 0), 0, 0)
	if summary.TotalRevenue != 30 || summary.TotalProfit != 20 || summary.TotalUnits != 1 {
		t.Fatalf("unpriced rows leaked into totals: %+v", summary)
	}
}

func TestSummaryDateRangeIsHalfOpen(t *testing.T) {
	st := setupTestStore(t)
	seedMenu(t, st,
		[]models.MenuItem{{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10}},
		map[string]int{},
	)
	seedSales(t, st, []models.SaleRecord{
		{Time: at(10, 23), Product: "Margherita", Quantity: 1}, // before range
		{Time: at(11, 0), Product: "Margherita", Quantity: 1},  // range start, included
		{Time: at(12, 23), Product: "Margherita", Quantity: 1}, // inside
		{Time: at(13, 0), Product: "Margherita", Quantity: 1},  // range end, excluded
	})
	svc := NewAnalyticsService(st)

	summary := svc.Summary(at(11, 0), at(13, 0), 0, 0)
	if summary.TotalUnits != 2 {
		t.Fatalf("expected 2 units in [11th, 13th), got %d", summary.TotalUnits)
	}
}

func TestTopProductsOrderAndTieBreak(t *testing.T) {
	st := setupTestStore(t)
	seedMenu(t, st,
		[]models.MenuItem{
			{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10},
			{Name: "Calabresa", Category: "Pizzas", Price: 32, Cost: 12},
			{Name: "Quatro Queijos", Category: "Pizzas", Price: 38, Cost: 15},
		},
		map[string]int{},
	)
	// Calabresa leads with 5; Margherita and Quatro Queijos tie at 3 but
	// Margherita is seen first in the log.
	seedSales(t, st, []models.SaleRecord{
		{Time: at(12, 18), Product: "Margherita", Quantity: 3},
		{Time: at(12, 19), Product: "Calabresa", Quantity: 5},
		{Time: at(12, 20), Product: "Quatro Queijos", Quantity: 3},
	})
	svc := NewAnalyticsService(st)

	summary := svc.Summary(time.Time{}, at(31, 0), 2, 0)
	top := summary.TopProductsByQuantity
	if len(top) != 2 {
		t.Fatalf("expected top-2, got %+v", top)
	}
	if top[0].Label != "Calabresa" || top[0].Value != 5 {
		t.Fatalf("unexpected leader: %+v", top[0])
	}
	if top[1].Label != "Margherita" {
		t.Fatalf("tie should break by first-seen order, got %+v", top[1])
	}
}

func TestRevenueBreakdownsExcludeEmptyLabelsOnly(t *testing.T) {
	st := setupTestStore(t)
	seedMenu(t, st,
		[]models.MenuItem{
			{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10},
			{Name: "Brinde", Category: "", Price: 5, Cost: 1}, // uncategorized
		},
		map[string]int{},
	)
	seedSales(t, st, []models.SaleRecord{
		{Time: at(12, 20), Product: "Margherita", Quantity: 1},
		{Time: at(12, 21), Product: "Brinde", Quantity: 1},
	})
	svc := NewAnalyticsService(st)

	summary := svc.Summary(time.Time{}, at(31, 0), 0, 0)
	if summary.TotalRevenue != 35 {
		t.Fatalf("uncategorized row must still count in totals: %v", summary.TotalRevenue)
	}
	if len(summary.RevenueByCategory) != 1 || summary.RevenueByCategory[0].Label != "Pizzas" {
		t.Fatalf("empty category leaked into breakdown: %+v", summary.RevenueByCategory)
	}
}

func TestRevenueByDayAndWeekday(t *testing.T) {
	st := setupTestStore(t)
	seedMenu(t, st,
		[]models.MenuItem{{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10}},
		map[string]int{},
	)
	// 2025-08-11 is a Monday, 2025-08-12 a Tuesday.
	seedSales(t, st, []models.SaleRecord{
		{Time: at(11, 12), Product: "Margherita", Quantity: 1},
		{Time: at(11, 20), Product: "Margherita", Quantity: 1},
		{Time: at(12, 20), Product: "Margherita", Quantity: 2},
	})
	svc := NewAnalyticsService(st)

	summary := svc.Summary(time.Time{}, at(31, 0), 0, 0)

	byDay := summary.RevenueByDay
	if len(byDay) != 2 || byDay[0].Label != "2025-08-11" || byDay[0].Value != 60 || byDay[1].Label != "2025-08-12" || byDay[1].Value != 60 {
		t.Fatalf("unexpected daily breakdown: %+v", byDay)
	}

	byWeekday := summary.RevenueByWeekday
	if len(byWeekday) != 7 {
		t.Fatalf("weekday breakdown must be zero-filled over 7 days: %+v", byWeekday)
	}
	if byWeekday[0].Label != "Monday" || byWeekday[0].Value != 60 {
		t.Fatalf("unexpected Monday entry: %+v", byWeekday[0])
	}
	if byWeekday[1].Label != "Tuesday" || byWeekday[1].Value != 60 {
		t.Fatalf("unexpected Tuesday entry: %+v", byWeekday[1])
	}
	if byWeekday[6].Label != "Sunday" || byWeekday[6].Value != 0 {
		t.Fatalf("unexpected Sunday entry: %+v", byWeekday[6])
	}
}

func TestRangeStates(t *testing.T) {
	st := setupTestStore(t)
	svc := NewAnalyticsService(st)

	if r := svc.Range(); r.HasSales || r.HasValidSales {
		t.Fatalf("empty store should report no sales: %+v", r)
	}

	// Sales exist but the product is unpriced: charts stay empty.
	seedMenu(t, st,
		[]models.MenuItem{{Name: "Promo Nova", Category: "Pizzas", Price: 0, Cost: 0}},
		map[string]int{},
	)
	seedSales(t, st, []models.SaleRecord{{Time: at(12, 20), Product: "Promo Nova", Quantity: 1}})
	if r := svc.Range(); !r.HasSales || r.HasValidSales {
		t.Fatalf("unpriced sales should not count as valid: %+v", r)
	}

	seedMenu(t, st,
		[]models.MenuItem{{Name: "Margherita", Category: "Pizzas", Price: 30, Cost: 10}},
		map[string]int{},
	)
	seedSales(t, st, []models.SaleRecord{
		{Time: at(10, 10), Product: "Margherita", Quantity: 1},
		{Time: at(14, 10), Product: "Margherita", Quantity: 1},
	})
	r := svc.Range()
	if !r.HasValidSales || r.FirstSale == nil || r.LastSale == nil {
		t.Fatalf("expected valid range: %+v", r)
	}
	if !r.FirstSale.Equal(at(10, 10)) || !r.LastSale.Equal(at(14, 10)) {
		t.Fatalf("unexpected range bounds: %v .. %v", r.FirstSale, r.LastSale)
	}
}
