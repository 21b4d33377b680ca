package reports

import (
	"fmt"
	"testing"
	"time"

	"go-pos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func staticLookup(categories map[string]string) CategoryLookup {
	return func(productID string) (string, bool) {
		category, ok := categories[productID]
		return category, ok
	}
}

func TestSummarizeTwoDaysOneCategory(t *testing.T) {
	sales := []models.Sale{
		{
			Total: 10,
			Date:  day("2026-08-01"),
			Items: []models.SaleItem{
				{ProductID: "p1", ProductName: "Iced Coffee", Quantity: 2, UnitPrice: 5, Subtotal: 10},
			},
		},
		{
			Total: 15,
			Date:  day("2026-08-02"),
			Items: []models.SaleItem{
				{ProductID: "p1", ProductName: "Iced Coffee", Quantity: 3, UnitPrice: 5, Subtotal: 15},
			},
		},
	}

	summary := Summarize(sales, staticLookup(map[string]string{"p1": "drinks"}))

	assert.Equal(t, 25.0, summary.TotalSales)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, map[string]float64{"drinks": 25}, summary.SalesByCategory)
	assert.Equal(t, []DailyTotal{
		{Date: "2026-08-01", Total: 10},
		{Date: "2026-08-02", Total: 15},
	}, summary.DailySales)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, 5, summary.TopProducts[0].Quantity)
	assert.Equal(t, 25.0, summary.TopProducts[0].Revenue)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, staticLookup(nil))

	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.SalesByCategory)
	assert.Empty(t, summary.DailySales)
}

func TestSummarizeNameSnapshotCategoryLive(t *testing.T) {
	// The sale recorded the old name; the catalog has since been renamed and
	// recategorized. The summary keeps the historical name but groups revenue
	// under the current category.
	sales := []models.Sale{
		{
			Total: 8,
			Date:  day("2026-08-10"),
			Items: []models.SaleItem{
				{ProductID: "p1", ProductName: "Old Name", Quantity: 2, Subtotal: 8},
			},
		},
	}

	summary := Summarize(sales, staticLookup(map[string]string{"p1": "new_category"}))

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "Old Name", summary.TopProducts[0].ProductName)
	assert.Equal(t, map[string]float64{"new_category": 8}, summary.SalesByCategory)
}

func TestSummarizeDeletedProductDropsFromCategories(t *testing.T) {
	sales := []models.Sale{
		{
			Total: 12,
			Date:  day("2026-08-10"),
			Items: []models.SaleItem{
				{ProductID: "gone", ProductName: "Deleted Item", Quantity: 3, Subtotal: 12},
			},
		},
	}

	summary := Summarize(sales, staticLookup(nil))

	// The sale still counts toward totals and top products.
	assert.Equal(t, 12.0, summary.TotalSales)
	require.Len(t, summary.TopProducts, 1)
	// But there is no category to attribute the revenue to.
	assert.Empty(t, summary.SalesByCategory)
}

func TestSummarizeTopProductsTruncationAndStableTies(t *testing.T) {
	// Twelve distinct products in one sale, all with the same quantity, so
	// the order among them must stay first-seen.
	var items []models.SaleItem
	for i := 0; i < 12; i++ {
		items = append(items, models.SaleItem{
			ProductID:   fmt.Sprintf("p%02d", i),
			ProductName: fmt.Sprintf("Product %02d", i),
			Quantity:    1,
			Subtotal:    1,
		})
	}
	// One clear winner appended last.
	items = append(items, models.SaleItem{
		ProductID: "winner", ProductName: "Winner", Quantity: 99, Subtotal: 99,
	})

	summary := Summarize([]models.Sale{{Total: 111, Date: day("2026-08-10"), Items: items}}, staticLookup(nil))

	require.Len(t, summary.TopProducts, TopProductLimit)
	assert.Equal(t, "winner", summary.TopProducts[0].ProductID)
	for i := 1; i < TopProductLimit; i++ {
		assert.Equal(t, fmt.Sprintf("p%02d", i-1), summary.TopProducts[i].ProductID)
	}
}

func TestSummarizeAccumulatesAcrossSales(t *testing.T) {
	sales := []models.Sale{
		{Total: 4, Date: day("2026-08-10"), Items: []models.SaleItem{
			{ProductID: "p1", ProductName: "Bagel", Quantity: 2, Subtotal: 4},
		}},
		{Total: 6, Date: day("2026-08-10"), Items: []models.SaleItem{
			{ProductID: "p1", ProductName: "Renamed Bagel", Quantity: 3, Subtotal: 6},
		}},
	}

	summary := Summarize(sales, staticLookup(map[string]string{"p1": "snacks"}))

	require.Len(t, summary.TopProducts, 1)
	// First-seen snapshot wins the display name.
	assert.Equal(t, "Bagel", summary.TopProducts[0].ProductName)
	assert.Equal(t, 5, summary.TopProducts[0].Quantity)
	assert.Equal(t, 10.0, summary.TopProducts[0].Revenue)
	// Same-day sales land in one bucket.
	assert.Equal(t, []DailyTotal{{Date: "2026-08-10", Total: 10}}, summary.DailySales)
}

func TestRangeForPeriod(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 45, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), RangeForPeriod("daily", now))
	assert.Equal(t, now.AddDate(0, 0, -7), RangeForPeriod("weekly", now))
	assert.Equal(t, now.AddDate(0, 0, -30), RangeForPeriod("monthly", now))
	assert.Equal(t, now.AddDate(0, 0, -365), RangeForPeriod("yearly", now))
	// Unknown periods behave like daily.
	assert.Equal(t, RangeForPeriod("daily", now), RangeForPeriod("hourly", now))
}
