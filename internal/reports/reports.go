// Package reports holds the sales aggregation core. Everything here is pure:
// the engine takes a slice of sales already filtered to the requested range
// plus a category lookup, and returns a summary without touching storage.
package reports

import (
	"sort"
	"time"

	"go-pos-backend/internal/models"
)

// TopProductLimit caps the best-seller list in a summary.
const TopProductLimit = 10

// ProductAggregate is one row of the top-seller list. The name is the
// first-seen line-item snapshot, so a product renamed after the sale keeps
// showing its historical name here.
type ProductAggregate struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// DailyTotal is one calendar day (UTC) of revenue.
type DailyTotal struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// Summary is the derived report view. It is computed on demand and never
// persisted.
type Summary struct {
	TotalSales        float64            `json:"total_sales"`
	TotalTransactions int                `json:"total_transactions"`
	TopProducts       []ProductAggregate `json:"top_products"`
	SalesByCategory   map[string]float64 `json:"sales_by_category"`
	DailySales        []DailyTotal       `json:"daily_sales"`
}

// CategoryLookup resolves a product id to its *current* category. The second
// return is false when the product no longer exists in the catalog.
type CategoryLookup func(productID string) (string, bool)

// Summarize aggregates the given sales.
//
// Product names come from historical line-item snapshots while categories are
// resolved live through lookup, so a recategorized product counts under its
// current category but keeps its old display name. A product deleted from the
// catalog contributes nothing to category totals. Both behaviors are kept
// deliberately.
func Summarize(sales []models.Sale, lookup CategoryLookup) Summary {
	summary := Summary{
		TopProducts:     []ProductAggregate{},
		SalesByCategory: map[string]float64{},
		DailySales:      []DailyTotal{},
	}

	// Aggregates keyed by product id, with first-seen order preserved so the
	// top-10 tie-break is stable.
	byProduct := map[string]*ProductAggregate{}
	var order []string
	dailyTotals := map[string]float64{}

	for _, sale := range sales {
		// Totals trust the stored total field, not a recomputation from items.
		summary.TotalSales += sale.Total
		summary.TotalTransactions++

		dayKey := sale.Date.UTC().Format("2006-01-02")
		dailyTotals[dayKey] += sale.Total

		for _, item := range sale.Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &ProductAggregate{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
				}
				byProduct[item.ProductID] = agg
				order = append(order, item.ProductID)
			}
			agg.Quantity += item.Quantity
			agg.Revenue += item.Subtotal
		}
	}

	for _, pid := range order {
		agg := byProduct[pid]
		if category, ok := lookup(pid); ok {
			summary.SalesByCategory[category] += agg.Revenue
		}
		summary.TopProducts = append(summary.TopProducts, *agg)
	}

	sort.SliceStable(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].Quantity > summary.TopProducts[j].Quantity
	})
	if len(summary.TopProducts) > TopProductLimit {
		summary.TopProducts = summary.TopProducts[:TopProductLimit]
	}

	dayKeys := make([]string, 0, len(dailyTotals))
	for day := range dailyTotals {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)
	for _, day := range dayKeys {
		summary.DailySales = append(summary.DailySales, DailyTotal{Date: day, Total: dailyTotals[day]})
	}

	return summary
}

// RangeForPeriod returns the default start bound for a named period.
// daily truncates now to UTC midnight; the others reach back a fixed number
// of days. Unknown periods fall back to daily.
func RangeForPeriod(period string, now time.Time) time.Time {
	now = now.UTC()
	switch period {
	case "weekly":
		return now.AddDate(0, 0, -7)
	case "monthly":
		return now.AddDate(0, 0, -30)
	case "yearly":
		return now.AddDate(0, 0, -365)
	default: // daily
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
}
