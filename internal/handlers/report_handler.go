package handlers

import (
	"net/http"
	"time"

	"go-pos-backend/internal/database"
	"go-pos-backend/internal/reports"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the aggregation core over HTTP.
type ReportHandler struct {
	sales    *database.SaleStore
	products *database.ProductStore
}

func NewReportHandler(sales *database.SaleStore, products *database.ProductStore) *ReportHandler {
	return &ReportHandler{sales: sales, products: products}
}

// Summary builds a report for ?period= (daily/weekly/monthly/yearly) or an
// explicit ?start_date=/?end_date= range. An explicit start overrides the
// period default; each bound is optional.
func (h *ReportHandler) Summary(c *gin.Context) {
	start, end, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
		return
	}

	if start == nil {
		period := c.DefaultQuery("period", "daily")
		defaultStart := reports.RangeForPeriod(period, time.Now())
		start = &defaultStart
	}

	sales, err := h.sales.FindRange(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}

	// Category comes from the catalog as it is NOW; products deleted since
	// the sale drop out of the category totals.
	lookup := func(productID string) (string, bool) {
		product, err := h.products.FindByID(productID)
		if err != nil || product == nil {
			return "", false
		}
		return product.Category, true
	}

	summary := reports.Summarize(sales, lookup)
	c.JSON(http.StatusOK, summary)
}
