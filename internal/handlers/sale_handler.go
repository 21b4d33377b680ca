package handlers

import (
	"log"
	"net/http"
	"time"

	"go-pos-backend/internal/database"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	Subtotal    float64 `json:"subtotal" binding:"gte=0"`
}

// SaleCreateRequest carries the full checkout payload. The total is supplied
// by the register client and stored as-is; the server does not recompute it
// from the line items.
type SaleCreateRequest struct {
	Products      []SaleItemRequest `json:"products" binding:"required,min=1,dive"`
	Total         float64           `json:"total" binding:"gte=0"`
	CustomerType  string            `json:"customer_type"`
	PaymentMethod string            `json:"payment_method"`
	AmountPaid    float64           `json:"amount_paid" binding:"gte=0"`
	ChangeAmount  float64           `json:"change_amount" binding:"gte=0"`
}

// SaleHandler owns checkout and sale history.
type SaleHandler struct {
	sales    *database.SaleStore
	products *database.ProductStore
}

func NewSaleHandler(sales *database.SaleStore, products *database.ProductStore) *SaleHandler {
	return &SaleHandler{sales: sales, products: products}
}

// Create records a checkout. The cashier identity and name are stamped from
// the authenticated caller, never taken from the payload.
//
// The sale insert and the times_sold increments are separate writes. A crash
// between them leaves the ledger correct but the popularity counters behind;
// that window is accepted.
func (h *SaleHandler) Create(c *gin.Context) {
	var input SaleCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	caller := middleware.CurrentUser(c)

	customerType := input.CustomerType
	if customerType == "" {
		customerType = "customer"
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	items := make([]models.SaleItem, 0, len(input.Products))
	for _, item := range input.Products {
		items = append(items, models.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	sale := &models.Sale{
		ID:            uuid.NewString(),
		Items:         items,
		Total:         input.Total,
		CustomerType:  customerType,
		PaymentMethod: paymentMethod,
		AmountPaid:    input.AmountPaid,
		ChangeAmount:  input.ChangeAmount,
		CashierID:     caller.ID,
		CashierName:   caller.Name,
		Date:          time.Now().UTC(),
	}
	if err := h.sales.Create(sale); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale record"})
		return
	}

	for _, item := range input.Products {
		if err := h.products.IncrementTimesSold(item.ProductID, item.Quantity); err != nil {
			log.Printf("Failed to increment times_sold for product %s: %v", item.ProductID, err)
		}
	}

	c.JSON(http.StatusCreated, sale)
}

// List returns the sale history, newest first, optionally bounded by
// ?start_date= and ?end_date= (inclusive, each side independent).
func (h *SaleHandler) List(c *gin.Context) {
	start, end, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
		return
	}

	sales, err := h.sales.ListRange(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// parseDateRange accepts RFC3339 timestamps or bare YYYY-MM-DD dates. A bare
// end date extends to the last instant of that day so the bound stays
// inclusive.
func parseDateRange(startRaw, endRaw string) (start, end *time.Time, err error) {
	if startRaw != "" {
		t, err := parseBound(startRaw, false)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if endRaw != "" {
		t, err := parseBound(endRaw, true)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
}

func parseBound(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
