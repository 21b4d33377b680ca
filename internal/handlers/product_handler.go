package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-pos-backend/internal/database"
	"go-pos-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductCreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Cost          float64 `json:"cost" binding:"gte=0"`
	SalePrice     float64 `json:"sale_price" binding:"gte=0"`
	EmployeePrice float64 `json:"employee_price" binding:"gte=0"`
	ImageURL      string  `json:"image_url"`
}

// ProductUpdateRequest uses pointer fields: only the keys the client actually
// sent get written, everything else keeps its stored value.
type ProductUpdateRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Cost          *float64 `json:"cost" binding:"omitempty,gte=0"`
	SalePrice     *float64 `json:"sale_price" binding:"omitempty,gte=0"`
	EmployeePrice *float64 `json:"employee_price" binding:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url"`
}

// ProductHandler owns the catalog endpoints.
type ProductHandler struct {
	products *database.ProductStore
}

func NewProductHandler(products *database.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// List supports ?category= (exact) and ?search= (case-insensitive substring).
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Query("category"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// Top returns the most-sold products, default limit 9.
func (h *ProductHandler) Top(c *gin.Context) {
	limit := 9
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	products, err := h.products.Top(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input ProductCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product := &models.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Category:      input.Category,
		Cost:          input.Cost,
		SalePrice:     input.SalePrice,
		EmployeePrice: input.EmployeePrice,
		ImageURL:      input.ImageURL,
		TimesSold:     0,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.products.Create(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Update applies a partial update to a product.
func (h *ProductHandler) Update(c *gin.Context) {
	var input ProductUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Cost != nil {
		fields["cost"] = *input.Cost
	}
	if input.SalePrice != nil {
		fields["sale_price"] = *input.SalePrice
	}
	if input.EmployeePrice != nil {
		fields["employee_price"] = *input.EmployeePrice
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}

	product, err := h.products.UpdateFields(c.Param("id"), fields)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	err := h.products.Delete(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
