package handlers

import (
	"net/http"

	"go-pos-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler owns the non-domain routes: health and demo data seeding.
type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "online"})
}

// Seed loads the demo catalog and users once. Repeat calls are no-ops.
func (h *SystemHandler) Seed(c *gin.Context) {
	result, err := database.Seed(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
		return
	}

	if result.AlreadySeeded {
		c.JSON(http.StatusOK, gin.H{"message": "Database already seeded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Database seeded successfully",
		"products_count": result.ProductCount,
		"users_created":  result.UsersCreated,
	})
}
