package handlers

import (
	"time"

	"go-pos-backend/internal/auth"
	"go-pos-backend/internal/database"
	"go-pos-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires stores, handlers and middleware into the gin engine.
// Everything is constructed here from the injected db and issuer; no
// package-level state.
func NewRouter(db *gorm.DB, issuer *auth.TokenIssuer, corsOrigins []string) *gin.Engine {
	users := database.NewUserStore(db)
	products := database.NewProductStore(db)
	sales := database.NewSaleStore(db)

	authHandler := NewAuthHandler(users, issuer)
	productHandler := NewProductHandler(products)
	saleHandler := NewSaleHandler(sales, products)
	reportHandler := NewReportHandler(sales, products)
	systemHandler := NewSystemHandler(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", systemHandler.Health)
	r.POST("/seed", systemHandler.Seed)

	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- PROTECTED ROUTES ---
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(users, issuer))
	{
		// STAFF & ADMIN
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/products", productHandler.List)
		protected.GET("/products/top", productHandler.Top)
		protected.POST("/sales", saleHandler.Create)
		protected.GET("/sales", saleHandler.List)
		protected.GET("/reports/summary", reportHandler.Summary)

		// ADMIN ONLY
		admin := protected.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/products", productHandler.Create)
			admin.PUT("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)
			admin.GET("/users", authHandler.ListUsers)
		}
	}

	return r
}
