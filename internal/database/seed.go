package database

import (
	"log"
	"time"

	"go-pos-backend/internal/auth"
	"go-pos-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedResult reports what Seed did.
type SeedResult struct {
	AlreadySeeded bool
	ProductCount  int
	UsersCreated  int
}

type seedProduct struct {
	name          string
	cost          float64
	salePrice     float64
	employeePrice float64
	imageURL      string
}

var seedCatalog = map[string][]seedProduct{
	"cold_drinks": {
		{"Iced Coffee", 1.50, 3.50, 2.50, "https://images.unsplash.com/photo-1686575669781-74e03080541b?w=400"},
		{"Iced Latte", 1.80, 4.00, 3.00, "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=400"},
		{"Cold Brew", 1.60, 3.75, 2.75, "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400"},
		{"Iced Mocha", 2.00, 4.50, 3.25, "https://images.unsplash.com/photo-1542843137-8791a6904d14?w=400"},
		{"Strawberry Smoothie", 2.50, 5.50, 4.00, "https://images.unsplash.com/photo-1622597468620-656aa1f981ea?w=400"},
		{"Mango Smoothie", 2.50, 5.50, 4.00, "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400"},
		{"Lemonade", 1.00, 2.50, 1.75, "https://images.unsplash.com/photo-1523677011781-c91d1bbe4d1e?w=400"},
		{"Orange Juice", 1.20, 3.00, 2.00, "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400"},
		{"Iced Tea", 0.80, 2.25, 1.50, "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400"},
		{"Frappuccino", 2.40, 5.25, 3.75, "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400"},
		{"Chocolate Shake", 2.30, 5.00, 3.50, "https://images.unsplash.com/photo-1542574271-7f3b92e6c821?w=400"},
		{"Bubble Tea", 2.00, 4.50, 3.25, "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=400"},
	},
	"hot_drinks": {
		{"Hot Coffee", 1.00, 2.50, 1.75, "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400"},
		{"Espresso", 0.80, 2.00, 1.50, "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04?w=400"},
		{"Cappuccino", 1.40, 3.50, 2.50, "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400"},
		{"Latte", 1.50, 3.75, 2.75, "https://images.unsplash.com/photo-1691723247105-57e32577dc72?w=400"},
		{"Americano", 1.20, 3.00, 2.00, "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400"},
		{"Hot Chocolate", 1.50, 3.50, 2.50, "https://images.unsplash.com/photo-1542990253-0d0f5be5f0ed?w=400"},
		{"Chai Latte", 1.60, 3.75, 2.75, "https://images.unsplash.com/photo-1578374173704-966697ae5e8c?w=400"},
		{"Matcha Latte", 2.00, 4.50, 3.25, "https://images.unsplash.com/photo-1536013080062-84d3e4fcf21f?w=400"},
		{"Green Tea", 0.60, 2.00, 1.50, "https://images.unsplash.com/photo-1564890369478-c89ca6d9cde9?w=400"},
	},
	"snacks": {
		{"Croissant", 1.20, 3.00, 2.00, "https://images.unsplash.com/photo-1709798289100-7b46217e0325?w=400"},
		{"Blueberry Muffin", 1.00, 2.75, 2.00, "https://images.unsplash.com/photo-1607958996333-41aef7caefaa?w=400"},
		{"Cinnamon Roll", 1.30, 3.50, 2.50, "https://images.unsplash.com/photo-1509365465985-25d11c17e812?w=400"},
		{"Bagel", 0.80, 2.50, 1.75, "https://images.unsplash.com/photo-1549931319-a545dcf3bc3c?w=400"},
		{"Sandwich", 2.50, 6.00, 4.50, "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400"},
		{"Cookies", 0.60, 1.75, 1.25, "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400"},
		{"Brownie", 1.20, 3.00, 2.00, "https://images.unsplash.com/photo-1607920591413-4ec007e70023?w=400"},
		{"Cheesecake", 2.00, 5.00, 3.50, "https://images.unsplash.com/photo-1524351199678-941a58a3df50?w=400"},
		{"Donut", 0.80, 2.00, 1.50, "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400"},
	},
	"extras": {
		{"Leche Extra", 0.30, 0.75, 0.50, "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
		{"Shot Espresso", 0.50, 1.00, 0.75, "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400"},
		{"Crema Batida", 0.40, 1.00, 0.75, "https://images.unsplash.com/photo-1625772452859-1c03d5bf1137?w=400"},
		{"Jarabe Vainilla", 0.30, 0.75, 0.50, "https://images.unsplash.com/photo-1481391032119-d89fee407e44?w=400"},
		{"Leche de Almendra", 0.50, 1.25, 1.00, "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
		{"Topping Oreo", 0.50, 1.25, 1.00, "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400"},
	},
}

// Seed populates the demo catalog and the two demo users, but only when the
// catalog is empty. Calling it again is a no-op.
func Seed(db *gorm.DB) (*SeedResult, error) {
	products := NewProductStore(db)
	users := NewUserStore(db)

	existing, err := products.Count()
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &SeedResult{AlreadySeeded: true}, nil
	}

	now := time.Now().UTC()
	var toInsert []models.Product
	for category, items := range seedCatalog {
		for _, item := range items {
			toInsert = append(toInsert, models.Product{
				ID:            uuid.NewString(),
				Name:          item.name,
				Category:      category,
				Cost:          item.cost,
				SalePrice:     item.salePrice,
				EmployeePrice: item.employeePrice,
				ImageURL:      item.imageURL,
				TimesSold:     0,
				CreatedAt:     now,
			})
		}
	}
	if err := products.CreateBatch(toInsert); err != nil {
		return nil, err
	}

	demoUsers := []struct {
		email, name, role, password string
	}{
		{"admin@pos.com", "Admin User", "admin", "admin123"},
		{"cashier@pos.com", "Cashier User", "cashier", "cashier123"},
	}
	for _, u := range demoUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return nil, err
		}
		user := &models.User{
			ID:           uuid.NewString(),
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: hash,
			CreatedAt:    now,
		}
		if err := users.Create(user); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Seeded %d products and %d demo users", len(toInsert), len(demoUsers))
	return &SeedResult{ProductCount: len(toInsert), UsersCreated: len(demoUsers)}, nil
}
