package models

import (
	"time"
)

// User - a staff member (admin or cashier)
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:120" json:"email"`
	Name         string    `json:"name"`
	Role         string    `gorm:"size:20;default:cashier" json:"role"` // 'admin' or 'cashier'
	PasswordHash string    `json:"-"`                                   // Never return this in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Product - The Catalog
type Product struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Cost          float64   `json:"cost"`
	SalePrice     float64   `json:"sale_price"`
	EmployeePrice float64   `json:"employee_price"`
	ImageURL      string    `json:"image_url"`
	TimesSold     int       `json:"times_sold"` // Only ever incremented by completed sales
	CreatedAt     time.Time `json:"created_at"`
}

// Sale - The Transaction Header. Immutable once created.
type Sale struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Items         []SaleItem `gorm:"foreignKey:SaleID" json:"products"`
	Total         float64    `json:"total"`
	CustomerType  string     `gorm:"size:20;default:customer" json:"customer_type"` // 'customer' or 'employee'
	PaymentMethod string     `gorm:"size:20;default:cash" json:"payment_method"`
	AmountPaid    float64    `json:"amount_paid"`
	ChangeAmount  float64    `json:"change_amount"`
	CashierID     string     `gorm:"size:36" json:"cashier_id"`
	CashierName   string     `json:"cashier_name"` // Snapshot, survives later renames
	Date          time.Time  `json:"date"`
}

// SaleItem - one product line inside a Sale, snapshotted at sale time
type SaleItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	SaleID      string  `gorm:"size:36;index" json:"-"`
	ProductID   string  `gorm:"size:36" json:"product_id"`
	ProductName string  `json:"product_name"` // Name at sale time, independent of later renames
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"` // Price at sale time
	Subtotal    float64 `json:"subtotal"`
}
