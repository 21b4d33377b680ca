package database

import (
	"time"

	"go-pos-backend/internal/models"

	"gorm.io/gorm"
)

// SaleStore wraps the sales ledger. Records are append-only: there is no
// update or delete path.
type SaleStore struct {
	db *gorm.DB
}

func NewSaleStore(db *gorm.DB) *SaleStore {
	return &SaleStore{db: db}
}

// Create persists the sale header and its line items in one insert.
func (s *SaleStore) Create(sale *models.Sale) error {
	return s.db.Create(sale).Error
}

// ListRange returns sales within [start, end], newest first, for history
// listings. Either bound may be nil; only the given side constrains.
func (s *SaleStore) ListRange(start, end *time.Time) ([]models.Sale, error) {
	query := s.rangeQuery(start, end).Order("date desc")

	var sales []models.Sale
	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindRange is the unordered variant used by the reporting engine.
func (s *SaleStore) FindRange(start, end *time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.rangeQuery(start, end).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *SaleStore) rangeQuery(start, end *time.Time) *gorm.DB {
	query := s.db.Model(&models.Sale{}).Preload("Items")
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}
	return query
}
