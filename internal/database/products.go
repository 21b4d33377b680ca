package database

import (
	"errors"
	"strings"

	"go-pos-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation targets a missing record.
var ErrNotFound = errors.New("record not found")

// ProductStore wraps the products collection.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := s.db.Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List filters by exact category and/or case-insensitive name substring.
// Empty arguments mean "no filter".
func (s *ProductStore) List(category, search string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Top returns the most-sold products first.
func (s *ProductStore) Top(limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("times_sold desc").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *ProductStore) CreateBatch(products []models.Product) error {
	return s.db.Create(&products).Error
}

// UpdateFields applies a partial update: only the columns present in the map
// change. Returns ErrNotFound if the id does not exist.
func (s *ProductStore) UpdateFields(id string, fields map[string]interface{}) (*models.Product, error) {
	product, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.db.Model(product).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByID(id)
}

// IncrementTimesSold bumps the popularity counter by qty. Counter updates are
// issued per sale line item and are not transactional with the sale insert.
func (s *ProductStore) IncrementTimesSold(id string, qty int) error {
	return s.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("times_sold", gorm.Expr("times_sold + ?", qty)).Error
}

func (s *ProductStore) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}
