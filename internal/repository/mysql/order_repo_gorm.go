package mysql

import (
	"log"

	"gorm.io/gorm"

	"order-intake/internal/domain"
	"order-intake/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository returns a MySQL-backed store. The orders table is
// created with AUTO_INCREMENT=1000 so assigned IDs match the in-memory
// repository's contract.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("Database save error: %v", result.Error)
		return result.Error
	}
	return nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Order("order_id ASC").Find(&out).Error; err != nil {
		log.Printf("FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
