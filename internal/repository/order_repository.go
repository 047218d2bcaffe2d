package repository

import (
	"order-intake/internal/domain"
)

// OrderRepository stores orders. Save assigns the order its sequential ID;
// IDs start at 1000, never repeat, and only advance on a successful save.
type OrderRepository interface {
	Save(order *domain.Order) error
	FindAll() ([]domain.Order, error)
	Count() (int64, error)
}
