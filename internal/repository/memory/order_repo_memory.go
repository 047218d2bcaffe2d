package memory

import (
	"sync"

	"order-intake/internal/domain"
	"order-intake/internal/repository"
)

const firstOrderID = 1000

type orderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders []domain.Order
}

// NewOrderRepository returns the default volatile store. All orders live for
// the lifetime of the process.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepo{nextID: firstOrderID}
}

// Save allocates the next ID and appends under a single lock so IDs stay
// unique and gap-free with concurrent writers.
func (r *orderRepo) Save(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.OrderID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *order)
	return nil
}

// FindAll returns all orders in insertion order.
func (r *orderRepo) FindAll() ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *orderRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}
