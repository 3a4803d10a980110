package order

import "sync"

type Repository interface {
	Create(o Order) (Order, error)
	ListByEmail(email string) ([]Order, error)
	GetByID(orderID string) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios. Orders are kept
// newest first per user.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string][]Order
	byID   map[string]Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string][]Order),
		byID:   make(map[string]Order),
	}
}

func (r *InMemoryRepository) Create(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.Email] = append([]Order{o}, r.orders[o.Email]...)
	r.byID[o.OrderID] = o
	return o, nil
}

func (r *InMemoryRepository) ListByEmail(email string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders[email]))
	copy(out, r.orders[email])
	return out, nil
}

func (r *InMemoryRepository) GetByID(orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}
