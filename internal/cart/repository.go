package cart

import "sync"

// Repository persists one cart per user, keyed by email. The caller owns the
// load-mutate-save cycle; repositories only store snapshots.
type Repository interface {
	GetCart(email string) (Cart, error)
	SaveCart(email string, c Cart, updatedAt string) error
}

// InMemoryRepository is used for tests and for running without a database.
// A user without a stored cart simply has an empty one; account existence is
// enforced by the auth layer, not here.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]Cart)}
}

func (r *InMemoryRepository) GetCart(email string) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.carts[email]
	out := Cart{Lines: make([]Line, len(c.Lines))}
	copy(out.Lines, c.Lines)
	return out, nil
}

func (r *InMemoryRepository) SaveCart(email string, c Cart, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := Cart{Lines: make([]Line, len(c.Lines))}
	copy(stored.Lines, c.Lines)
	r.carts[email] = stored
	return nil
}
