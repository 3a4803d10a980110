package review

import "sync"

type Repository interface {
	Upsert(r Review) (Review, error)
	ListByProduct(productID string) ([]Review, error)
	Delete(productID, email string) error
}

// InMemoryRepository keeps reviews per product, listed newest first, with
// resubmissions replacing in place.
type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews map[string][]Review
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{reviews: make(map[string][]Review)}
}

func (r *InMemoryRepository) Upsert(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.reviews[rev.ProductID]
	for i, existing := range list {
		if existing.Email == rev.Email {
			list[i] = rev
			return rev, nil
		}
	}
	r.reviews[rev.ProductID] = append(list, rev)
	return rev, nil
}

func (r *InMemoryRepository) ListByProduct(productID string) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.reviews[productID]
	out := make([]Review, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

func (r *InMemoryRepository) Delete(productID, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.reviews[productID]
	for i, existing := range list {
		if existing.Email == email {
			r.reviews[productID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
