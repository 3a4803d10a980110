package favorite

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository stores each user's favorite product ids as an ordered set.
// Add and Remove are idempotent and return the updated set.
type Repository interface {
	Add(email, productID string, updatedAt string) ([]string, error)
	Remove(email, productID string, updatedAt string) ([]string, error)
	List(email string) ([]string, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	favorites map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{favorites: make(map[string][]string)}
}

func (r *InMemoryRepository) Add(email, productID string, updatedAt string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.favorites[email]
	for _, id := range ids {
		if id == productID {
			return copyIDs(ids), nil
		}
	}
	ids = append(ids, productID)
	r.favorites[email] = ids
	return copyIDs(ids), nil
}

func (r *InMemoryRepository) Remove(email, productID string, updatedAt string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.favorites[email]
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	r.favorites[email] = ids
	return copyIDs(ids), nil
}

func (r *InMemoryRepository) List(email string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyIDs(r.favorites[email]), nil
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
