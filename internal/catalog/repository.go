package catalog

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound       = errors.New("product not found")
	ErrUnknownSegment = errors.New("unknown catalog segment")
)

// Repository provides read access to the immutable product catalog.
type Repository interface {
	// List returns the ordered products of one segment.
	List(segment string) ([]Product, error)
	// ListAll returns the whole catalog, women before men.
	ListAll() []Product
	GetByID(id string) (Product, error)
}

// InMemoryRepository serves the catalog from a seeded slice. It is used for
// tests and for running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string][]Product
}

func NewInMemoryRepository(women, men []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make(map[string][]Product, 2)}
	r.storage[SegmentWomen] = append([]Product(nil), women...)
	r.storage[SegmentMen] = append([]Product(nil), men...)
	return r
}

func (r *InMemoryRepository) List(segment string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products, ok := r.storage[strings.ToLower(segment)]
	if !ok {
		return nil, ErrUnknownSegment
	}
	out := make([]Product, len(products))
	copy(out, products)
	return out, nil
}

func (r *InMemoryRepository) ListAll() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage[SegmentWomen])+len(r.storage[SegmentMen]))
	out = append(out, r.storage[SegmentWomen]...)
	out = append(out, r.storage[SegmentMen]...)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, products := range [][]Product{r.storage[SegmentWomen], r.storage[SegmentMen]} {
		for _, p := range products {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return Product{}, ErrNotFound
}
