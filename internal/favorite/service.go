package favorite

import (
	"time"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

// ProductGetter validates that a favorited product actually exists.
type ProductGetter interface {
	GetByID(id string) (catalog.Product, error)
}

type Service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Add(email, productID string) ([]string, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}
	return s.repo.Add(email, productID, now())
}

func (s *Service) Remove(email, productID string) ([]string, error) {
	return s.repo.Remove(email, productID, now())
}

func (s *Service) List(email string) ([]string, error) {
	return s.repo.List(email)
}

// ListProducts resolves the favorite set against the catalog. Ids whose
// product has vanished from the catalog are skipped, not an error.
func (s *Service) ListProducts(email string) ([]catalog.Product, error) {
	ids, err := s.repo.List(email)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.products.GetByID(id)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Clear empties the favorite set one id at a time so both storage
// backends stay append/remove only.
func (s *Service) Clear(email string) error {
	ids, err := s.repo.List(email)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := s.repo.Remove(email, id, now()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Has(email, productID string) (bool, error) {
	ids, err := s.repo.List(email)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
