package cart

import (
	"time"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

// ProductGetter is the slice of the catalog the cart needs for snapshots.
type ProductGetter interface {
	GetByID(id string) (catalog.Product, error)
}

// Service orchestrates cart operations: load the user's cart, apply one
// mutation, save it back.
type Service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) GetCart(email string) (Cart, error) {
	return s.repo.GetCart(email)
}

func (s *Service) AddItem(email, productID string, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, ErrInvalidQuantity
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, err
	}

	c, err := s.repo.GetCart(email)
	if err != nil {
		return Cart{}, err
	}
	if err := c.AddItem(product, qty); err != nil {
		return Cart{}, err
	}
	return c, s.save(email, c)
}

func (s *Service) SetQuantity(email, productID string, qty int) (Cart, error) {
	c, err := s.repo.GetCart(email)
	if err != nil {
		return Cart{}, err
	}
	c.SetQuantity(productID, qty)
	return c, s.save(email, c)
}

func (s *Service) RemoveItem(email, productID string) (Cart, error) {
	c, err := s.repo.GetCart(email)
	if err != nil {
		return Cart{}, err
	}
	c.RemoveItem(productID)
	return c, s.save(email, c)
}

func (s *Service) Clear(email string) error {
	c, err := s.repo.GetCart(email)
	if err != nil {
		return err
	}
	c.Clear()
	return s.save(email, c)
}

func (s *Service) Totals(email string) (Totals, error) {
	c, err := s.repo.GetCart(email)
	if err != nil {
		return Totals{}, err
	}
	return c.ComputeTotals(), nil
}

func (s *Service) save(email string, c Cart) error {
	return s.repo.SaveCart(email, c, time.Now().UTC().Format(time.RFC3339))
}
