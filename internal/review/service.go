package review

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

// ProductGetter is the slice of the catalog the review flow needs to
// confirm a product exists before accepting a review for it.
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

// Submit stores the review, replacing any earlier review the same
// customer left for the product.
func (s *Service) Submit(email, author, productID string, rating float64, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if _, err := s.products.GetByID(productID); err != nil {
		return Review{}, err
	}

	return s.repo.Upsert(Review{
		ProductID: productID,
		Email:     email,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) ListByProduct(productID string) ([]Review, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(productID)
}

func (s *Service) Delete(email, productID string) error {
	return s.repo.Delete(productID, email)
}

// Average is the mean rating over a product's reviews, rounded to one
// place. Zero when the product has no reviews.
func (s *Service) Average(productID string) (float64, int, error) {
	reviews, err := s.repo.ListByProduct(productID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}

	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromFloat(r.Rating))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1).Float64()
	return avg, len(reviews), nil
}
