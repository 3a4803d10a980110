package review

import "errors"

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Review is one customer's opinion of a product. A customer holds at most
// one review per product; submitting again replaces the earlier one.
type Review struct {
	ProductID string  `json:"productId"`
	Email     string  `json:"email,omitempty"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
}
