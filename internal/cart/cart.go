package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNotFound        = errors.New("user not found")
)

// Line is one product-and-quantity pair in a cart. Name, price and image are
// a snapshot captured when the product was added; a later catalog price
// change does not affect lines already in the cart.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the line items of one shopping session. It is a plain value
// object: callers load it from the session store, mutate it and save it back.
// Invariant: at most one line per product id, and quantities are positive.
type Cart struct {
	Lines []Line `json:"lines"`
}

// AddItem merges qty into an existing line for the product, or appends a new
// line with a snapshot of the product's current name, price and image.
func (c *Cart) AddItem(p catalog.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += qty
			return nil
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     decimal.NewFromFloat(p.Price),
		Image:     p.Image,
		Quantity:  qty,
	})
	return nil
}

// RemoveItem deletes the line for the product if present. Removing an absent
// product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of an existing line. A quantity of
// zero or less removes the line. Setting the quantity of an absent product
// is a no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsInCart(productID string) bool {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// ProductIDs returns the ids of all lines in cart order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}
