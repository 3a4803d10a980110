package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/werbeauty/beauty-shop-backend/internal/cart"
	"github.com/werbeauty/beauty-shop-backend/internal/config"
)

// CartService is the slice of the cart the checkout flow needs.
type CartService interface {
	GetCart(email string) (cart.Cart, error)
	Clear(email string) error
}

// CheckoutRequest is everything a checkout submits beyond the cart itself.
type CheckoutRequest struct {
	CheckoutData   CheckoutData
	Card           Card
	PromoCode      string
	ShippingMethod string
}

type Service struct {
	repo     Repository
	carts    CartService
	promos   map[string]config.PromoCode
	shipping map[string]config.ShippingOption
}

func NewService(repo Repository, carts CartService, cfg config.Config) *Service {
	return &Service{
		repo:     repo,
		carts:    carts,
		promos:   cfg.PromoCodes,
		shipping: cfg.ShippingOptions,
	}
}

// Checkout turns the user's current cart into an order. The promo code and
// shipping method are validated against the configured tables, the card is
// checked but never persisted, and the cart is cleared on success.
func (s *Service) Checkout(email string, req CheckoutRequest) (Order, error) {
	c, err := s.carts.GetCart(email)
	if err != nil {
		return Order{}, err
	}
	if len(c.Lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	now := time.Now().UTC()
	if err := req.Card.Validate(now); err != nil {
		return Order{}, err
	}

	opts := cart.TotalsOptions{}
	promoCode := strings.ToUpper(strings.TrimSpace(req.PromoCode))
	if promoCode != "" {
		promo, ok := s.promos[promoCode]
		if !ok {
			return Order{}, ErrUnknownPromo
		}
		if promo.FreeShipping {
			opts.FreeShipping = true
		}
		if promo.Discount > 0 {
			opts.PromoRate = decimal.NewFromFloat(promo.Discount)
		}
	}

	method := req.ShippingMethod
	if method == "" {
		method = "standard"
	}
	option, ok := s.shipping[method]
	if !ok {
		return Order{}, ErrUnknownShipping
	}
	fee := decimal.NewFromFloat(option.Price)
	opts.ShippingFee = &fee

	totals := c.ComputeTotalsWith(opts)

	o := Order{
		OrderID:        NewOrderID(now),
		Email:          email,
		Items:          c.Lines,
		Subtotal:       totals.Subtotal,
		Discount:       totals.Discount,
		Shipping:       totals.Shipping,
		Tax:            totals.Tax,
		Total:          totals.Total,
		PromoCode:      promoCode,
		ShippingMethod: method,
		CheckoutData:   req.CheckoutData,
		Status:         StatusProcessing,
		CreatedAt:      now.Format(time.RFC3339),
	}

	o, err = s.repo.Create(o)
	if err != nil {
		return Order{}, err
	}
	if err := s.carts.Clear(email); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) ListByEmail(email string) ([]Order, error) {
	return s.repo.ListByEmail(email)
}

// GetByID returns the order only when it belongs to the requesting user.
func (s *Service) GetByID(email, orderID string) (Order, error) {
	o, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if o.Email != email {
		return Order{}, ErrNotFound
	}
	return o, nil
}
