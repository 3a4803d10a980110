package order

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/werbeauty/beauty-shop-backend/internal/cart"
	"github.com/werbeauty/beauty-shop-backend/internal/config"
)

type stubCarts struct {
	carts   map[string]cart.Cart
	cleared []string
}

func (s *stubCarts) GetCart(email string) (cart.Cart, error) {
	return s.carts[email], nil
}

func (s *stubCarts) Clear(email string) error {
	s.cleared = append(s.cleared, email)
	s.carts[email] = cart.Cart{}
	return nil
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func validCard() Card {
	year := time.Now().UTC().Year() + 1
	return Card{Number: "4242 4242 4242 4242", ExpiryMonth: 12, ExpiryYear: year, CVV: "123"}
}

func checkoutFixture(lines ...cart.Line) (*Service, *stubCarts) {
	carts := &stubCarts{carts: map[string]cart.Cart{
		"jane@example.com": {Lines: lines},
	}}
	svc := NewService(NewInMemoryRepository(), carts, config.Config{
		PromoCodes:      config.DefaultPromoCodes(),
		ShippingOptions: config.DefaultShippingOptions(),
	})
	return svc, carts
}

func TestCheckoutComputesTotalsAndClearsCart(t *testing.T) {
	svc, carts := checkoutFixture(
		cart.Line{ProductID: "w001", Name: "Serum", Price: price("42.00"), Quantity: 2},
		cart.Line{ProductID: "w002", Name: "Cream", Price: price("128.00"), Quantity: 1},
	)

	o, err := svc.Checkout("jane@example.com", CheckoutRequest{
		CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
		Card:         validCard(),
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if got := o.Subtotal.StringFixed(2); got != "212.00" {
		t.Errorf("subtotal = %s, want 212.00", got)
	}
	if got := o.Discount.StringFixed(2); got != "21.20" {
		t.Errorf("discount = %s, want 21.20", got)
	}
	if !o.Shipping.IsZero() {
		t.Errorf("shipping = %s, want 0 above the free-shipping threshold", o.Shipping)
	}
	if got := o.Tax.StringFixed(3); got != "15.264" {
		t.Errorf("tax = %s, want 15.264", got)
	}
	if got := o.Total.StringFixed(3); got != "206.064" {
		t.Errorf("total = %s, want 206.064", got)
	}
	if o.Status != StatusProcessing {
		t.Errorf("status = %q, want %q", o.Status, StatusProcessing)
	}
	if o.ShippingMethod != "standard" {
		t.Errorf("shipping method = %q, want standard default", o.ShippingMethod)
	}

	if len(carts.cleared) != 1 || carts.cleared[0] != "jane@example.com" {
		t.Errorf("cart not cleared after checkout: %v", carts.cleared)
	}

	stored, err := svc.GetByID("jane@example.com", o.OrderID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(stored.Items) != 2 {
		t.Errorf("stored items = %d, want 2", len(stored.Items))
	}
}

func TestCheckoutChargesSelectedShippingBelowThreshold(t *testing.T) {
	svc, _ := checkoutFixture(cart.Line{ProductID: "w001", Price: price("42.00"), Quantity: 1})

	o, err := svc.Checkout("jane@example.com", CheckoutRequest{
		CheckoutData:   CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
		Card:           validCard(),
		ShippingMethod: "express",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if got := o.Shipping.StringFixed(2); got != "12.99" {
		t.Errorf("shipping = %s, want 12.99 for express", got)
	}
}

func TestCheckoutAppliesPromoCodes(t *testing.T) {
	t.Run("percentage off", func(t *testing.T) {
		svc, _ := checkoutFixture(cart.Line{ProductID: "w002", Price: price("100.00"), Quantity: 2})

		o, err := svc.Checkout("jane@example.com", CheckoutRequest{
			CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
			Card:         validCard(),
			PromoCode:    "newuser15",
		})
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		// 10% threshold discount first, then 15% of the remainder.
		if got := o.Discount.StringFixed(2); got != "47.00" {
			t.Errorf("discount = %s, want 47.00", got)
		}
		if o.PromoCode != "NEWUSER15" {
			t.Errorf("promo code = %q, want normalized NEWUSER15", o.PromoCode)
		}
	})

	t.Run("free shipping", func(t *testing.T) {
		svc, _ := checkoutFixture(cart.Line{ProductID: "w001", Price: price("42.00"), Quantity: 1})

		o, err := svc.Checkout("jane@example.com", CheckoutRequest{
			CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
			Card:         validCard(),
			PromoCode:    "FREESHIP",
		})
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		if !o.Shipping.IsZero() {
			t.Errorf("shipping = %s, want 0 with FREESHIP", o.Shipping)
		}
	})

	t.Run("unknown code rejected", func(t *testing.T) {
		svc, _ := checkoutFixture(cart.Line{ProductID: "w001", Price: price("42.00"), Quantity: 1})

		_, err := svc.Checkout("jane@example.com", CheckoutRequest{
			CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
			Card:         validCard(),
			PromoCode:    "NOPE50",
		})
		if !errors.Is(err, ErrUnknownPromo) {
			t.Fatalf("err = %v, want ErrUnknownPromo", err)
		}
	})
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _ := checkoutFixture()

	_, err := svc.Checkout("jane@example.com", CheckoutRequest{
		CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
		Card:         validCard(),
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutRejectsUnknownShipping(t *testing.T) {
	svc, _ := checkoutFixture(cart.Line{ProductID: "w001", Price: price("42.00"), Quantity: 1})

	_, err := svc.Checkout("jane@example.com", CheckoutRequest{
		CheckoutData:   CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
		Card:           validCard(),
		ShippingMethod: "teleport",
	})
	if !errors.Is(err, ErrUnknownShipping) {
		t.Fatalf("err = %v, want ErrUnknownShipping", err)
	}
}

func TestCheckoutRejectsInvalidCard(t *testing.T) {
	svc, carts := checkoutFixture(cart.Line{ProductID: "w001", Price: price("42.00"), Quantity: 1})

	card := validCard()
	card.Number = "4242 4242 4242 4241"
	_, err := svc.Checkout("jane@example.com", CheckoutRequest{
		CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
		Card:         card,
	})
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("err = %v, want ErrInvalidCard", err)
	}
	if len(carts.cleared) != 0 {
		t.Error("cart cleared despite failed checkout")
	}
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	svc, _ := checkoutFixture(cart.Line{ProductID: "w001", Price: price("42.00"), Quantity: 1})

	o, err := svc.Checkout("jane@example.com", CheckoutRequest{
		CheckoutData: CheckoutData{FullName: "Jane Doe", Address: "1 Rose St"},
		Card:         validCard(),
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if _, err := svc.GetByID("mallory@example.com", o.OrderID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for another user's order", err)
	}
}

func TestListByEmailNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	first := Order{OrderID: "WER-1", Email: "jane@example.com"}
	second := Order{OrderID: "WER-2", Email: "jane@example.com"}
	if _, err := repo.Create(first); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(second); err != nil {
		t.Fatal(err)
	}

	orders, err := repo.ListByEmail("jane@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 || orders[0].OrderID != "WER-2" {
		t.Errorf("orders = %v, want newest first", orders)
	}
}
