package order

import (
	"testing"
	"time"
)

var paymentNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestCardNumberValidation(t *testing.T) {
	cases := []struct {
		name   string
		number string
		want   bool
	}{
		{"visa test number", "4242424242424242", true},
		{"with spaces", "4242 4242 4242 4242", true},
		{"with dashes", "4242-4242-4242-4242", true},
		{"amex length", "378282246310005", true},
		{"failed checksum", "4242424242424241", false},
		{"too short", "424242424242", false},
		{"non digits", "4242abcd42424242", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validCardNumber(tc.number); got != tc.want {
				t.Errorf("validCardNumber(%q) = %v, want %v", tc.number, got, tc.want)
			}
		})
	}
}

func TestCardExpiryValidation(t *testing.T) {
	cases := []struct {
		name        string
		month, year int
		want        bool
	}{
		{"future", 12, 2027, true},
		{"current month", 3, 2026, true},
		{"two digit year", 12, 27, true},
		{"last month", 2, 2026, false},
		{"month out of range", 13, 2027, false},
		{"zero month", 0, 2027, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validExpiry(tc.month, tc.year, paymentNow); got != tc.want {
				t.Errorf("validExpiry(%d, %d) = %v, want %v", tc.month, tc.year, got, tc.want)
			}
		})
	}
}

func TestCardValidate(t *testing.T) {
	card := Card{Number: "4242424242424242", ExpiryMonth: 12, ExpiryYear: 2027, CVV: "123"}
	if err := card.Validate(paymentNow); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := card
	bad.CVV = "12"
	if err := bad.Validate(paymentNow); err != ErrInvalidCard {
		t.Fatalf("err = %v, want ErrInvalidCard for short cvv", err)
	}

	bad = card
	bad.CVV = "12a4"
	if err := bad.Validate(paymentNow); err != ErrInvalidCard {
		t.Fatalf("err = %v, want ErrInvalidCard for non-numeric cvv", err)
	}
}
