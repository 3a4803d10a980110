package order

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCard = errors.New("invalid card details")

// Card is the payment input validated at checkout. No charge is performed;
// payment capture is an external collaborator.
type Card struct {
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

func (c Card) Validate(now time.Time) error {
	if !validCardNumber(c.Number) {
		return ErrInvalidCard
	}
	if !validExpiry(c.ExpiryMonth, c.ExpiryYear, now) {
		return ErrInvalidCard
	}
	if !validCVV(c.CVV) {
		return ErrInvalidCard
	}
	return nil
}

// validCardNumber runs the Luhn check over a 13-19 digit number, ignoring
// spaces and dashes.
func validCardNumber(number string) bool {
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")
	if len(number) < 13 || len(number) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := number[i]
		if d < '0' || d > '9' {
			return false
		}
		n := int(d - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}

func validExpiry(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}
	expiry := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return !expiry.Before(current)
}

func validCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	for i := 0; i < len(cvv); i++ {
		if cvv[i] < '0' || cvv[i] > '9' {
			return false
		}
	}
	return true
}
