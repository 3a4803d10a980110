package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/werbeauty/beauty-shop-backend/internal/cart"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownPromo    = errors.New("unknown promo code")
	ErrUnknownShipping = errors.New("unknown shipping method")
)

// StatusProcessing is the initial status of every order.
const StatusProcessing = "Processing"

// CheckoutData carries the billing and shipping details captured at
// checkout. Card data is validated but never stored.
type CheckoutData struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// Order is the durable snapshot of a completed checkout: the cart lines
// as purchased plus the full price breakdown.
type Order struct {
	OrderID        string          `json:"orderId"`
	Email          string          `json:"email,omitempty"`
	Items          []cart.Line     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Shipping       decimal.Decimal `json:"shipping"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	PromoCode      string          `json:"promoCode,omitempty"`
	ShippingMethod string          `json:"shippingMethod"`
	CheckoutData   CheckoutData    `json:"checkoutData"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"createdAt"`
}

// NewOrderID builds an order id of the form WER-20260828153000-4F6A2C.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "WER-" + now.Format("20060102150405") + "-" + suffix
}
