package cart

import "github.com/shopspring/decimal"

// Pricing rules. Accumulation stays in decimal all the way through;
// rounding to two places happens only when a Totals is displayed.
var (
	discountThreshold     = decimal.NewFromInt(200)
	discountRate          = decimal.RequireFromString("0.10")
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.RequireFromString("10.00")
	taxRate               = decimal.RequireFromString("0.08")
)

// Totals is the derived price breakdown of a cart. It is computed fresh on
// every query and never stored.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// TotalsOptions are caller-supplied modifiers: a validated promo discount
// and the selected shipping method. The zero value applies the plain rules.
type TotalsOptions struct {
	// PromoRate is an extra discount rate applied to the already
	// discounted subtotal (0.15 for 15% off).
	PromoRate decimal.Decimal
	// FreeShipping forces shipping to zero regardless of subtotal.
	FreeShipping bool
	// ShippingFee substitutes the flat fee charged below the free-shipping
	// threshold. Nil keeps the default rate.
	ShippingFee *decimal.Decimal
}

// ComputeTotals applies the fixed rule set: 10% discount from a 200.00
// subtotal, free shipping from 100.00 (10.00 flat below), 8% tax on the
// discounted subtotal. An empty cart yields all-zero totals; no baseline
// shipping fee is charged before anything is in the cart.
func (c *Cart) ComputeTotals() Totals {
	return c.ComputeTotalsWith(TotalsOptions{})
}

func (c *Cart) ComputeTotalsWith(opts TotalsOptions) Totals {
	t := Totals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
	if len(c.Lines) == 0 {
		return t
	}

	for _, l := range c.Lines {
		t.Subtotal = t.Subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		t.ItemCount += l.Quantity
	}

	if t.Subtotal.GreaterThanOrEqual(discountThreshold) {
		t.Discount = t.Subtotal.Mul(discountRate)
	}
	if opts.PromoRate.IsPositive() {
		t.Discount = t.Discount.Add(t.Subtotal.Sub(t.Discount).Mul(opts.PromoRate))
	}

	switch {
	case opts.FreeShipping:
	case t.Subtotal.GreaterThanOrEqual(freeShippingThreshold):
	case opts.ShippingFee != nil:
		t.Shipping = *opts.ShippingFee
	default:
		t.Shipping = flatShippingFee
	}

	t.Tax = t.Subtotal.Sub(t.Discount).Mul(taxRate)
	t.Total = t.Subtotal.Sub(t.Discount).Add(t.Shipping).Add(t.Tax)
	return t
}

// TotalsView is the presentation form of Totals, rounded to two places.
type TotalsView struct {
	Subtotal  string `json:"subtotal"`
	Discount  string `json:"discount"`
	Shipping  string `json:"shipping"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
	ItemCount int    `json:"itemCount"`
}

func (t Totals) Display() TotalsView {
	return TotalsView{
		Subtotal:  t.Subtotal.StringFixed(2),
		Discount:  t.Discount.StringFixed(2),
		Shipping:  t.Shipping.StringFixed(2),
		Tax:       t.Tax.StringFixed(2),
		Total:     t.Total.StringFixed(2),
		ItemCount: t.ItemCount,
	}
}
