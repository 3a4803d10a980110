package config

import "os"

// PromoCode is a validated discount: either a percentage off the order or
// free shipping.
type PromoCode struct {
	Discount     float64
	FreeShipping bool
	Description  string
}

// ShippingOption is a selectable delivery method with its flat fee.
type ShippingOption struct {
	Name  string
	Price float64
	Days  string
}

// Config holds environment-driven configuration plus the fixed promo and
// shipping tables.
type Config struct {
	Addr            string
	DatabaseURL     string
	JWTSecret       string
	AllowOrigins    string
	PromoCodes      map[string]PromoCode
	ShippingOptions map[string]ShippingOption
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("WERBEAUTY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	origins := os.Getenv("ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	return Config{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AllowOrigins:    origins,
		PromoCodes:      DefaultPromoCodes(),
		ShippingOptions: DefaultShippingOptions(),
	}
}

// DefaultPromoCodes is the table promo input is validated against. Codes
// not listed here are rejected at checkout.
func DefaultPromoCodes() map[string]PromoCode {
	return map[string]PromoCode{
		"WERBEAUTY10": {Discount: 0.10, Description: "10% off your order"},
		"LUXURY20":    {Discount: 0.20, Description: "20% off luxury items"},
		"NEWUSER15":   {Discount: 0.15, Description: "15% off for new customers"},
		"FREESHIP":    {FreeShipping: true, Description: "Free shipping"},
	}
}

func DefaultShippingOptions() map[string]ShippingOption {
	return map[string]ShippingOption{
		"standard":  {Name: "Standard Delivery", Price: 5.99, Days: "5-7 business days"},
		"express":   {Name: "Express Delivery", Price: 12.99, Days: "2-3 business days"},
		"overnight": {Name: "Overnight Delivery", Price: 24.99, Days: "Next business day"},
		"free":      {Name: "Free Shipping", Price: 0, Days: "7-10 business days"},
	}
}
