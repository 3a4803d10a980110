package catalog

// Product represents an immutable catalog entry. Products are loaded once at
// startup (seed data or the `product` table) and never mutated afterwards.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating"`
	Popularity  int      `json:"popularity"`
	Badge       string   `json:"badge,omitempty"`
	SkinType    string   `json:"skinType,omitempty"`
	HairType    string   `json:"hairType,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Catalog segments. Every product belongs to exactly one segment, encoded in
// its id prefix ("w001", "m001").
const (
	SegmentWomen = "women"
	SegmentMen   = "men"
)

// AllowedCategories contains the supported product categories used across the app.
var AllowedCategories = []string{
	"Lips",
	"Eyes",
	"Face",
	"Skincare",
	"Self-Care",
	"Perfumes",
	"Hair-Care",
	"Makeup",
	"Beard-Care",
	"Grooming",
}
