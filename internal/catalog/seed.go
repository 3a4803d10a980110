package catalog

// DefaultWomenProducts is the built-in women's catalog, used when no database
// is configured or the product table is empty.
var DefaultWomenProducts = []Product{
	{
		ID:          "w001",
		Name:        "Velvet Rose Lipstick",
		Price:       42.00,
		Category:    "Lips",
		Description: "Long-lasting velvet matte finish in a stunning rose shade.",
		Image:       "https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400&h=400&fit=crop",
		Rating:      4.8,
		Popularity:  98,
		Badge:       "Bestseller",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Vitamin E", "Jojoba Oil", "Shea Butter"},
	},
	{
		ID:          "w002",
		Name:        "Luminous Glow Foundation",
		Price:       68.00,
		Category:    "Face",
		Description: "Buildable coverage with a natural luminous finish.",
		Image:       "https://images.unsplash.com/photo-1631214503851-50b2c3f498b8?w=400&h=400&fit=crop",
		Rating:      4.9,
		Popularity:  95,
		Badge:       "New",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Hyaluronic Acid", "Vitamin C", "SPF 30"},
	},
	{
		ID:          "w003",
		Name:        "Midnight Orchid Perfume",
		Price:       128.00,
		Category:    "Perfumes",
		Description: "An enchanting floral fragrance with notes of orchid and vanilla.",
		Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400&h=400&fit=crop",
		Rating:      4.7,
		Popularity:  92,
		Badge:       "Luxury",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Orchid Extract", "Vanilla", "Musk"},
	},
	{
		ID:          "w004",
		Name:        "Silk Repair Hair Serum",
		Price:       56.00,
		Category:    "Hair-Care",
		Description: "Intensive repair serum for silky, frizz-free hair.",
		Image:       "https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=400&h=400&fit=crop",
		Rating:      4.6,
		Popularity:  88,
		HairType:    "All Hair Types",
		Ingredients: []string{"Argan Oil", "Keratin", "Silk Proteins"},
	},
	{
		ID:          "w005",
		Name:        "Radiance Eye Cream",
		Price:       78.00,
		Category:    "Skincare",
		Description: "Reduces dark circles and fine lines around the eyes.",
		Image:       "https://images.unsplash.com/photo-1570194065650-d99fb4b38b7e?w=400&h=400&fit=crop",
		Rating:      4.8,
		Popularity:  94,
		Badge:       "Bestseller",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Retinol", "Caffeine", "Peptides"},
	},
	{
		ID:          "w006",
		Name:        "Golden Shimmer Eyeshadow Palette",
		Price:       62.00,
		Category:    "Eyes",
		Description: "12 stunning shades from matte to shimmer for endless looks.",
		Image:       "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=400&h=400&fit=crop",
		Rating:      4.9,
		Popularity:  96,
		Badge:       "Popular",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Mica", "Vitamin E", "Jojoba Oil"},
	},
	{
		ID:          "w007",
		Name:        "Hydra Boost Moisturizer",
		Price:       54.00,
		Category:    "Skincare",
		Description: "48-hour hydration with lightweight, non-greasy formula.",
		Image:       "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?w=400&h=400&fit=crop",
		Rating:      4.7,
		Popularity:  89,
		SkinType:    "Dry",
		Ingredients: []string{"Hyaluronic Acid", "Ceramides", "Aloe Vera"},
	},
	{
		ID:          "w008",
		Name:        "Cherry Blossom Body Lotion",
		Price:       38.00,
		Category:    "Self-Care",
		Description: "Luxurious body lotion with delicate cherry blossom scent.",
		Image:       "https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?w=400&h=400&fit=crop",
		Rating:      4.5,
		Popularity:  85,
		SkinType:    "All Skin Types",
		Ingredients: []string{"Cherry Blossom Extract", "Shea Butter", "Vitamin E"},
	},
	{
		ID:          "w009",
		Name:        "Volume Boost Mascara",
		Price:       34.00,
		Category:    "Eyes",
		Description: "Dramatic volume and length that lasts all day.",
		Image:       "https://images.unsplash.com/photo-1631214540553-ff044a3ff1d4?w=400&h=400&fit=crop",
		Rating:      4.6,
		Popularity:  91,
		Badge:       "New",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Bamboo Extract", "Keratin", "Biotin"},
	},
	{
		ID:          "w010",
		Name:        "Rose Petal Face Mist",
		Price:       28.00,
		Category:    "Skincare",
		Description: "Refreshing facial mist with pure rose water.",
		Image:       "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=400&fit=crop",
		Rating:      4.4,
		Popularity:  82,
		SkinType:    "All Skin Types",
		Ingredients: []string{"Rose Water", "Glycerin", "Aloe Vera"},
	},
	{
		ID:          "w011",
		Name:        "Champagne Dreams Highlighter",
		Price:       44.00,
		Category:    "Face",
		Description: "Stunning champagne glow for a radiant finish.",
		Image:       "https://images.unsplash.com/photo-1599733589046-10c672de5c39?w=400&h=400&fit=crop",
		Rating:      4.8,
		Popularity:  93,
		Badge:       "Trending",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Mica", "Diamond Powder", "Vitamin E"},
	},
	{
		ID:          "w012",
		Name:        "Sunset Blush Palette",
		Price:       48.00,
		Category:    "Face",
		Description: "4 beautiful blush shades inspired by golden sunsets.",
		Image:       "https://images.unsplash.com/photo-1596704017254-9b121068fb31?w=400&h=400&fit=crop",
		Rating:      4.7,
		Popularity:  87,
		SkinType:    "All Skin Types",
		Ingredients: []string{"Silk Powder", "Rose Hip Oil", "Vitamin C"},
	},
}

// DefaultMenProducts is the built-in men's catalog.
var DefaultMenProducts = []Product{
	{
		ID:          "m001",
		Name:        "Gentleman's Beard Oil",
		Price:       48.00,
		Category:    "Beard-Care",
		Description: "Premium beard oil for a soft, healthy, and styled beard.",
		Image:       "https://images.unsplash.com/photo-1621607512214-68297480165e?w=400&h=400&fit=crop",
		Rating:      4.9,
		Popularity:  97,
		Badge:       "Bestseller",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Argan Oil", "Jojoba Oil", "Vitamin E"},
	},
	{
		ID:          "m002",
		Name:        "Noir Intense Cologne",
		Price:       145.00,
		Category:    "Perfumes",
		Description: "Bold and sophisticated fragrance with woody notes.",
		Image:       "https://images.unsplash.com/photo-1523293182086-7651a899d37f?w=400&h=400&fit=crop",
		Rating:      4.8,
		Popularity:  95,
		Badge:       "Luxury",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Bergamot", "Cedar", "Leather"},
	},
	{
		ID:          "m003",
		Name:        "Precision Beard Trimmer Set",
		Price:       89.00,
		Category:    "Grooming",
		Description: "Professional-grade trimmer with multiple attachments.",
		Image:       "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=400&h=400&fit=crop",
		Rating:      4.7,
		Popularity:  92,
		Badge:       "Popular",
		SkinType:    "All Skin Types",
	},
	{
		ID:          "m004",
		Name:        "Charcoal Deep Cleanse Face Wash",
		Price:       32.00,
		Category:    "Skincare",
		Description: "Deep cleansing formula with activated charcoal.",
		Image:       "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=400&h=400&fit=crop",
		Rating:      4.6,
		Popularity:  88,
		SkinType:    "Oily",
		Ingredients: []string{"Activated Charcoal", "Tea Tree Oil", "Salicylic Acid"},
	},
	{
		ID:          "m005",
		Name:        "Sculpting Hair Pomade",
		Price:       28.00,
		Category:    "Hair-Care",
		Description: "Strong hold pomade with natural matte finish.",
		Image:       "https://images.unsplash.com/photo-1585751119414-ef2636f8aede?w=400&h=400&fit=crop",
		Rating:      4.5,
		Popularity:  86,
		HairType:    "All Hair Types",
		Ingredients: []string{"Beeswax", "Coconut Oil", "Kaolin Clay"},
	},
	{
		ID:          "m006",
		Name:        "Beard Balm Supreme",
		Price:       38.00,
		Category:    "Beard-Care",
		Description: "Nourishing balm for beard styling and conditioning.",
		Image:       "https://images.unsplash.com/photo-1589782431746-713d84eef3c2?w=400&h=400&fit=crop",
		Rating:      4.7,
		Popularity:  90,
		Badge:       "New",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Shea Butter", "Beeswax", "Tea Tree Oil"},
	},
	{
		ID:          "m007",
		Name:        "Ocean Breeze Body Wash",
		Price:       24.00,
		Category:    "Self-Care",
		Description: "Refreshing body wash with ocean mineral complex.",
		Image:       "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=400&fit=crop",
		Rating:      4.4,
		Popularity:  83,
		SkinType:    "All Skin Types",
		Ingredients: []string{"Sea Salt", "Algae Extract", "Menthol"},
	},
	{
		ID:          "m008",
		Name:        "Anti-Aging Eye Gel",
		Price:       58.00,
		Category:    "Skincare",
		Description: "Targeted treatment for dark circles and puffiness.",
		Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=400&h=400&fit=crop",
		Rating:      4.6,
		Popularity:  85,
		SkinType:    "All Skin Types",
		Ingredients: []string{"Caffeine", "Peptides", "Vitamin K"},
	},
	{
		ID:          "m009",
		Name:        "Cedar & Sage Deodorant",
		Price:       22.00,
		Category:    "Self-Care",
		Description: "Natural aluminum-free deodorant with 48-hour protection.",
		Image:       "https://images.unsplash.com/photo-1600612253971-422e7f7faeb6?w=400&h=400&fit=crop",
		Rating:      4.5,
		Popularity:  84,
		SkinType:    "Sensitive",
		Ingredients: []string{"Baking Soda", "Cedar Oil", "Sage Extract"},
	},
	{
		ID:          "m010",
		Name:        "Thickening Hair Shampoo",
		Price:       36.00,
		Category:    "Hair-Care",
		Description: "Volumizing shampoo for thicker, fuller-looking hair.",
		Image:       "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400&h=400&fit=crop",
		Rating:      4.7,
		Popularity:  91,
		Badge:       "Trending",
		SkinType:    "All Skin Types",
		HairType:    "Fine",
		Ingredients: []string{"Biotin", "Caffeine", "Saw Palmetto"},
	},
	{
		ID:          "m011",
		Name:        "Executive Shave Cream",
		Price:       34.00,
		Category:    "Grooming",
		Description: "Rich lathering cream for the smoothest shave.",
		Image:       "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=400&h=400&fit=crop",
		Rating:      4.8,
		Popularity:  89,
		SkinType:    "Sensitive",
		Ingredients: []string{"Aloe Vera", "Coconut Oil", "Vitamin E"},
	},
	{
		ID:          "m012",
		Name:        "Midnight Oud Parfum",
		Price:       175.00,
		Category:    "Perfumes",
		Description: "Exclusive oud-based fragrance for the distinguished gentleman.",
		Image:       "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=400&h=400&fit=crop",
		Rating:      4.9,
		Popularity:  94,
		Badge:       "Exclusive",
		SkinType:    "All Skin Types",
		Ingredients: []string{"Oud", "Amber", "Sandalwood"},
	},
}
