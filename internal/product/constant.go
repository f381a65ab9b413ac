package product

const (
	DefaultTopK = 3
	MaxTopK     = 20

	MsgNoResults       = "No products found matching your query."
	MsgFallbackSummary = "Found %d products matching your query. Top result: %s"
)

// DefaultProducts is the catalogue indexed by Seed.
var DefaultProducts = []Product{
	{
		Name:        "ZUS All Day Cup 500ml (17oz) - Aqua Collection",
		Description: "A double-walled cup in the Aqua colourways for the bold and playful. Keeps drinks hot or cold for up to 16 hours.",
		Price:       79.00,
		Colors:      []string{"Misty Blue", "Ocean Breeze", "Blue Lagoon", "Deep Sea"},
		Category:    "Drinkware",
	},
	{
		Name:        "ZUS All Day Cup 500ml (17oz) - Mountain Collection",
		Description: "A double-walled cup in the Mountain colourways for the steadfast and observant. Keeps drinks hot or cold for up to 16 hours.",
		Price:       79.00,
		Colors:      []string{"Soft Fern", "Pine Green", "Terrain Green", "Forest Green"},
		Category:    "Drinkware",
	},
	{
		Name:        "ZUS All-Can Tumbler 600ml (20oz)",
		Description: "A stainless tumbler with interchangeable lids: a screw-on lid for hot coffee at work and a flip-top lid for the gym.",
		Price:       105.00,
		Colors:      []string{"Thunder Blue", "Stainless Steel"},
		Category:    "Drinkware",
	},
	{
		Name:        "ZUS OG Ceramic Mug (16oz)",
		Description: "A high-quality ceramic mug with an ergonomic handle for cozy moments.",
		Price:       39.00,
		Colors:      []string{"Thunder Blue", "Cloud White", "Space Black"},
		Category:    "Drinkware",
	},
}
