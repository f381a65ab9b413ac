package product

// Product is a catalogue item.
type Product struct {
	Name        string
	Description string
	Price       float64
	Colors      []string
	Category    string
}

// SearchOutput is the result of a product search.
type SearchOutput struct {
	Results []Product
	Summary string
}
