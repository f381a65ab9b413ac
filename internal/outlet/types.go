package outlet

// Outlet is a physical store.
type Outlet struct {
	ID          int64
	Name        string
	Area        string // SS2, SS15, Damansara, Bangsar
	City        string
	Address     string
	OpeningTime string // HH:MM, 24h
	ClosingTime string // HH:MM, 24h
	Summary     string
	Services    []string
}

// QueryOutput is the result of a natural-language outlet query.
type QueryOutput struct {
	Results  []Outlet
	SQLQuery string
	Message  string
}
