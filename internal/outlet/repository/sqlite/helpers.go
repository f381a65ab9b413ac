package sqlite

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	"coffee-assistant/internal/outlet"
)

func decodeServices(raw string) []string {
	if raw == "" {
		return nil
	}
	var services []string
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil
	}
	return services
}

// fromColumns maps a row of arbitrary outlet columns onto an Outlet.
func fromColumns(cols []string, values []sql.NullString) outlet.Outlet {
	var o outlet.Outlet
	for i, col := range cols {
		v := values[i].String
		switch strings.ToLower(col) {
		case "id":
			o.ID, _ = strconv.ParseInt(v, 10, 64)
		case "name":
			o.Name = v
		case "area":
			o.Area = v
		case "city":
			o.City = v
		case "address":
			o.Address = v
		case "opening_time":
			o.OpeningTime = v
		case "closing_time":
			o.ClosingTime = v
		case "summary":
			o.Summary = v
		case "services":
			o.Services = decodeServices(v)
		}
	}
	return o
}
