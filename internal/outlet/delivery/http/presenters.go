package http

import "coffee-assistant/internal/outlet"

type queryReq struct {
	Query string `json:"query" binding:"required"`
}

type outletResp struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
	Services    []string `json:"services"`
}

type queryResp struct {
	Results  []outletResp `json:"results"`
	SQLQuery string       `json:"sql_query"`
	Message  string       `json:"message,omitempty"`
}

type errorResp struct {
	Detail string `json:"detail"`
}

func (h *handler) newQueryResp(out outlet.QueryOutput) queryResp {
	results := make([]outletResp, 0, len(out.Results))
	for _, o := range out.Results {
		services := o.Services
		if services == nil {
			services = []string{}
		}
		results = append(results, outletResp{
			Name:        o.Name,
			Address:     o.Address,
			OpeningTime: o.OpeningTime,
			ClosingTime: o.ClosingTime,
			Services:    services,
		})
	}
	return queryResp{Results: results, SQLQuery: out.SQLQuery, Message: out.Message}
}
