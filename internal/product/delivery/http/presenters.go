package http

import "coffee-assistant/internal/product"

type searchReq struct {
	Query string `json:"query" binding:"required"`
	TopK  *int   `json:"top_k"`
}

type productResp struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Colors      []string `json:"colors"`
	Category    string   `json:"category"`
}

type searchResp struct {
	Results []productResp `json:"results"`
	Summary string        `json:"summary"`
}

type errorResp struct {
	Detail string `json:"detail"`
}

func (r searchReq) topK() int {
	if r.TopK == nil {
		return product.DefaultTopK
	}
	return *r.TopK
}

func (h *handler) newSearchResp(out product.SearchOutput) searchResp {
	results := make([]productResp, 0, len(out.Results))
	for _, p := range out.Results {
		colors := p.Colors
		if colors == nil {
			colors = []string{}
		}
		results = append(results, productResp{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Colors:      colors,
			Category:    p.Category,
		})
	}
	return searchResp{Results: results, Summary: out.Summary}
}
