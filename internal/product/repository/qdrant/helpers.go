package qdrant

import (
	"github.com/google/uuid"

	"coffee-assistant/internal/product"
)

func pointID(name string) string {
	return uuid.NewSHA1(productNamespace, []byte(name)).String()
}

func embeddingText(p product.Product) string {
	return p.Name + " " + p.Description + " Category: " + p.Category
}

func toPayload(p product.Product) map[string]any {
	return map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"colors":      p.Colors,
		"category":    p.Category,
	}
}

// fromPayload decodes a JSON-decoded payload. A missing name is malformed.
func fromPayload(payload map[string]any) (product.Product, bool) {
	name, ok := payload["name"].(string)
	if !ok || name == "" {
		return product.Product{}, false
	}

	p := product.Product{Name: name}
	p.Description, _ = payload["description"].(string)
	p.Category, _ = payload["category"].(string)
	p.Price, _ = payload["price"].(float64)

	if colors, ok := payload["colors"].([]any); ok {
		for _, c := range colors {
			if s, ok := c.(string); ok {
				p.Colors = append(p.Colors, s)
			}
		}
	}
	return p, true
}
