package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc() error = %v", err)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	if doc.Info.Title != "Coffee Assistant API" {
		t.Errorf("title = %q", doc.Info.Title)
	}
	for _, path := range []string{"/calculate", "/outlets", "/products", "/api/v1/chat"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("paths missing %s", path)
		}
	}
}
