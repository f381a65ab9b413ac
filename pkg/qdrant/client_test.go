package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffee-assistant/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	var upserted []qdrant.Point

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && path == "/collections/products":
			w.Write([]byte(`{"result":{"status":"green"}}`))
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			upserted = append(upserted, req.Points...)
			w.Write([]byte(`{"status":"ok"}`))
		case r.Method == http.MethodPut:
			var req qdrant.CreateCollectionRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Vectors.Size != 4 || req.Vectors.Distance != qdrant.DistanceCosine {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"result":true}`))
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"result":[{"id":"9b2e","score":0.93,"payload":{"name":"OG Ceramic Mug"}}],"status":"ok"}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL + "/")
	ctx := context.Background()

	t.Run("CollectionExists", func(t *testing.T) {
		ok, err := client.CollectionExists(ctx, "products")
		if err != nil || !ok {
			t.Fatalf("CollectionExists(products) = %v, %v", ok, err)
		}
		ok, err = client.CollectionExists(ctx, "missing")
		if err != nil || ok {
			t.Fatalf("CollectionExists(missing) = %v, %v", ok, err)
		}
	})

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{
			Name:    "products",
			Vectors: qdrant.VectorConfig{Size: 4, Distance: qdrant.DistanceCosine},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "products", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "9b2e", Vector: []float32{0.1, 0.2, 0.3, 0.4}, Payload: map[string]any{"name": "OG Ceramic Mug"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(upserted) != 1 || upserted[0].ID != "9b2e" {
			t.Errorf("unexpected upserted points: %+v", upserted)
		}
	})

	t.Run("SearchPoints", func(t *testing.T) {
		resp, err := client.SearchPoints(ctx, "products", qdrant.SearchRequest{Vector: []float32{0.1}, Limit: 3, WithPayload: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].Payload["name"] != "OG Ceramic Mug" {
			t.Errorf("unexpected result: %+v", resp.Result)
		}
	})

	t.Run("SearchPoints server error", func(t *testing.T) {
		if _, err := client.SearchPoints(ctx, "products", qdrant.SearchRequest{Limit: 999}); err == nil {
			t.Fatal("expected error")
		}
	})
}
