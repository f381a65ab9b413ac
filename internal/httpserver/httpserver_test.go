package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffee-assistant/config"
	calculatorUC "coffee-assistant/internal/calculator/usecase"
	"coffee-assistant/internal/chat"
	"coffee-assistant/internal/conversation"
	"coffee-assistant/internal/outlet"
	"coffee-assistant/internal/product"
	"coffee-assistant/pkg/log"
)

type mockChat struct{}

func (mockChat) HandleTurn(ctx context.Context, text, sessionID string) string { return "hi" }

func (mockChat) Turn(ctx context.Context, in chat.TurnInput) chat.TurnOutput {
	return chat.TurnOutput{Reply: "hi", SessionID: "s1"}
}

func (mockChat) History(ctx context.Context, sessionID string) (conversation.Transcript, error) {
	return conversation.Transcript{}, conversation.ErrSessionNotFound
}

type mockOutlet struct{}

func (mockOutlet) Lookup(ctx context.Context, location, infoType string) (string, error) {
	return "", nil
}

func (mockOutlet) Query(ctx context.Context, query string) (outlet.QueryOutput, error) {
	return outlet.QueryOutput{Results: []outlet.Outlet{{Name: "SS2"}}, SQLQuery: "SELECT * FROM outlets"}, nil
}

func (mockOutlet) Seed(ctx context.Context) error { return nil }

type mockProduct struct{}

func (mockProduct) Search(ctx context.Context, query string, topK int) (product.SearchOutput, error) {
	return product.SearchOutput{Summary: "one mug"}, nil
}

func (mockProduct) Seed(ctx context.Context) error { return nil }

func newTestServer(t *testing.T, withProduct bool) *HTTPServer {
	t.Helper()
	cfg := Config{
		Logger:            log.NewNop(),
		Port:              8080,
		Mode:              "test",
		Environment:       "production",
		RateLimit:         config.RateLimitConfig{},
		ChatUseCase:       mockChat{},
		CalculatorUseCase: calculatorUC.New(log.NewNop()),
		OutletUseCase:     mockOutlet{},
	}
	if withProduct {
		cfg.ProductUseCase = mockProduct{}
	}
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1, ChatUseCase: mockChat{}}},
		{"missing port", Config{Mode: "test", ChatUseCase: mockChat{}}},
		{"missing chat", Config{Mode: "test", Port: 1}},
		{"missing calculator", Config{Mode: "test", Port: 1, ChatUseCase: mockChat{}, OutletUseCase: mockOutlet{}}},
		{"missing outlet", Config{Mode: "test", Port: 1, ChatUseCase: mockChat{}, CalculatorUseCase: calculatorUC.New(log.NewNop())}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK, `"status":"ok"`},
		{"health", http.MethodGet, "/health", "", http.StatusOK, `"status":"healthy"`},
		{"ready", http.MethodGet, "/ready", "", http.StatusOK, `"status":"ready"`},
		{"live", http.MethodGet, "/live", "", http.StatusOK, `"status":"alive"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "go_goroutines"},
		{"calculate", http.MethodPost, "/calculate", `{"num1":10,"operator":"+","num2":5}`, http.StatusOK, `"result":15`},
		{"divide by zero", http.MethodPost, "/calculate", `{"num1":1,"operator":"/","num2":0}`, http.StatusBadRequest, `"detail"`},
		{"outlets", http.MethodPost, "/outlets", `{"query":"SS2"}`, http.StatusOK, `"sql_query"`},
		{"products", http.MethodPost, "/products", `{"query":"mug"}`, http.StatusOK, `"one mug"`},
		{"chat", http.MethodPost, "/api/v1/chat", `{"message":"hi"}`, http.StatusOK, `"session_id":"s1"`},
		{"history", http.MethodGet, "/api/v1/chat/sessions/none", "", http.StatusNotFound, "session not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %s does not contain %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRootPayload(t *testing.T) {
	w := serve(newTestServer(t, false), http.MethodGet, "/", "")

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["message"] != RootMessage {
		t.Errorf("body = %v", body)
	}
}

func TestProductRouteOptional(t *testing.T) {
	w := serve(newTestServer(t, false), http.MethodPost, "/products", `{"query":"mug"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when product search is not configured", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, false)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
