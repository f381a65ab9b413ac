package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"coffee-assistant/internal/outlet"
	"coffee-assistant/pkg/log"
)

type mockUseCase struct {
	out outlet.QueryOutput
	err error
}

func (m *mockUseCase) Lookup(ctx context.Context, location, infoType string) (string, error) {
	return "", nil
}

func (m *mockUseCase) Query(ctx context.Context, query string) (outlet.QueryOutput, error) {
	return m.out, m.err
}

func (m *mockUseCase) Seed(ctx context.Context) error { return nil }

func serve(uc outlet.UseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/outlets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQueryHandler(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		uc := &mockUseCase{out: outlet.QueryOutput{
			Results:  []outlet.Outlet{{Name: "ZUS Coffee SS2", Address: "SS2", OpeningTime: "09:00", ClosingTime: "22:00"}},
			SQLQuery: "SELECT * FROM outlets",
		}}
		w := serve(uc, `{"query":"all outlets"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp queryResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Results) != 1 || resp.Results[0].OpeningTime != "09:00" {
			t.Errorf("results = %+v", resp.Results)
		}
		if resp.Results[0].Services == nil {
			t.Error("services should render as an empty list")
		}
		if strings.Contains(w.Body.String(), `"message"`) {
			t.Error("message should be omitted when results exist")
		}
	})

	t.Run("no results", func(t *testing.T) {
		uc := &mockUseCase{out: outlet.QueryOutput{SQLQuery: "SELECT 1 FROM outlets", Message: outlet.MsgNoResults}}
		w := serve(uc, `{"query":"penang"}`)

		var resp queryResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != outlet.MsgNoResults || resp.Results == nil {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		w := serve(&mockUseCase{}, `{}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", w.Code)
		}
	})

	t.Run("blank query", func(t *testing.T) {
		w := serve(&mockUseCase{}, `{"query":"   "}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", w.Code)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		w := serve(&mockUseCase{err: outlet.ErrUnavailable}, `{"query":"ss2"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}
