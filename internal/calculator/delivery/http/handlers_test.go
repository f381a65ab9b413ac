package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"coffee-assistant/internal/calculator/usecase"
	"coffee-assistant/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), usecase.New(log.NewNop())))
	return r
}

func TestCalculateHandler(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult float64
		wantDetail string
	}{
		{"add", `{"num1":10,"operator":"+","num2":5}`, http.StatusOK, 15, ""},
		{"zero operand", `{"num1":0,"operator":"*","num2":5}`, http.StatusOK, 0, ""},
		{"divide by zero", `{"num1":10,"operator":"/","num2":0}`, http.StatusBadRequest, 0, "Division by zero is not allowed."},
		{"bad operator", `{"num1":10,"operator":"^","num2":2}`, http.StatusBadRequest, 0, "Invalid operator. Supported operators are +, -, * and /."},
		{"missing field", `{"num1":10,"operator":"+"}`, http.StatusUnprocessableEntity, 0, detailInvalidBody},
		{"not json", `nope`, http.StatusUnprocessableEntity, 0, detailInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var resp calculateResp
				json.Unmarshal(w.Body.Bytes(), &resp)
				if resp.Result != tt.wantResult {
					t.Errorf("result = %v, want %v", resp.Result, tt.wantResult)
				}
				return
			}

			var resp errorResp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", resp.Detail, tt.wantDetail)
			}
		})
	}
}
