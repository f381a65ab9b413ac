package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffee-assistant/internal/calculator"
	pkgCalculator "coffee-assistant/pkg/calculator"
	"coffee-assistant/pkg/log"
)

func TestLocalCalculate(t *testing.T) {
	uc := New(log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		n1      float64
		op      string
		n2      float64
		want    float64
		wantErr error
	}{
		{"add", 10, "+", 5, 15, nil},
		{"subtract", 10, "-", 15, -5, nil},
		{"multiply", 2.5, "*", 4, 10, nil},
		{"divide", 10, "/", 4, 2.5, nil},
		{"divide by zero", 10, "/", 0, 0, calculator.ErrDivisionByZero},
		{"bad operator", 10, "%", 3, 0, calculator.ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Calculate(ctx, tt.n1, tt.op, tt.n2)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoteCalculate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body pkgCalculator.Request
		json.NewDecoder(r.Body).Decode(&body)
		if body.Num2 == 0 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Division by zero is not allowed."}`))
			return
		}
		if body.Num2 == 500 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"result":15}`))
	}))
	defer ts.Close()

	uc := NewRemote(pkgCalculator.New(ts.URL, time.Second), log.NewNop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		got, err := uc.Calculate(ctx, 10, "+", 5)
		if err != nil || got != 15 {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := uc.Calculate(ctx, 10, "/", 0)
		var rejected *calculator.RejectedError
		if !errors.As(err, &rejected) || rejected.Detail != calculator.DetailDivisionByZero {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("server error is unknown", func(t *testing.T) {
		_, err := uc.Calculate(ctx, 10, "+", 500)
		var rejected *calculator.RejectedError
		if err == nil || errors.As(err, &rejected) || errors.Is(err, calculator.ErrUnreachable) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		_, err := NewRemote(pkgCalculator.New(url, time.Second), log.NewNop()).Calculate(ctx, 1, "+", 2)
		if !errors.Is(err, calculator.ErrUnreachable) {
			t.Fatalf("err = %v", err)
		}
	})
}
