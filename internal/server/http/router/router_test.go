package router

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"slotdesk/internal/config"
	"slotdesk/internal/test"
)

func newTestRouter(metricsEnabled bool, healthErr error) http.Handler {
	cfg := &config.Config{MetricsEnabled: metricsEnabled}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(test.BackofficeFacadeStub{}, test.HealthCheckerStub{Err: healthErr}, cfg, logger)
}

func TestRouterRoutes(t *testing.T) {
	engine := newTestRouter(false, nil)

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/orders", `{"customerName":"Alice","items":[{"accountId":1,"quantity":1}]}`, http.StatusCreated},
		{http.MethodGet, "/api/orders", "", http.StatusNoContent},
		{http.MethodGet, "/api/orders/missing", "", http.StatusNotFound},
		{http.MethodPatch, "/api/orders/missing", `{"status":"completed"}`, http.StatusNotFound},
		{http.MethodDelete, "/api/orders/missing", "", http.StatusNotFound},
		{http.MethodPost, "/api/accounts", `{"serviceName":"s","email":"a@x.io","maxUserSlots":3}`, http.StatusCreated},
		{http.MethodGet, "/api/accounts", "", http.StatusNoContent},
		{http.MethodGet, "/api/accounts/1", "", http.StatusNotFound},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			var reader io.Reader
			if tt.body != "" {
				reader = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, reader)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRouterHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		engine := newTestRouter(false, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("storage down", func(t *testing.T) {
		engine := newTestRouter(false, errors.New("connection refused"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
	})
}

func TestRouterMetricsEndpoint(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		engine := newTestRouter(true, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		engine := newTestRouter(false, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}
