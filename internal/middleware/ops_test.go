package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopcore/billing-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		wantLevel  string
		wantInBody string
	}{
		{
			name:      "success logs at debug",
			status:    http.StatusOK,
			wantLevel: "DEBUG",
		},
		{
			name:      "client error logs at warn",
			status:    http.StatusNotFound,
			wantLevel: "WARN",
		},
		{
			name:      "server error logs at error",
			status:    http.StatusServiceUnavailable,
			wantLevel: "ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))

			router := chi.NewRouter()
			router.Use(middleware.Observe(logger))
			router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, buf.String(), "level="+tc.wantLevel)
			assert.Contains(t, buf.String(), "route=/readyz")
		})
	}
}

func TestObserve_DefaultStatusOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	router := chi.NewRouter()
	router.Use(middleware.Observe(logger))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "status=200")
}
