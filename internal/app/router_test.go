package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-rental/internal/observability"
	periodhttp "github.com/odyssey-erp/odyssey-rental/internal/period/http"
	"github.com/odyssey-erp/odyssey-rental/internal/windows"
)

func newTestRouter(t *testing.T, cfg *Config) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := windows.NewRepository(client, time.Hour, cfg.Location(), logger, metrics)

	return NewRouter(RouterParams{
		Logger:         logger,
		Config:         cfg,
		Metrics:        metrics,
		PeriodHandler:  periodhttp.NewHandler(logger, cfg.Location(), metrics),
		WindowsHandler: windows.NewHandler(logger, windows.NewService(repo), cfg.Location()),
	})
}

func TestRouterServesEndpoints(t *testing.T) {
	router := newTestRouter(t, &Config{AppEnv: "production", RateLimit: 100})

	type subTest struct {
		name   string
		method string
		target string
		body   string
		status int
	}
	cases := []subTest{
		{name: "Health", method: http.MethodGet, target: "/healthz", status: http.StatusOK},
		{name: "Inspect", method: http.MethodGet, target: "/periods/inspect?period%5Bstart%5D=2024-01-01&period%5Bend%5D=2024-01-02&fullDays=1", status: http.StatusOK},
		{name: "InspectInvalid", method: http.MethodGet, target: "/periods/inspect?period%5Bstart%5D=2024-01-05&period%5Bend%5D=2024-01-01&fullDays=1", status: http.StatusBadRequest},
		{name: "CreateWindow", method: http.MethodPost, target: "/windows", body: `{"name":"x","period":{"start":"2024-01-01","end":"2024-01-02","isFullDays":true}}`, status: http.StatusCreated},
		{name: "ListWindows", method: http.MethodGet, target: "/windows", status: http.StatusOK},
		{name: "Metrics", method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{name: "Unknown", method: http.MethodGet, target: "/nope", status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			req.Header.Set("X-Forwarded-Proto", "https")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouterCountsRejections(t *testing.T) {
	router := newTestRouter(t, &Config{RateLimit: 100})

	req := httptest.NewRequest(http.MethodGet, "/periods/inspect?period%5Bstart%5D=garbage&period%5Bend%5D=2024-01-01", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `rental_period_rejections_total{source="query"} 1`)
}

func TestRouterRateLimits(t *testing.T) {
	router := newTestRouter(t, &Config{RateLimit: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
