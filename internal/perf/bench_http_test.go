package perf

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/odyssey-erp/billdesk/internal/app"
)

func newRouter(tb testing.TB) http.Handler {
	tb.Helper()
	c, err := app.NewContainer(context.Background(), &app.Config{
		AppRequestTimeout: 5 * time.Second,
		SeedFixtures:      true,
		JobsConcurrency:   1,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		tb.Fatalf("build container: %v", err)
	}
	tb.Cleanup(func() { _ = c.Close() })
	return c.Router
}

func serve(tb testing.TB, h http.Handler, path string) time.Duration {
	start := time.Now()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	if rr.Code != http.StatusOK {
		tb.Fatalf("GET %s: status %d", path, rr.Code)
	}
	return time.Since(start)
}

func TestUncachedLatencyTargets(t *testing.T) {
	h := newRouter(t)
	scenarios := []struct {
		path      string
		threshold time.Duration
	}{
		{"/api/invoices?search=INV", 50 * time.Millisecond},
		{"/api/dashboard", 100 * time.Millisecond},
		{"/api/reports?period=all-time", 100 * time.Millisecond},
	}
	for _, scenario := range scenarios {
		samples := make([]time.Duration, 20)
		for i := range samples {
			samples[i] = serve(t, h, scenario.path)
		}
		if p95 := percentile95(samples); p95 > scenario.threshold {
			t.Fatalf("%s latency regression: p95=%s threshold=%s", scenario.path, p95, scenario.threshold)
		}
	}
}

func BenchmarkInvoiceList(b *testing.B) {
	h := newRouter(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		serve(b, h, "/api/invoices")
	}
}

func BenchmarkDashboard(b *testing.B) {
	h := newRouter(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		serve(b, h, "/api/dashboard")
	}
}

func percentile95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * 0.95)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
