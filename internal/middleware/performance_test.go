// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/larder/internal/logging"
)

func sample(route string, d time.Duration) RequestSample {
	return RequestSample{Route: route, Method: http.MethodPost, Duration: d, StatusCode: http.StatusOK, Timestamp: time.Now()}
}

func TestNewPerformanceMonitor_Defaults(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(0, 0)
	if pm.maxSamples != 1 {
		t.Errorf("maxSamples = %d, want 1", pm.maxSamples)
	}
	if pm.slowThreshold != DefaultSlowRequestThreshold {
		t.Errorf("slowThreshold = %v, want %v", pm.slowThreshold, DefaultSlowRequestThreshold)
	}
}

func TestPerformanceMonitor_SlidingWindow(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(5, time.Second)
	for i := 0; i < 10; i++ {
		pm.Record(sample("/r", time.Duration(i)*time.Millisecond))
	}

	recent := pm.Recent(100)
	if len(recent) != 5 {
		t.Fatalf("window holds %d samples, want 5", len(recent))
	}
	for i, s := range recent {
		if want := time.Duration(5+i) * time.Millisecond; s.Duration != want {
			t.Errorf("recent[%d].Duration = %v, want %v", i, s.Duration, want)
		}
	}
}

func TestPerformanceMonitor_Stats(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100, time.Second)
	for i := 0; i < 10; i++ {
		pm.Record(sample("/api/v1/recommendations", time.Duration(100+i*10)*time.Millisecond))
	}
	for i := 0; i < 5; i++ {
		pm.Record(sample("/api/v1/regions", time.Duration(50+i*5)*time.Millisecond))
	}

	stats := pm.Stats()
	if len(stats) != 2 {
		t.Fatalf("got %d endpoints, want 2", len(stats))
	}

	rec := stats[0]
	if rec.Endpoint != "POST /api/v1/recommendations" {
		t.Errorf("busiest endpoint = %q", rec.Endpoint)
	}
	if rec.RequestCount != 10 {
		t.Errorf("RequestCount = %d, want 10", rec.RequestCount)
	}
	if rec.AvgMS != 145 {
		t.Errorf("AvgMS = %v, want 145", rec.AvgMS)
	}
	if rec.MinMS != 100 || rec.MaxMS != 190 {
		t.Errorf("Min/Max = %v/%v, want 100/190", rec.MinMS, rec.MaxMS)
	}
	if rec.P50MS != 140 {
		t.Errorf("P50MS = %v, want 140", rec.P50MS)
	}
	if rec.P99MS != 180 {
		t.Errorf("P99MS = %v, want 180", rec.P99MS)
	}
}

func TestPerformanceMonitor_RecentBounds(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(10, time.Second)
	if got := pm.Recent(5); len(got) != 0 {
		t.Errorf("Recent on empty monitor = %d samples", len(got))
	}
	pm.Record(sample("/a", time.Millisecond))
	if got := pm.Recent(-1); len(got) != 0 {
		t.Errorf("Recent(-1) = %d samples, want 0", len(got))
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewTestLogger(&buf)

	pm := NewPerformanceMonitor(10, time.Nanosecond)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(logging.ContextWithLogger(req.Context(), logger)))
		})
	})
	r.Use(pm.Middleware)
	r.Get("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	recent := pm.Recent(1)
	if len(recent) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(recent))
	}
	if recent[0].Route != "/api/v1/health" || recent[0].StatusCode != http.StatusTeapot {
		t.Errorf("sample = %+v", recent[0])
	}
	if !strings.Contains(buf.String(), "Slow request detected") {
		t.Errorf("expected slow request log, got %q", buf.String())
	}
}

func TestPerformanceMonitor_Concurrent(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(50, time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				pm.Record(sample("/c", time.Millisecond))
				_ = pm.Stats()
			}
		}()
	}
	wg.Wait()

	if got := len(pm.Recent(1000)); got != 50 {
		t.Errorf("window = %d, want 50", got)
	}
}
