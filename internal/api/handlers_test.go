// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/middleware"
	"github.com/tomtom215/larder/internal/recommend"
)

func testRecipes() []recommend.Recipe {
	return []recommend.Recipe{
		{Name: "Margherita Pizza", IngredientsText: "flour, yeast, tomato, mozzarella, basil, olive oil", Region: "Italian", Description: "Classic pizza", Procedure: "Bake hot", NutritionalValue: "800 kcal", ImageURL: "https://img.example/pizza.jpg"},
		{Name: "Chicken Tikka Masala", IngredientsText: "chicken, yogurt, garam masala, tomato, cream, ginger", Region: "Indian"},
		{Name: "Pesto Pasta", IngredientsText: "spaghetti, basil, pine nuts, parmesan, garlic, olive oil", Region: "Italian"},
		{Name: "Pad Thai", IngredientsText: "rice noodles, shrimp, tamarind, fish sauce, peanuts, egg", Region: "Thai"},
		{Name: "Tacos al Pastor", IngredientsText: "pork, pineapple, chili, corn tortillas, onion, cilantro", Region: "Mexican"},
		{Name: "Risotto ai Funghi", IngredientsText: "arborio rice, mushrooms, parmesan, butter, onion, white wine", Region: "Italian"},
		{Name: "Miso Soup", IngredientsText: "miso, tofu, seaweed, scallion, dashi", Region: "Japanese"},
		{Name: "Guacamole", IngredientsText: "avocado, lime, onion, cilantro, chili, salt", Region: "Mexican"},
		{Name: "Dal Tadka", IngredientsText: "lentils, turmeric, cumin, garlic, ginger, tomato", Region: "Indian"},
		{Name: "Bruschetta", IngredientsText: "bread, tomato, garlic, basil, olive oil", Region: "Mediterranean"},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
		Recommend: config.RecommendConfig{
			NeighborCount:      recommend.DefaultNeighborCount,
			MaxResults:         recommend.DefaultMaxResults,
			AllRegionsSentinel: recommend.DefaultAllRegionsSentinel,
			RequestTimeout:     5 * time.Second,
		},
	}
}

// fakeRecommender returns a fixed error from Recommend.
type fakeRecommender struct {
	err error
}

func (f *fakeRecommender) Recommend(context.Context, string, string) (*recommend.Result, error) {
	return nil, f.err
}
func (f *fakeRecommender) Regions() []string          { return nil }
func (f *fakeRecommender) AllRegionsSentinel() string { return "All" }
func (f *fakeRecommender) Stats() recommend.Stats     { return recommend.Stats{} }
func (f *fakeRecommender) BuiltAt() time.Time         { return time.Time{} }

func newTestServer(t *testing.T, engine Recommender, cfg *config.Config) (http.Handler, *Handler) {
	t.Helper()
	if engine == nil {
		e, err := recommend.NewEngine(testRecipes(), nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		engine = e
	}
	if cfg == nil {
		cfg = testConfig()
	}
	handler := NewHandler(engine, cfg)
	return NewRouter(handler, cfg).SetupChi(), handler
}

type recommendEnvelope struct {
	Success bool              `json:"success"`
	Data    RecommendResponse `json:"data"`
	Error   *APIError         `json:"error"`
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeRecommend(t *testing.T, w *httptest.ResponseRecorder) recommendEnvelope {
	t.Helper()
	var env recommendEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to unmarshal response: %v (body %q)", err, w.Body.String())
	}
	return env
}

func TestRecommend_RegionFilter(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	w := postJSON(t, h, `{"ingredients":"tomato, basil, mozzarella","region":"Italian"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	env := decodeRecommend(t, w)
	if !env.Success {
		t.Fatal("Expected Success to be true")
	}
	if env.Data.Region != "Italian" {
		t.Errorf("Region = %q, want Italian", env.Data.Region)
	}
	if env.Data.Count == 0 || env.Data.Count > recommend.DefaultNeighborCount {
		t.Fatalf("Count = %d, want 1..%d", env.Data.Count, recommend.DefaultNeighborCount)
	}
	if env.Data.Count != len(env.Data.Recommendations) {
		t.Errorf("Count = %d, len = %d", env.Data.Count, len(env.Data.Recommendations))
	}
	if got := env.Data.Recommendations[0].Name; got != "Margherita Pizza" {
		t.Errorf("first = %q, want Margherita Pizza", got)
	}
	for _, rec := range env.Data.Recommendations {
		if rec.Region != "Italian" {
			t.Errorf("recipe %q region = %q, want Italian", rec.Name, rec.Region)
		}
	}
	first := env.Data.Recommendations[0]
	if first.ImageURL != "https://img.example/pizza.jpg" || first.NutritionalValue != "800 kcal" {
		t.Errorf("projection lost fields: %+v", first)
	}
	if first.DescriptionPreview != "" {
		t.Errorf("DescriptionPreview = %q, want empty when previews are off", first.DescriptionPreview)
	}
}

func TestRecommend_DefaultRegionIsAll(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	w := postJSON(t, h, `{"ingredients":"tomato basil"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	env := decodeRecommend(t, w)
	if env.Data.Region != "All" {
		t.Errorf("Region = %q, want All", env.Data.Region)
	}
	if env.Data.Count != recommend.DefaultNeighborCount {
		t.Errorf("Count = %d, want %d", env.Data.Count, recommend.DefaultNeighborCount)
	}
}

func TestRecommend_NoMatchIsEmptyList(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	w := postJSON(t, h, `{"ingredients":"tomato, basil, mozzarella","region":"Thai"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"recommendations":[]`) {
		t.Errorf("body = %s, want empty recommendations array", w.Body.String())
	}
	if env := decodeRecommend(t, w); env.Data.Count != 0 {
		t.Errorf("Count = %d, want 0", env.Data.Count)
	}
}

func TestRecommend_Degenerate(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	w := postJSON(t, h, `{"ingredients":"xyzzy plugh"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	env := decodeRecommend(t, w)
	if !env.Data.Degenerate {
		t.Error("Degenerate = false, want true")
	}
	if env.Data.Count != recommend.DefaultNeighborCount {
		t.Errorf("Count = %d, want %d", env.Data.Count, recommend.DefaultNeighborCount)
	}
}

func TestRecommend_Previews(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	w := postJSON(t, h, `{"ingredients":"tomato, basil, mozzarella","region":"Italian","preview_length":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	first := decodeRecommend(t, w).Data.Recommendations[0]
	if first.DescriptionPreview != "Class..." {
		t.Errorf("DescriptionPreview = %q, want Class...", first.DescriptionPreview)
	}
	if first.ProcedurePreview != "Bake ..." {
		t.Errorf("ProcedurePreview = %q, want %q", first.ProcedurePreview, "Bake ...")
	}
	if first.Description != "Classic pizza" {
		t.Errorf("Description = %q, want full text", first.Description)
	}
}

func TestRecommend_ConfiguredPreviewLength(t *testing.T) {
	cfg := testConfig()
	cfg.Recommend.PreviewLength = 100
	h, _ := newTestServer(t, nil, cfg)

	w := postJSON(t, h, `{"ingredients":"mozzarella","region":"Italian"}`)
	first := decodeRecommend(t, w).Data.Recommendations[0]
	if first.DescriptionPreview != "Classic pizza" {
		t.Errorf("DescriptionPreview = %q, want untruncated text", first.DescriptionPreview)
	}
}

func TestRecommend_FormBody(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	form := url.Values{"ingredients": {"tomato, basil, mozzarella"}, "region": {"Italian"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	env := decodeRecommend(t, w)
	if env.Data.Region != "Italian" || env.Data.Count == 0 {
		t.Errorf("data = %+v", env.Data)
	}
}

func TestRecommend_EmptyIngredientsServedAsDegenerate(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"missing json field", "application/json", `{"region":"All"}`},
		{"blank json field", "application/json", `{"ingredients":"   "}`},
		{"empty form field", "application/x-www-form-urlencoded", `ingredients=`},
		{"separators only", "application/x-www-form-urlencoded", `ingredients=%2B%2B%2B`},
		{"single character", "application/x-www-form-urlencoded", `ingredients=x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
			}
			env := decodeRecommend(t, w)
			if !env.Data.Degenerate {
				t.Error("degenerate = false, want true")
			}
			if env.Data.Count != 3 {
				t.Errorf("count = %d, want 3", env.Data.Count)
			}
		})
	}
}

func TestRecommend_BadRequests(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{"ingredients too long", "application/json", `{"ingredients":"` + strings.Repeat("a", 2001) + `"}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"negative preview", "application/json", `{"ingredients":"tomato","preview_length":-1}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"region too long", "application/json", `{"ingredients":"tomato","region":"` + strings.Repeat("x", 101) + `"}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"malformed json", "application/json", `{"ingredients":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty body", "application/json", ``, http.StatusBadRequest, ErrCodeBadRequest},
		{"plain text", "text/plain", `tomato`, http.StatusUnsupportedMediaType, ErrCodeUnsupportedMediaType},
		{"no content type", "", `{"ingredients":"tomato"}`, http.StatusUnsupportedMediaType, ErrCodeUnsupportedMediaType},
		{"form bad preview", "application/x-www-form-urlencoded", `ingredients=tomato&preview_length=abc`, http.StatusBadRequest, ErrCodeBadRequest},
		{"form too large", "application/x-www-form-urlencoded", "ingredients=" + strings.Repeat("a", maxBodyBytes+1), http.StatusRequestEntityTooLarge, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			env := decodeRecommend(t, w)
			if env.Success || env.Error == nil {
				t.Fatalf("expected error envelope, got %s", w.Body.String())
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestRecommend_EngineErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrCodeRequestTimeout},
		{"canceled", context.Canceled, http.StatusServiceUnavailable, ErrCodeRequestTimeout},
		{"failure", errors.New("index corrupted"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestServer(t, &fakeRecommender{err: tt.err}, nil)

			w := postJSON(t, h, `{"ingredients":"tomato"}`)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			env := decodeRecommend(t, w)
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
			if strings.Contains(w.Body.String(), "index corrupted") {
				t.Error("internal error text leaked into response")
			}
		})
	}
}

func TestRegions(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/regions", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"All", "Indian", "Italian", "Japanese", "Mediterranean", "Mexican", "Thai"}
	if strings.Join(env.Data, ",") != strings.Join(want, ",") {
		t.Errorf("regions = %v, want %v", env.Data, want)
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env struct {
		Data HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", env.Data.Status)
	}
	if env.Data.CorpusSize != 10 {
		t.Errorf("CorpusSize = %d, want 10", env.Data.CorpusSize)
	}
	if env.Data.VocabularySize == 0 {
		t.Error("VocabularySize = 0")
	}
	if env.Data.IndexKind != "bruteforce" {
		t.Errorf("IndexKind = %q, want bruteforce", env.Data.IndexKind)
	}
	if env.Data.BuiltAt.IsZero() {
		t.Error("BuiltAt is zero")
	}
}

func TestStats(t *testing.T) {
	h, handler := newTestServer(t, nil, nil)

	postJSON(t, h, `{"ingredients":"tomato"}`)
	postJSON(t, h, `{"ingredients":"xyzzy"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env struct {
		Data StatsResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.Engine.QueriesServed != 2 {
		t.Errorf("QueriesServed = %d, want 2", env.Data.Engine.QueriesServed)
	}
	if env.Data.Engine.DegenerateQueries != 1 {
		t.Errorf("DegenerateQueries = %d, want 1", env.Data.Engine.DegenerateQueries)
	}

	var found *middleware.EndpointStats
	for i := range env.Data.Endpoints {
		if env.Data.Endpoints[i].Endpoint == "POST /api/v1/recommendations" {
			found = &env.Data.Endpoints[i]
		}
	}
	if found == nil {
		t.Fatalf("endpoints = %+v, want POST /api/v1/recommendations", env.Data.Endpoints)
	}
	if found.RequestCount != 2 {
		t.Errorf("RequestCount = %d, want 2", found.RequestCount)
	}

	// The stats request itself is recorded after it responds.
	if got := len(handler.PerformanceMonitor().Recent(10)); got != 3 {
		t.Errorf("recent samples = %d, want 3", got)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"unknown path", http.MethodGet, "/api/v1/nope", http.StatusNotFound, ErrCodeNotFound},
		{"unknown root path", http.MethodGet, "/nope", http.StatusNotFound, ErrCodeNotFound},
		{"get recommendations", http.MethodGet, "/api/v1/recommendations", http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"post regions", http.MethodPost, "/api/v1/regions", http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var env APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("unmarshal: %v (body %q)", err, w.Body.String())
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRouter_RequestIDAndMetrics(t *testing.T) {
	h, _ := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("%s = %q, want client-supplied-id", middleware.RequestIDHeader, got)
	}
	var env APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Meta == nil || env.Meta.RequestID != "client-supplied-id" {
		t.Errorf("Meta = %+v, want request id echoed", env.Meta)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "api_requests_total") {
		t.Error("/metrics missing api_requests_total")
	}
}
