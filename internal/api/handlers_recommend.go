// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/recommend"
	"github.com/tomtom215/larder/internal/validation"
)

// maxBodyBytes bounds request bodies for the recommendation endpoint.
const maxBodyBytes = 64 << 10

// RecommendRequest is the body of POST /api/v1/recommendations.
type RecommendRequest struct {
	// Ingredients is free text, e.g. "tomato, basil, mozzarella". Empty text
	// is served like any other query with no known ingredient.
	Ingredients string `json:"ingredients" validate:"max=2000"`

	// Region restricts results to one cuisine region. Empty means all regions.
	Region string `json:"region" validate:"max=100"`

	// PreviewLength overrides the configured preview length when set.
	PreviewLength *int `json:"preview_length,omitempty" validate:"omitempty,gte=0,lte=1000"`
}

// RecommendationItem is one recommended recipe, with optional previews.
type RecommendationItem struct {
	recommend.Recommendation
	DescriptionPreview string `json:"description_preview,omitempty"`
	ProcedurePreview   string `json:"procedure_preview,omitempty"`
}

// RecommendResponse is the data payload of a recommendation response.
type RecommendResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	Count           int                  `json:"count"`
	Region          string               `json:"region"`
	Degenerate      bool                 `json:"degenerate"`
}

// Recommend handles POST /api/v1/recommendations.
//
// The body is JSON or a url-encoded form with ingredients, region and
// preview_length fields. Up to five recipes are returned; an empty list
// is a normal result when no neighbor matches the region.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()
	sentinel := h.engine.AllRegionsSentinel()

	req, err := decodeRecommendRequest(w, r)
	if err != nil {
		metrics.RecordRecommendation(metrics.RegionFilterAll, metrics.OutcomeInvalid, 0, false, time.Since(start))
		switch {
		case errors.Is(err, ErrUnsupportedContentType):
			rw.UnsupportedMediaType(err.Error())
		case errors.Is(err, ErrBodyTooLarge):
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, err.Error())
		default:
			rw.BadRequest(err.Error())
		}
		return
	}

	if req.Region == "" {
		req.Region = sentinel
	}
	regionLabel := metrics.RegionFilterLabel(req.Region, sentinel)

	if verr := validation.ValidateStruct(req); verr != nil {
		metrics.RecordRecommendation(regionLabel, metrics.OutcomeInvalid, 0, false, time.Since(start))
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.Recommend.RequestTimeout)
	defer cancel()

	res, err := h.engine.Recommend(ctx, req.Ingredients, req.Region)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			metrics.RecordRecommendation(regionLabel, metrics.OutcomeCanceled, 0, false, time.Since(start))
			rw.RequestTimeout("Recommendation request timed out")
			return
		}
		metrics.RecordRecommendation(regionLabel, metrics.OutcomeError, 0, false, time.Since(start))
		logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
		rw.InternalError("Failed to generate recommendations")
		return
	}

	previewLength := h.config.Recommend.PreviewLength
	if req.PreviewLength != nil {
		previewLength = *req.PreviewLength
	}

	resp := RecommendResponse{
		Recommendations: make([]RecommendationItem, len(res.Recommendations)),
		Count:           len(res.Recommendations),
		Region:          res.Region,
		Degenerate:      res.Degenerate,
	}
	for i, rec := range res.Recommendations {
		resp.Recommendations[i] = withPreview(rec, previewLength)
	}

	outcome := metrics.OutcomeOK
	if resp.Count == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(regionLabel, outcome, resp.Count, res.Degenerate, time.Since(start))

	logging.Ctx(r.Context()).Debug().
		Str("region", res.Region).
		Int("count", resp.Count).
		Bool("degenerate", res.Degenerate).
		Msg("Recommendations served")

	rw.Success(resp)
}

// Regions handles GET /api/v1/regions. The all-regions sentinel comes
// first, followed by the corpus regions in sorted order.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	regions := h.engine.Regions()
	out := make([]string, 0, len(regions)+1)
	out = append(out, h.engine.AllRegionsSentinel())
	out = append(out, regions...)
	WriteSuccess(w, r, out)
}

// withPreview attaches truncated previews when length is positive.
//
//nolint:gocritic // hugeParam: Recommendation is copied once per result
func withPreview(rec recommend.Recommendation, length int) RecommendationItem {
	item := RecommendationItem{Recommendation: rec}
	if length > 0 {
		item.DescriptionPreview = recommend.Truncate(rec.Description, length)
		item.ProcedurePreview = recommend.Truncate(rec.Procedure, length)
	}
	return item
}

// decodeRecommendRequest reads a JSON or url-encoded form body.
func decodeRecommendRequest(w http.ResponseWriter, r *http.Request) (*RecommendRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, ErrUnsupportedContentType
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	switch mediaType {
	case "application/json":
		return decodeJSON(r.Body)
	case "application/x-www-form-urlencoded":
		return decodeForm(r)
	default:
		return nil, ErrUnsupportedContentType
	}
}

func decodeJSON(body io.Reader) (*RecommendRequest, error) {
	var req RecommendRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrMalformedBody)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return &req, nil
}

func decodeForm(r *http.Request) (*RecommendRequest, error) {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	req := &RecommendRequest{
		Ingredients: r.PostForm.Get("ingredients"),
		Region:      r.PostForm.Get("region"),
	}
	if raw := strings.TrimSpace(r.PostForm.Get("preview_length")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: preview_length must be an integer", ErrMalformedBody)
		}
		req.PreviewLength = &n
	}
	return req, nil
}
