// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import "errors"

// Request decoding errors
var (
	// ErrUnsupportedContentType is returned for bodies that are neither JSON nor a form
	ErrUnsupportedContentType = errors.New("content type must be application/json or application/x-www-form-urlencoded")

	// ErrMalformedBody is returned when the body cannot be decoded
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned when the body exceeds maxBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")
)
