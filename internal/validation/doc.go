// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. Field names in
// errors are taken from json tags, and a notblank tag rejects strings made
// only of whitespace.
//
// # Usage
//
//	type RecommendRequest struct {
//	    Name string `json:"name" validate:"required,notblank,max=200"`
//	    Region      string `json:"region" validate:"max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	    // apiErr.Message == "ingredients is required"
//	}
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation
