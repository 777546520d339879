// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import "unicode/utf8"

// Ellipsis is appended by Truncate when text is shortened.
const Ellipsis = "..."

// Truncate returns text unchanged if it has at most length runes, otherwise
// the first length runes followed by Ellipsis. A negative length is treated
// as zero.
func Truncate(text string, length int) string {
	if length < 0 {
		length = 0
	}
	if utf8.RuneCountInString(text) <= length {
		return text
	}

	n := 0
	for i := range text {
		if n == length {
			return text[:i] + Ellipsis
		}
		n++
	}
	return text
}
