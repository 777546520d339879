// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package vectorize converts ingredient text into TF-IDF vectors.
//
// A Model is built once from the corpus and is read-only afterwards, so a
// single Model may be shared by any number of goroutines.
package vectorize

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrInvalidCorpus is returned by Build when there is nothing to learn from.
	ErrInvalidCorpus = errors.New("invalid corpus")

	// ErrEncodingDegenerate is returned alongside a zero vector when none of
	// the encoded tokens are in the vocabulary. It is informational.
	ErrEncodingDegenerate = errors.New("encoding degenerate: no known tokens")
)

// minTokenLen is the shortest run of word characters kept as a token.
const minTokenLen = 2

// Model is a frozen vocabulary with its inverse document frequencies and
// the normalized vectors of the documents it was built from.
type Model struct {
	vocab     map[string]int
	terms     []string
	idf       []float64
	documents [][]float64
}

// Tokenize lowercases text and returns every maximal run of word characters
// (Unicode letters, Unicode numbers and '_') that is at least two runes long,
// in order of appearance. Duplicates are kept.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	start, runes := -1, 0
	flush := func(end int) {
		if start >= 0 && runes >= minTokenLen {
			tokens = append(tokens, lower[start:end])
		}
		start, runes = -1, 0
	}

	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(lower))

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Build learns the vocabulary and idf weights from texts and returns the
// model together with one L2-normalized vector per text, in input order.
//
// idf(t) = ln((1 + N) / (1 + df(t))) + 1
func Build(texts []string) (*Model, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrInvalidCorpus)
	}

	tokenized := make([][]string, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		tokens := Tokenize(text)
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for tok := range df {
		terms = append(terms, tok)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: no tokens in %d documents", ErrInvalidCorpus, len(texts))
	}
	sort.Strings(terms)

	m := &Model{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}

	n := float64(len(texts))
	for i, tok := range terms {
		m.vocab[tok] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	m.documents = make([][]float64, len(texts))
	for i, tokens := range tokenized {
		m.documents[i], _ = m.weigh(tokens)
	}

	return m, nil
}

// Encode maps text into the model's vector space. Tokens outside the
// vocabulary are ignored. If no token is known the zero vector is returned
// together with ErrEncodingDegenerate.
func (m *Model) Encode(text string) ([]float64, error) {
	vec, known := m.weigh(Tokenize(text))
	if known == 0 {
		return vec, ErrEncodingDegenerate
	}
	return vec, nil
}

// weigh computes the normalized tf*idf vector and reports how many tokens
// were found in the vocabulary.
func (m *Model) weigh(tokens []string) ([]float64, int) {
	vec := make([]float64, len(m.terms))
	known := 0
	for _, tok := range tokens {
		idx, ok := m.vocab[tok]
		if !ok {
			continue
		}
		vec[idx]++
		known++
	}

	for i, tf := range vec {
		if tf != 0 {
			vec[i] = tf * m.idf[i]
		}
	}

	normalize(vec)
	return vec, known
}

// normalize scales vec to unit Euclidean length in place. A zero vector is left as is.
func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// Documents returns the corpus vectors in the order they were built.
// The returned rows must not be modified.
func (m *Model) Documents() [][]float64 {
	return m.documents
}

// Size returns the vocabulary size, which is also the vector dimension.
func (m *Model) Size() int {
	return len(m.terms)
}

// Vocabulary returns a copy of the vocabulary in index order.
func (m *Model) Vocabulary() []string {
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// IDF returns the inverse document frequency of token.
func (m *Model) IDF(token string) (float64, bool) {
	idx, ok := m.vocab[token]
	if !ok {
		return 0, false
	}
	return m.idf[idx], true
}
