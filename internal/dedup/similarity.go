// Package dedup implements similarity scoring and duplicate detection for
// event catalogs. All functions are pure: no I/O, no clock reads, no shared
// state.
package dedup

import (
	"strings"

	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// Venue similarity weights. Name dominates because addresses for the same
// venue are entered far less consistently than names.
const (
	venueNameWeight    = 0.6
	venueAddressWeight = 0.4
)

// StringSimilarity returns a normalized similarity between two strings in
// [0,100]. Inputs are trimmed and lower-cased first; identical strings score
// 100, otherwise the score is (L - editDistance) / L * 100 where L is the
// length of the longer string.
func StringSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 100
	}

	ra := []rune(a)
	rb := []rune(b)

	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}

	if longer == 0 {
		return 100
	}

	dist := levenshtein(ra, rb)

	return float64(longer-dist) / float64(longer) * 100
}

// VenueSimilarity combines name and address similarity into one score in
// [0,100]. Addresses are compared as stored free text; there is no
// street/city parsing.
func VenueSimilarity(a, b models.Venue) float64 {
	nameScore := StringSimilarity(a.Name, b.Name)
	addressScore := StringSimilarity(a.Address, b.Address)

	return nameScore*venueNameWeight + addressScore*venueAddressWeight
}

// levenshtein computes the classic edit distance (insert/delete/substitute,
// unit cost) with a two-row table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			cur[j] = minOf(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}

		prev, cur = cur, prev
	}

	return prev[len(b)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}

	if c < m {
		m = c
	}

	return m
}
