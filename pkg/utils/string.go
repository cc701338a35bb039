// Package utils provides common utility functions.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Normalize trims the string and collapses runs of whitespace to one space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens a string to at most maxWidth display columns, appending
// an ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "...")
}
