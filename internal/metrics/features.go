// Package metrics derives cheap local features of tool inputs and outputs
// for structured logging. Nothing here touches the network or filesystem.
package metrics

import (
	"strings"
	"unicode/utf8"
)

// OutputFeatures holds size features of a tool result.
type OutputFeatures struct {
	Bytes int
	Runes int
	Lines int
}

// Measure computes byte, rune, and line counts for a tool result.
func Measure(s string) OutputFeatures {
	return OutputFeatures{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Lines: countLines(s),
	}
}

// Preview clamps s to at most n runes for log lines, appending an ellipsis
// marker when anything was cut.
func Preview(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of
// '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}
