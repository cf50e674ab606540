// Package fsops provides the filesystem primitives behind the file tools.
// All paths are interpreted relative to the process working directory; there
// is no confinement beyond what the operating system enforces.
package fsops

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadTextFile reads a file and rejects content that does not look like text.
func ReadTextFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !IsText(b) {
		return "", fmt.Errorf("%s appears to be binary, not text", path)
	}
	return string(b), nil
}

// IsText reports whether data looks like text: valid UTF-8, no NUL bytes,
// and a low share of non-printable characters in the leading sample.
func IsText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if !utf8.Valid(data) {
		return false
	}

	const sampleSize = 8192
	limit := len(data)
	if limit > sampleSize {
		limit = sampleSize
	}

	var nonPrintable int
	for _, b := range data[:limit] {
		switch b {
		case '\n', '\r', '\t':
			continue
		}
		if b == 0 {
			return false
		}
		if b < 0x20 || b == 0x7f {
			nonPrintable++
		}
	}

	return nonPrintable*20 < limit
}
