package errors

import (
	"strings"
	"unicode"
)

// ValidateFamilyName validates a font family name for safety and correctness.
// Family names end up in URLs and cache file names, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateFamilyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidFamily, "font family name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidFamily, "font family name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFamily, "font family name contains invalid control characters")
		}
	}

	// Anything that could escape the cache directory
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidFamily, "font family name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateWeights validates a list of requested font weights.
// CSS font weights are defined on the 1-1000 scale; anything outside
// that range is rejected before it reaches a stylesheet request.
func ValidateWeights(weights []int) error {
	if len(weights) == 0 {
		return New(ErrCodeInvalidWeight, "at least one font weight is required")
	}
	for _, w := range weights {
		if w < 1 || w > 1000 {
			return New(ErrCodeInvalidWeight, "font weight %d out of range (1-1000)", w)
		}
	}
	return nil
}
