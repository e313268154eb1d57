package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseSeed parses a decimal seed as accepted by the CLI and the HTTP API.
// Zero is valid and means "derive from the clock".
func ParseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidSeed, "seed cannot be empty")
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidSeed, err, "invalid seed %q", s)
	}
	return seed, nil
}

// ValidateOutputPath validates a file path the CLI is asked to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
