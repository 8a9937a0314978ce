package validator

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxIdentifierLength bounds caller-supplied identifiers. Listing ids and
// warehouse item ids both end up in URL paths and primary keys.
const MaxIdentifierLength = 128

// Identifier validation errors
var (
	ErrIdentifierEmpty   = errors.New("identifier cannot be empty")
	ErrIdentifierTooLong = errors.New("identifier is too long")
	ErrIdentifierInvalid = errors.New("identifier must not contain '/', whitespace or control characters")
)

// ValidateIdentifier checks that id is usable as a key and as a single URL
// path segment.
func ValidateIdentifier(id string, maxLength int) error {
	if id == "" {
		return ErrIdentifierEmpty
	}

	if utf8.RuneCountInString(id) > maxLength {
		return ErrIdentifierTooLong
	}

	if !utf8.ValidString(id) {
		return ErrIdentifierInvalid
	}

	for _, r := range id {
		if r == '/' || unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrIdentifierInvalid
		}
	}

	return nil
}

// NormalizeOptional returns s trimmed, or nil when nothing is left. Empty
// optional strings are treated as absent.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
