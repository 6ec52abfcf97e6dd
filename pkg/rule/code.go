package rule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedCode is returned when a code cannot be canonicalized.
	ErrMalformedCode = errors.New("malformed rule code")
)

// Code is a diagnostic rule identifier. Comparison is case-sensitive.
type Code string

// Family returns the leading alphabetic run of the code, which names the
// category it belongs to ("PLR0912" -> "PLR").
func (c Code) Family() string {
	s := string(c)
	for i, r := range s {
		if !isAlpha(r) {
			return s[:i]
		}
	}

	return s
}

// Validate checks that the code has a canonical form: non-empty, a leading
// alphabetic family prefix, and only alphanumeric characters after it.
func (c Code) Validate() error {
	if c == "" {
		return fmt.Errorf("%w: empty string", ErrMalformedCode)
	}

	s := string(c)
	if !isAlpha(rune(s[0])) {
		return fmt.Errorf("%w: %q must start with an alphabetic family prefix", ErrMalformedCode, s)
	}

	for _, r := range s {
		if !isAlpha(r) && !isDigit(r) {
			return fmt.Errorf("%w: %q contains non-alphanumeric character %q", ErrMalformedCode, s, r)
		}
	}

	return nil
}

// Contains reports whether token covers code: either an exact match, or the
// code begins with the token as a literal prefix. A token can simultaneously
// be a standalone code and a category prefix, so both checks apply.
func Contains(token string, code Code) bool {
	if token == "" {
		return false
	}

	return string(code) == token || strings.HasPrefix(string(code), token)
}

// Specificity is the precedence weight of a token: longer tokens name
// narrower sets of codes and win over shorter ones during resolution.
func Specificity(token string) int {
	return len(token)
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
