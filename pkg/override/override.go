// Package override implements path-scoped rule overrides: select/ignore
// deltas that apply only to files matching a glob pattern.
package override

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/finchley/lintgate/pkg/rule"
)

// ErrInvalidPattern is returned when an override path pattern does not parse.
var ErrInvalidPattern = errors.New("invalid path pattern")

// Override scopes a select/ignore delta to files matching a glob pattern.
// Patterns are segment-boundary aware: `*` and `?` match within a path
// segment, `**` matches across segments.
//
// The pattern is validated and the delta resolved once at construction;
// [Override.MatchPath] and the local predicate are pure afterwards.
type Override struct {
	pred rule.EnabledPredicate

	// Pattern is the glob that scopes this override.
	Pattern string `json:"pattern" jsonschema:"title=Path Pattern"`
	// Select is the select-token delta applied within the scope.
	Select []string `json:"select,omitempty" jsonschema:"title=Select Delta"`
	// Ignore is the ignore-token delta applied within the scope.
	Ignore []string `json:"ignore,omitempty" jsonschema:"title=Ignore Delta"`

	touched []string
}

// New creates an [Override], validating the glob pattern and resolving the
// delta against the resolver. An unparseable pattern fails here, at load
// time, with the offending pattern quoted.
func New(r *rule.Resolver, pattern string, selectTokens, ignoreTokens []string) (*Override, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	selected := r.Prune("override select", selectTokens)
	ignored := r.Prune("override ignore", ignoreTokens)

	touched := make([]string, 0, len(selected)+len(ignored))
	touched = append(touched, selected...)
	touched = append(touched, ignored...)

	return &Override{
		Pattern: pattern,
		Select:  selectTokens,
		Ignore:  ignoreTokens,
		pred:    rule.ResolveTokens(selected, ignored),
		touched: touched,
	}, nil
}

// MustNew creates an [Override] and panics on an invalid pattern.
func MustNew(r *rule.Resolver, pattern string, selectTokens, ignoreTokens []string) *Override {
	o, err := New(r, pattern, selectTokens, ignoreTokens)
	if err != nil {
		panic(err)
	}

	return o
}

// MatchPath reports whether the file path falls inside this override's scope.
// Paths are normalized to forward slashes before matching.
func (o *Override) MatchPath(path string) bool {
	ok, err := doublestar.Match(o.Pattern, filepath.ToSlash(path))
	if err != nil {
		// The pattern was validated at construction.
		return false
	}

	return ok
}

// Touches reports whether this override speaks to the code: some token of
// its own delta contains it. Codes the override does not touch retain the
// base verdict during composition.
func (o *Override) Touches(code rule.Code) bool {
	return rule.Touches(o.touched, code)
}

// Verdict is the override's locally-resolved decision for a code it touches.
func (o *Override) Verdict(code rule.Code) bool {
	return o.pred(code)
}

// Match returns the overrides whose scope includes the file path, preserving
// declaration order.
func Match(path string, overrides []*Override) []*Override {
	var matching []*Override
	for _, o := range overrides {
		if o.MatchPath(path) {
			matching = append(matching, o)
		}
	}

	return matching
}

// Compose layers matching overrides on top of a base predicate. Each
// override's verdict replaces the base verdict for codes its own tokens
// match; later overrides take precedence over earlier ones. With no
// matching overrides the base predicate is returned unchanged.
func Compose(base rule.EnabledPredicate, matching []*Override) rule.EnabledPredicate {
	if len(matching) == 0 {
		return base
	}

	return func(code rule.Code) bool {
		verdict := base(code)
		for _, o := range matching {
			if o.Touches(code) {
				verdict = o.Verdict(code)
			}
		}

		return verdict
	}
}
