// Package param stores tool-scoped scalar and composite settings: thresholds,
// naming patterns, formatting flags. Values are validated and patterns
// compiled exactly once when the registry is built; every getter afterwards
// is a pure read with a caller-supplied default for absent keys.
package param

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidValue is returned when a parameter fails load-time validation.
	ErrInvalidValue = errors.New("invalid parameter value")

	// ErrInvalidPattern is returned when a pattern parameter does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Pattern-valued keys follow the upstream naming convention, so the registry
// can tell a regex string from a plain string at load time.
var patternSuffixes = []string{"-rgx", "-regex"}

// Keys whose values must be positive integers.
var positiveIntKeys = map[string]bool{
	"line-length":     true,
	"max-line-length": true,
	"max-complexity":  true,
	"max-args":        true,
	"max-branches":    true,
	"max-statements":  true,
	"max-returns":     true,
}

// Registry holds resolved parameter values keyed by (tool, setting). It is
// immutable after [NewRegistry] returns and safe for concurrent reads.
type Registry struct {
	values   map[string]map[string]any
	patterns map[string]*regexp.Regexp // Keyed by tool + "." + key.
}

// NewRegistry builds a [Registry] from raw tool-scoped tables. Pattern keys
// are compiled and positive-integer keys validated here; a bad value fails
// loading with the tool, key, and raw value identified.
func NewRegistry(tables map[string]map[string]any) (*Registry, error) {
	r := &Registry{
		values:   make(map[string]map[string]any, len(tables)),
		patterns: make(map[string]*regexp.Regexp),
	}

	for tool, table := range tables {
		r.values[tool] = make(map[string]any, len(table))

		for key, value := range table {
			if isPatternKey(key) {
				raw, ok := value.(string)
				if !ok {
					return nil, fmt.Errorf("%w: %s.%s must be a string pattern, got %T", ErrInvalidValue, tool, key, value)
				}

				re, err := regexp.Compile(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: %s.%s = %q: %w", ErrInvalidPattern, tool, key, raw, err)
				}

				r.patterns[tool+"."+key] = re
			}

			if positiveIntKeys[key] {
				n, ok := toInt(value)
				if !ok || n <= 0 {
					return nil, fmt.Errorf("%w: %s.%s must be a positive integer, got %v", ErrInvalidValue, tool, key, value)
				}

				value = n
			}

			r.values[tool][key] = value
		}
	}

	return r, nil
}

// MustNewRegistry builds a [Registry] and panics on invalid values.
func MustNewRegistry(tables map[string]map[string]any) *Registry {
	r, err := NewRegistry(tables)
	if err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the raw configured value. Absence is normal, not an error.
func (r *Registry) Lookup(tool, key string) (any, bool) {
	table, ok := r.values[tool]
	if !ok {
		return nil, false
	}

	value, ok := table[key]

	return value, ok
}

// Int returns an integer parameter, or def when absent or not numeric.
func (r *Registry) Int(tool, key string, def int) int {
	value, ok := r.Lookup(tool, key)
	if !ok {
		return def
	}

	if n, ok := toInt(value); ok {
		return n
	}

	return def
}

// String returns a string parameter, or def when absent.
func (r *Registry) String(tool, key, def string) string {
	value, ok := r.Lookup(tool, key)
	if !ok {
		return def
	}

	if s, ok := value.(string); ok {
		return s
	}

	return def
}

// Bool returns a boolean parameter, or def when absent.
func (r *Registry) Bool(tool, key string, def bool) bool {
	value, ok := r.Lookup(tool, key)
	if !ok {
		return def
	}

	if b, ok := value.(bool); ok {
		return b
	}

	return def
}

// StringList returns a list-of-string parameter, or def when absent. YAML and
// TOML decoders hand lists back as []any, so both shapes are accepted.
func (r *Registry) StringList(tool, key string, def []string) []string {
	value, ok := r.Lookup(tool, key)
	if !ok {
		return def
	}

	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return def
			}

			out = append(out, s)
		}

		return out
	}

	return def
}

// Pattern returns the compiled pattern for a pattern-valued key, or nil when
// absent. Compilation happened during [NewRegistry]; this never fails.
func (r *Registry) Pattern(tool, key string) *regexp.Regexp {
	return r.patterns[tool+"."+key]
}

// Tools returns the tool names with at least one configured setting.
func (r *Registry) Tools() []string {
	tools := make([]string, 0, len(r.values))
	for tool := range r.values {
		tools = append(tools, tool)
	}

	return tools
}

// Keys returns the configured setting names for a tool.
func (r *Registry) Keys(tool string) []string {
	table, ok := r.values[tool]
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	return keys
}

func isPatternKey(key string) bool {
	for _, suffix := range patternSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}

	return false
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}

	return 0, false
}
