package config

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Keys of [tool.lintgate] that shape the rule policy rather than the
// parameter registry.
var rulesKeys = map[string]bool{
	"codes":            true,
	"select":           true,
	"ignore":           true,
	"unfixable":        true,
	"per-file-ignores": true,
}

// FromPyproject builds a [Config] from a pyproject.toml document.
//
// The `[tool.lintgate]` table carries the rule policy: `select`, `ignore`,
// `unfixable`, `codes`, and a `per-file-ignores` table mapping glob patterns
// to ignore deltas. Its remaining keys, its sub-tables, and every sibling
// `[tool.<name>]` table land in the parameter registry under the tool name.
func FromPyproject(data []byte) (*Config, error) {
	var document struct {
		Tool map[string]any `toml:"tool"`
	}

	err := toml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("%w: decode toml: %w", ErrMalformedConfig, err)
	}

	cfg := New()

	for tool, raw := range document.Tool {
		table, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: [tool.%s] is not a table", ErrMalformedConfig, tool)
		}

		if tool == "lintgate" {
			err = applyLintgateTable(cfg, table)
		} else {
			err = applyParamTable(cfg, tool, table)
		}
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func applyLintgateTable(cfg *Config, table map[string]any) error {
	var err error

	for key, value := range table {
		if !rulesKeys[key] {
			continue
		}

		switch key {
		case "codes":
			cfg.Rules.Codes, err = stringList("tool.lintgate."+key, value)
		case "select":
			cfg.Rules.Select, err = stringList("tool.lintgate."+key, value)
		case "ignore":
			cfg.Rules.Ignore, err = stringList("tool.lintgate."+key, value)
		case "unfixable":
			cfg.Rules.Unfixable, err = stringList("tool.lintgate."+key, value)
		case "per-file-ignores":
			cfg.Rules.Overrides, err = perFileIgnores(value)
		}

		if err != nil {
			return err
		}
	}

	rest := make(map[string]any, len(table))
	for key, value := range table {
		if !rulesKeys[key] {
			rest[key] = value
		}
	}

	return applyParamTable(cfg, "lintgate", rest)
}

// perFileIgnores converts a pattern -> token-list table into overrides.
// TOML tables are unordered, so patterns are sorted to keep override
// composition deterministic across loads.
func perFileIgnores(value any) ([]OverrideConfig, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: per-file-ignores must be a table of pattern = [tokens]", ErrMalformedConfig)
	}

	patterns := make([]string, 0, len(table))
	for pattern := range table {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	overrides := make([]OverrideConfig, 0, len(patterns))
	for _, pattern := range patterns {
		tokens, err := stringList("per-file-ignores."+pattern, table[pattern])
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, OverrideConfig{
			Pattern: pattern,
			Ignore:  tokens,
		})
	}

	return overrides, nil
}

// applyParamTable captures a tool table into the parameter registry. Nested
// tables become their own tool entry, named <tool>.<section>.
func applyParamTable(cfg *Config, tool string, table map[string]any) error {
	for key, value := range table {
		if nested, ok := value.(map[string]any); ok {
			err := applyParamTable(cfg, tool+"."+key, nested)
			if err != nil {
				return err
			}

			continue
		}

		if cfg.Params[tool] == nil {
			cfg.Params[tool] = map[string]any{}
		}

		cfg.Params[tool][key] = value
	}

	return nil
}

func stringList(location string, value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of strings", ErrMalformedConfig, location)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be an array of strings, got %T", ErrMalformedConfig, location, item)
		}

		out = append(out, s)
	}

	return out, nil
}
