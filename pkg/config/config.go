// Package config loads the lintgate configuration document and wires it into
// an immutable policy engine and parameter registry.
//
// Two document shapes are accepted: the native YAML configuration, validated
// against an embedded JSON schema, and a pyproject.toml carrying
// `[tool.lintgate]` tables. Both produce the same [Handle]; after loading,
// nothing is ever mutated.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/finchley/lintgate/pkg/override"
	"github.com/finchley/lintgate/pkg/param"
	"github.com/finchley/lintgate/pkg/policy"
	"github.com/finchley/lintgate/pkg/rule"
	"github.com/finchley/lintgate/pkg/schema"
)

//go:generate go run ../../internal/schemagen/main.go -o lintgate.schema.json

var (
	//go:embed lintgate.yaml
	defaultConfigYAML []byte

	//go:embed lintgate.schema.json
	schemaJSON []byte

	// DefaultValidator validates native configuration documents against the
	// embedded JSON schema.
	DefaultValidator = schema.MustNewValidator("/lintgate.schema.json", schemaJSON)

	// ErrMalformedConfig is returned for structural or type violations in
	// the configuration document.
	ErrMalformedConfig = errors.New("malformed configuration")
)

// Config is the root of the native configuration document.
type Config struct {
	// Rules selects and scopes diagnostic rules.
	Rules *RulesConfig `json:"rules,omitempty" jsonschema:"title=Rules"`
	// Params holds tool-scoped settings: thresholds, patterns, flags.
	Params map[string]map[string]any `json:"params,omitempty" jsonschema:"title=Parameters"`
}

// RulesConfig is the declarative rule policy.
type RulesConfig struct {
	// Codes extends the known-code catalog. Tokens in the other lists are
	// checked against this catalog; unknown tokens warn and match nothing.
	Codes []string `json:"codes,omitempty" jsonschema:"title=Known Codes"`
	// Select is the ordered allow-list of codes or category prefixes.
	Select []string `json:"select,omitempty" jsonschema:"title=Select"`
	// Ignore is the ordered deny-list of codes or category prefixes.
	Ignore []string `json:"ignore,omitempty" jsonschema:"title=Ignore"`
	// Unfixable lists tokens whose codes must never be auto-corrected.
	Unfixable []string `json:"unfixable,omitempty" jsonschema:"title=Unfixable"`
	// Overrides scope select/ignore deltas to files matching a glob pattern.
	Overrides []OverrideConfig `json:"overrides,omitempty" jsonschema:"title=Per-File Overrides"`
}

// OverrideConfig is one path-scoped select/ignore delta.
type OverrideConfig struct {
	// Pattern is a glob scoping the delta; `*` and `?` match within a path
	// segment, `**` across segments.
	Pattern string `json:"pattern" jsonschema:"title=Path Pattern,minLength=1"`
	// Select tokens added for matching files.
	Select []string `json:"select,omitempty" jsonschema:"title=Select Delta"`
	// Ignore tokens added for matching files.
	Ignore []string `json:"ignore,omitempty" jsonschema:"title=Ignore Delta"`
}

// New creates a [Config] with default values.
func New() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Rules == nil {
		c.Rules = &RulesConfig{}
	}

	if c.Params == nil {
		c.Params = map[string]map[string]any{}
	}
}

// Handle is the loaded, immutable configuration: the policy engine plus the
// parameter registry. It is safe to share across any number of goroutines.
type Handle struct {
	Engine *policy.Engine
	Params *param.Registry
	Config *Config
}

// Build validates the configuration and wires the engine and registry. All
// pattern compilation and token validation happens here; decisions made
// through the returned [Handle] cannot fail.
func (c *Config) Build() (*Handle, error) {
	c.EnsureDefaults()

	codes := make([]rule.Code, 0, len(c.Rules.Codes))
	for _, raw := range c.Rules.Codes {
		codes = append(codes, rule.Code(raw))
	}

	catalog, err := rule.NewCatalog(codes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	resolver := rule.NewResolver(catalog)

	overrides := make([]*override.Override, 0, len(c.Rules.Overrides))
	for _, oc := range c.Rules.Overrides {
		o, err := override.New(resolver, oc.Pattern, oc.Select, oc.Ignore)
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, o)
	}

	registry, err := param.NewRegistry(c.Params)
	if err != nil {
		return nil, err
	}

	unfixable := rule.NewVetoSet(resolver.Prune("unfixable", c.Rules.Unfixable))
	engine := policy.NewEngine(resolver, c.Rules.Select, c.Rules.Ignore, overrides, unfixable)

	return &Handle{
		Engine: engine,
		Params: registry,
		Config: c,
	}, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	loader := NewLoaderFromBytes(defaultConfigYAML, New, DefaultValidator)

	cfg, err := loader.Load()
	if err != nil {
		panic(fmt.Errorf("embedded default configuration: %w", err))
	}

	return cfg
}

// GetPath returns the configuration file path: $LINTGATE_CONFIG if set,
// otherwise lintgate.yaml under the user configuration directory.
func GetPath() string {
	if path := os.Getenv("LINTGATE_CONFIG"); path != "" {
		return path
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "lintgate.yaml"
	}

	return filepath.Join(base, "lintgate", "lintgate.yaml")
}

// Load reads and builds the configuration at path. A pyproject.toml is
// detected by basename and routed through the TOML ingestion; anything else
// is decoded as the native YAML document.
func Load(path string) (*Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	var cfg *Config
	if filepath.Base(path) == "pyproject.toml" {
		cfg, err = FromPyproject(data)
	} else {
		cfg, err = FromYAML(data)
	}
	if err != nil {
		return nil, err
	}

	return cfg.Build()
}

// FromYAML decodes and schema-validates a native configuration document.
func FromYAML(data []byte) (*Config, error) {
	loader := NewLoaderFromBytes(data, New, DefaultValidator)

	err := loader.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	return cfg, nil
}
