// Package policy composes rule resolution, path-scoped overrides, and the
// unfixable veto into a single per-(file, code) decision function.
package policy

import (
	"github.com/finchley/lintgate/pkg/override"
	"github.com/finchley/lintgate/pkg/rule"
)

// Decision is the resolved verdict for one (file, code) pair.
type Decision struct {
	// Enabled reports whether the diagnostic should be surfaced.
	Enabled bool `json:"enabled"`
	// Fixable reports whether the diagnostic may be auto-corrected. Never
	// true when Enabled is false.
	Fixable bool `json:"fixable"`
}

// Engine evaluates the loaded configuration. All state is fixed at
// construction; [Engine.Decide] is pure and safe for unbounded concurrent
// use.
type Engine struct {
	base      rule.EnabledPredicate
	veto      *rule.VetoSet
	selected  []string
	ignored   []string
	overrides []*override.Override
}

// NewEngine builds an [Engine]. The select and ignore token lists are pruned
// against the resolver's catalog and resolved once, here.
func NewEngine(r *rule.Resolver, selectTokens, ignoreTokens []string, overrides []*override.Override, unfixable *rule.VetoSet) *Engine {
	selected := r.Prune("select", selectTokens)
	ignored := r.Prune("ignore", ignoreTokens)

	return &Engine{
		base:      rule.ResolveTokens(selected, ignored),
		veto:      unfixable,
		selected:  selected,
		ignored:   ignored,
		overrides: overrides,
	}
}

// Decide resolves the verdict for a code occurring in a file. The global
// select/ignore decision is patched by overrides scoped to the file path, in
// declaration order, then the unfixable veto is applied.
func (e *Engine) Decide(filePath string, code rule.Code) Decision {
	pred := override.Compose(e.base, override.Match(filePath, e.overrides))
	enabled := pred(code)

	return Decision{
		Enabled: enabled,
		Fixable: enabled && !e.veto.Vetoes(code),
	}
}

// Overrides returns the configured overrides in declaration order.
func (e *Engine) Overrides() []*override.Override {
	return e.overrides
}
