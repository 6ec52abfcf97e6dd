package policy

import (
	"github.com/finchley/lintgate/pkg/override"
	"github.com/finchley/lintgate/pkg/rule"
)

// OverrideTrace records one override's contribution to a decision.
type OverrideTrace struct {
	// Pattern is the override's path pattern.
	Pattern string `json:"pattern"`
	// Applied is true when the override matched the file and touched the code.
	Applied bool `json:"applied"`
	// Verdict is the override's local verdict; meaningful only when Applied.
	Verdict bool `json:"verdict"`
}

// Explanation breaks a [Decision] down into the tokens and overrides that
// produced it.
type Explanation struct {
	Decision Decision `json:"decision"`
	// SelectToken is the most specific global select token containing the
	// code, empty when none matched.
	SelectToken string `json:"selectToken,omitempty"`
	// IgnoreToken is the most specific global ignore token containing the
	// code, empty when none matched.
	IgnoreToken string `json:"ignoreToken,omitempty"`
	// Overrides traces every override whose pattern matched the file.
	Overrides []OverrideTrace `json:"overrides,omitempty"`
	// UnfixableToken is the unfixable token vetoing correction, if any.
	UnfixableToken string `json:"unfixableToken,omitempty"`
}

// Explain resolves a decision and reports how it was reached. It evaluates
// the same state as [Engine.Decide] and always agrees with it.
func (e *Engine) Explain(filePath string, code rule.Code) Explanation {
	selToken, _ := rule.LongestMatch(e.selected, code)
	ignToken, _ := rule.LongestMatch(e.ignored, code)

	matching := override.Match(filePath, e.overrides)

	traces := make([]OverrideTrace, 0, len(matching))
	for _, o := range matching {
		trace := OverrideTrace{Pattern: o.Pattern}
		if o.Touches(code) {
			trace.Applied = true
			trace.Verdict = o.Verdict(code)
		}

		traces = append(traces, trace)
	}

	decision := e.Decide(filePath, code)

	var vetoToken string
	if decision.Enabled && !decision.Fixable {
		vetoToken, _ = rule.LongestMatch(e.veto.Tokens(), code)
	}

	return Explanation{
		Decision:       decision,
		SelectToken:    selToken,
		IgnoreToken:    ignToken,
		Overrides:      traces,
		UnfixableToken: vetoToken,
	}
}
