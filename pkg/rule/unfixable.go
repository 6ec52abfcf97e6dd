package rule

// VetoSet is a set of tokens whose covered codes are exempt from automatic
// correction. The veto is independent of enablement: it can only turn a
// fixable decision off, never change whether the code is surfaced.
type VetoSet struct {
	tokens []string
}

// NewVetoSet creates a [VetoSet] from the given tokens.
func NewVetoSet(tokens []string) *VetoSet {
	return &VetoSet{tokens: tokens}
}

// Vetoes reports whether any token in the set contains the code.
func (v *VetoSet) Vetoes(code Code) bool {
	if v == nil {
		return false
	}

	return Touches(v.tokens, code)
}

// Tokens returns the raw token list.
func (v *VetoSet) Tokens() []string {
	if v == nil {
		return nil
	}

	return v.tokens
}
