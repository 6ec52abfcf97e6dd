package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchley/lintgate/pkg/rule"
)

func testCatalog(t *testing.T) *rule.Catalog {
	t.Helper()

	return rule.MustNewCatalog(
		"B019",
		"E501", "E741",
		"F401",
		"PLC0415", "PLR0912", "PLR0915",
		"W291",
	)
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		selectTokens []string
		ignoreTokens []string
		enabled      []rule.Code
		disabled     []rule.Code
	}{
		{
			name:         "default deny without select",
			selectTokens: []string{},
			ignoreTokens: []string{},
			disabled:     []rule.Code{"E501", "PLR0912", "B019"},
		},
		{
			name:         "family select enables covered codes",
			selectTokens: []string{"E"},
			enabled:      []rule.Code{"E501", "E741"},
			disabled:     []rule.Code{"W291", "F401"},
		},
		{
			name:         "specific ignore beats broad select",
			selectTokens: []string{"PL"},
			ignoreTokens: []string{"PLR0912"},
			enabled:      []rule.Code{"PLC0415", "PLR0915"},
			disabled:     []rule.Code{"PLR0912"},
		},
		{
			name:         "specific select beats broad ignore",
			selectTokens: []string{"PLR0912"},
			ignoreTokens: []string{"PL"},
			enabled:      []rule.Code{"PLR0912"},
			disabled:     []rule.Code{"PLC0415"},
		},
		{
			name:         "equal specificity resolves to ignore",
			selectTokens: []string{"E501"},
			ignoreTokens: []string{"E501"},
			disabled:     []rule.Code{"E501"},
		},
		{
			name:         "equal family specificity resolves to ignore",
			selectTokens: []string{"E"},
			ignoreTokens: []string{"E"},
			disabled:     []rule.Code{"E501", "E741"},
		},
		{
			name:         "ignore without select stays denied",
			selectTokens: []string{},
			ignoreTokens: []string{"E"},
			disabled:     []rule.Code{"E501"},
		},
		{
			name:         "most specific select token wins among several",
			selectTokens: []string{"PL", "PLR"},
			ignoreTokens: []string{"PLR0912"},
			enabled:      []rule.Code{"PLR0915"},
			disabled:     []rule.Code{"PLR0912"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := rule.NewResolver(testCatalog(t))
			pred := r.Resolve(tt.selectTokens, tt.ignoreTokens)

			for _, code := range tt.enabled {
				assert.True(t, pred(code), "expected %s enabled", code)
			}
			for _, code := range tt.disabled {
				assert.False(t, pred(code), "expected %s disabled", code)
			}
		})
	}
}

func TestResolverPrune(t *testing.T) {
	t.Parallel()

	t.Run("unknown tokens drop with warning", func(t *testing.T) {
		t.Parallel()

		r := rule.NewResolver(testCatalog(t))
		pruned := r.Prune("select", []string{"E", "ZZ9", "PLR"})
		assert.Equal(t, []string{"E", "PLR"}, pruned)
	})

	t.Run("empty catalog disables pruning", func(t *testing.T) {
		t.Parallel()

		r := rule.NewResolver(nil)
		pruned := r.Prune("select", []string{"E", "ZZ9"})
		assert.Equal(t, []string{"E", "ZZ9"}, pruned)
	})
}

func TestResolvePredicateIsStable(t *testing.T) {
	t.Parallel()

	r := rule.NewResolver(testCatalog(t))
	pred := r.Resolve([]string{"PL"}, []string{"PLR0912"})

	first := pred("PLR0912")
	for range 100 {
		require.Equal(t, first, pred("PLR0912"))
	}
}

func TestLongestMatch(t *testing.T) {
	t.Parallel()

	token, spec := rule.LongestMatch([]string{"PL", "PLR", "E"}, "PLR0912")
	assert.Equal(t, "PLR", token)
	assert.Equal(t, 3, spec)

	token, spec = rule.LongestMatch([]string{"W"}, "E501")
	assert.Empty(t, token)
	assert.Equal(t, -1, spec)
}

func TestVetoSet(t *testing.T) {
	t.Parallel()

	v := rule.NewVetoSet([]string{"B", "E501"})

	assert.True(t, v.Vetoes("B019"))
	assert.True(t, v.Vetoes("E501"))
	assert.False(t, v.Vetoes("E741"))

	var nilSet *rule.VetoSet
	assert.False(t, nilSet.Vetoes("B019"))
}
