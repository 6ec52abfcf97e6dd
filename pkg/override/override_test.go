package override_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchley/lintgate/pkg/override"
	"github.com/finchley/lintgate/pkg/rule"
)

func testResolver(t *testing.T) *rule.Resolver {
	t.Helper()

	return rule.NewResolver(rule.MustNewCatalog(
		"B019",
		"E501", "E741",
		"F401",
		"PLR0912",
		"W291",
	))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid pattern", func(t *testing.T) {
		t.Parallel()

		o, err := override.New(testResolver(t), "tests/**", nil, []string{"E501"})
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, "tests/**", o.Pattern)
	})

	t.Run("invalid pattern fails at load", func(t *testing.T) {
		t.Parallel()

		o, err := override.New(testResolver(t), "tests/[", nil, []string{"E501"})
		require.ErrorIs(t, err, override.ErrInvalidPattern)
		assert.Contains(t, err.Error(), `"tests/["`)
		assert.Nil(t, o)
	})
}

func TestOverrideMatchPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{
			name:    "doublestar crosses segments",
			pattern: "tests/**",
			path:    "tests/unit/deep/foo.py",
			want:    true,
		},
		{
			name:    "doublestar direct child",
			pattern: "tests/**",
			path:    "tests/foo.py",
			want:    true,
		},
		{
			name:    "star stays within segment",
			pattern: "tests/*.py",
			path:    "tests/unit/foo.py",
			want:    false,
		},
		{
			name:    "star matches segment",
			pattern: "tests/*.py",
			path:    "tests/foo.py",
			want:    true,
		},
		{
			name:    "question mark single char",
			pattern: "src/v?.py",
			path:    "src/v1.py",
			want:    true,
		},
		{
			name:    "question mark not multi char",
			pattern: "src/v?.py",
			path:    "src/v12.py",
			want:    false,
		},
		{
			name:    "outside scope",
			pattern: "tests/**",
			path:    "src/foo.py",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := override.MustNew(testResolver(t), tt.pattern, nil, []string{"E501"})
			assert.Equal(t, tt.want, o.MatchPath(tt.path))
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	r := testResolver(t)
	overrides := []*override.Override{
		override.MustNew(r, "tests/**", nil, []string{"E501"}),
		override.MustNew(r, "src/**", nil, []string{"F401"}),
		override.MustNew(r, "tests/conftest.py", []string{"E501"}, nil),
	}

	matching := override.Match("tests/conftest.py", overrides)
	require.Len(t, matching, 2)
	assert.Equal(t, "tests/**", matching[0].Pattern)
	assert.Equal(t, "tests/conftest.py", matching[1].Pattern)

	assert.Empty(t, override.Match("docs/index.md", overrides))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	r := testResolver(t)
	base := r.Resolve([]string{"E", "F"}, nil)

	t.Run("no overrides returns base identity", func(t *testing.T) {
		t.Parallel()

		composed := override.Compose(base, nil)

		// The exact same predicate, not a copy.
		assert.Equal(t,
			reflect.ValueOf(base).Pointer(),
			reflect.ValueOf(composed).Pointer(),
		)
	})

	t.Run("override suppresses touched code only", func(t *testing.T) {
		t.Parallel()

		composed := override.Compose(base, []*override.Override{
			override.MustNew(r, "tests/**", nil, []string{"E501"}),
		})

		assert.False(t, composed("E501"))
		assert.True(t, composed("E741"), "untouched code keeps base verdict")
		assert.True(t, composed("F401"), "untouched code keeps base verdict")
	})

	t.Run("override can enable beyond base", func(t *testing.T) {
		t.Parallel()

		composed := override.Compose(base, []*override.Override{
			override.MustNew(r, "legacy/**", []string{"W291"}, nil),
		})

		assert.True(t, composed("W291"))
		assert.True(t, composed("E501"))
	})

	t.Run("later override wins for same code", func(t *testing.T) {
		t.Parallel()

		composed := override.Compose(base, []*override.Override{
			override.MustNew(r, "tests/**", nil, []string{"E501"}),
			override.MustNew(r, "tests/perf/**", []string{"E501"}, nil),
		})

		assert.True(t, composed("E501"))
	})
}
