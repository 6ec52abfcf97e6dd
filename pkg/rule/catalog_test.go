package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchley/lintgate/pkg/rule"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid codes", func(t *testing.T) {
		t.Parallel()

		c, err := rule.NewCatalog("E501", "W291", "PLR0912")
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("malformed code fails at load", func(t *testing.T) {
		t.Parallel()

		c, err := rule.NewCatalog("E501", "")
		require.ErrorIs(t, err, rule.ErrMalformedCode)
		assert.Nil(t, c)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()

		c, err := rule.NewCatalog("E501", "E501", "E501")
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})
}

func TestCatalogRegister(t *testing.T) {
	t.Parallel()

	c := rule.MustNewCatalog("E501")

	require.NoError(t, c.Register("E501", "F401"))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Known("F401"))

	require.ErrorIs(t, c.Register("not a code!"), rule.ErrMalformedCode)
}

func TestCatalogRecognizes(t *testing.T) {
	t.Parallel()

	c := rule.MustNewCatalog("E501", "E741", "PLC0415", "PLR0912", "PLR0915", "W291")

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "exact code",
			token: "E501",
			want:  true,
		},
		{
			name:  "family token",
			token: "E",
			want:  true,
		},
		{
			name:  "shared family prefix",
			token: "PL",
			want:  true,
		},
		{
			name:  "subfamily token",
			token: "PLR",
			want:  true,
		},
		{
			name:  "unknown family",
			token: "Q",
			want:  false,
		},
		{
			name:  "unknown specific code",
			token: "E999",
			want:  false,
		},
		{
			name:  "empty token",
			token: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, c.Recognizes(tt.token))
		})
	}
}

func TestCatalogCovered(t *testing.T) {
	t.Parallel()

	c := rule.MustNewCatalog("E501", "E741", "PLC0415", "PLR0912", "PLR0915")

	assert.Equal(t, []rule.Code{"PLR0912", "PLR0915"}, c.Covered("PLR"))
	assert.Equal(t, []rule.Code{"PLC0415", "PLR0912", "PLR0915"}, c.Covered("PL"))
	assert.Equal(t, []rule.Code{"E501"}, c.Covered("E501"))
	assert.Empty(t, c.Covered("Q"))
}
