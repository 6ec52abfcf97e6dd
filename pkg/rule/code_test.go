package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchley/lintgate/pkg/rule"
)

func TestCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    rule.Code
		wantErr bool
	}{
		{
			name: "full code",
			code: "PLR0912",
		},
		{
			name: "bare family",
			code: "E",
		},
		{
			name: "lowercase family",
			code: "mccabe",
		},
		{
			name:    "empty",
			code:    "",
			wantErr: true,
		},
		{
			name:    "leading digit",
			code:    "0912",
			wantErr: true,
		},
		{
			name:    "punctuation",
			code:    "E-501",
			wantErr: true,
		},
		{
			name:    "whitespace",
			code:    "E 501",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.code.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, rule.ErrMalformedCode)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCodeFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code rule.Code
		want string
	}{
		{code: "PLR0912", want: "PLR"},
		{code: "E501", want: "E"},
		{code: "B019", want: "B"},
		{code: "W", want: "W"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.code.Family())
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		code  rule.Code
		want  bool
	}{
		{
			name:  "exact match",
			token: "E501",
			code:  "E501",
			want:  true,
		},
		{
			name:  "family prefix",
			token: "E",
			code:  "E501",
			want:  true,
		},
		{
			name:  "subfamily prefix",
			token: "PLR",
			code:  "PLR0912",
			want:  true,
		},
		{
			name:  "token is both code and prefix",
			token: "PL",
			code:  "PLC0415",
			want:  true,
		},
		{
			name:  "unrelated family",
			token: "W",
			code:  "E501",
			want:  false,
		},
		{
			name:  "code is prefix of token",
			token: "E501",
			code:  "E5",
			want:  false,
		},
		{
			name:  "case sensitive",
			token: "e",
			code:  "E501",
			want:  false,
		},
		{
			name:  "empty token",
			token: "",
			code:  "E501",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rule.Contains(tt.token, tt.code))
		})
	}
}

func TestSpecificity(t *testing.T) {
	t.Parallel()

	assert.Greater(t, rule.Specificity("PLR0912"), rule.Specificity("PLR"))
	assert.Greater(t, rule.Specificity("PLR"), rule.Specificity("PL"))
	assert.Equal(t, rule.Specificity("E501"), rule.Specificity("W291"))
}
