package bang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	table, err := NewTable([]Bang{
		{Trigger: "gh", Domain: "github.com", URL: "https://github.com/search?q={{{s}}}"},
		{Trigger: "w", Domain: "en.wikipedia.org", URL: "https://en.wikipedia.org/wiki/{{{s}}}"},
		{Trigger: "hn", Domain: "news.ycombinator.com"},
	})
	require.NoError(t, err)

	return NewResolver(table)
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name       string
		raw        string
		wantTarget string
		wantOK     bool
	}{
		{
			name:       "trigger with remainder",
			raw:        "!gh nilch",
			wantTarget: "https://github.com/search?q=nilch",
			wantOK:     true,
		},
		{
			name:       "remainder with spaces is percent-encoded",
			raw:        "!gh go http client",
			wantTarget: "https://github.com/search?q=go%20http%20client",
			wantOK:     true,
		},
		{
			name:       "remainder with reserved characters",
			raw:        "!w C++ (language)",
			wantTarget: "https://en.wikipedia.org/wiki/C%2B%2B%20%28language%29",
			wantOK:     true,
		},
		{
			name:       "trigger only navigates to bare domain",
			raw:        "!gh",
			wantTarget: "https://github.com",
			wantOK:     true,
		},
		{
			name:       "trailing whitespace with empty remainder navigates to bare domain",
			raw:        "!gh ",
			wantTarget: "https://github.com",
			wantOK:     true,
		},
		{
			name:       "domain-only bang ignores remainder",
			raw:        "!hn rust",
			wantTarget: "https://news.ycombinator.com",
			wantOK:     true,
		},
		{
			name:   "unknown trigger falls through",
			raw:    "!zzz something",
			wantOK: false,
		},
		{
			name:   "lookup is case-sensitive",
			raw:    "!GH nilch",
			wantOK: false,
		},
		{
			name:   "no bang prefix",
			raw:    "gh nilch",
			wantOK: false,
		},
		{
			name:   "bare exclamation mark",
			raw:    "!",
			wantOK: false,
		},
		{
			name:   "digits break the trigger shape",
			raw:    "!gh2 nilch",
			wantOK: false,
		},
		{
			name:   "empty query",
			raw:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := r.Resolve(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTarget, target)
			} else {
				assert.Empty(t, target)
			}
		})
	}
}

func TestResolver_ResolveDefaultTable(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	target, ok := NewResolver(table).Resolve("!gh nilch")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/search?q=nilch", target)
}
