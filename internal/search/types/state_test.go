package types

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDefaults = StateDefaults{
	Safe:     SafeStrict,
	Language: "en-GB",
	Engine:   "duckduckgo",
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		want   PageState
	}{
		{
			name: "full parameter set",
			params: url.Values{
				"q":      {"go http client"},
				"safe":   {"off"},
				"page":   {"3"},
				"lang":   {"de"},
				"engine": {"brave"},
				"failed": {"1"},
			},
			want: PageState{
				Query:      "go http client",
				Safe:       SafeOff,
				Page:       3,
				Language:   "de",
				Engine:     "brave",
				Modality:   ModalityWeb,
				FailedOnce: true,
			},
		},
		{
			name:   "empty parameters fall back to defaults",
			params: url.Values{},
			want: PageState{
				Safe:     SafeStrict,
				Language: "en-GB",
				Engine:   "duckduckgo",
				Modality: ModalityWeb,
			},
		},
		{
			name: "malformed values degrade",
			params: url.Values{
				"q":    {"cats"},
				"safe": {"moderate"},
				"page": {"two"},
				"lang": {"!!"},
			},
			want: PageState{
				Query:    "cats",
				Safe:     SafeStrict,
				Page:     0,
				Language: "en-GB",
				Engine:   "duckduckgo",
				Modality: ModalityWeb,
			},
		},
		{
			name: "negative page degrades to zero",
			params: url.Values{
				"page": {"-2"},
			},
			want: PageState{
				Safe:     SafeStrict,
				Language: "en-GB",
				Engine:   "duckduckgo",
				Modality: ModalityWeb,
			},
		},
		{
			name: "language tag is canonicalized",
			params: url.Values{
				"lang": {"en-gb"},
			},
			want: PageState{
				Safe:     SafeStrict,
				Language: "en-GB",
				Engine:   "duckduckgo",
				Modality: ModalityWeb,
			},
		},
		{
			name: "legacy true retry marker",
			params: url.Values{
				"failed": {"true"},
			},
			want: PageState{
				Safe:       SafeStrict,
				Language:   "en-GB",
				Engine:     "duckduckgo",
				Modality:   ModalityWeb,
				FailedOnce: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseState(ModalityWeb, tt.params, testDefaults)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageState_Values(t *testing.T) {
	s := PageState{
		Query:    "cats",
		Safe:     SafeStrict,
		Page:     2,
		Language: "en-GB",
		Engine:   "duckduckgo",
		Modality: ModalityWeb,
	}

	v := s.Values()
	assert.Equal(t, "cats", v.Get(ParamQuery))
	assert.Equal(t, "strict", v.Get(ParamSafe))
	assert.Equal(t, "2", v.Get(ParamPage))
	assert.Equal(t, "en-GB", v.Get(ParamLanguage))
	assert.Equal(t, "duckduckgo", v.Get(ParamEngine))
	assert.False(t, v.Has(ParamFailed))

	v = s.WithFailed().Values()
	assert.Equal(t, "1", v.Get(ParamFailed))
}

func TestPageState_RoundTrip(t *testing.T) {
	s := PageState{
		Query:      "weather in london",
		Safe:       SafeOff,
		Page:       5,
		Language:   "en-GB",
		Engine:     "brave",
		Modality:   ModalityVideo,
		FailedOnce: true,
	}

	got := ParseState(ModalityVideo, s.Values(), testDefaults)
	assert.Equal(t, s, got)
}

func TestPageState_URL(t *testing.T) {
	s := PageState{
		Query:    "cats",
		Safe:     SafeStrict,
		Language: "en-GB",
		Engine:   "duckduckgo",
		Modality: ModalityImage,
	}

	u := s.URL()
	assert.Equal(t, "/images?engine=duckduckgo&lang=en-GB&page=0&q=cats&safe=strict", u)
}

func TestPageState_WithCopies(t *testing.T) {
	s := PageState{Query: "cats", Page: 1, Modality: ModalityWeb}

	next := s.WithPage(7)
	marked := s.WithFailed()

	assert.Equal(t, 7, next.Page)
	assert.True(t, marked.FailedOnce)

	// Originals are untouched.
	assert.Equal(t, 1, s.Page)
	assert.False(t, s.FailedOnce)
}

func TestModality_Path(t *testing.T) {
	assert.Equal(t, "/search", ModalityWeb.Path())
	assert.Equal(t, "/images", ModalityImage.Path())
	assert.Equal(t, "/videos", ModalityVideo.Path())
}
