package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakestbu/nilch/internal/search/types"
)

func TestClassify_Web(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus types.Status
		wantItems  int
		wantKind   types.InfoboxKind
		wantErr    bool
	}{
		{
			name:       "bare noquery sentinel",
			body:       "noquery",
			wantStatus: types.StatusNoQuery,
		},
		{
			name:       "bare noresults sentinel",
			body:       "noresults",
			wantStatus: types.StatusNoResults,
		},
		{
			name:       "json wrapped noquery",
			body:       `{"error": "noquery"}`,
			wantStatus: types.StatusNoQuery,
		},
		{
			name:       "json wrapped noresults",
			body:       `{"error": "noresults"}`,
			wantStatus: types.StatusNoResults,
		},
		{
			name:       "payload with string null infobox",
			body:       `{"results": [{"title": "a", "href": "https://a", "body": "aa"}], "infobox": "null"}`,
			wantStatus: types.StatusResults,
			wantItems:  1,
			wantKind:   types.InfoboxNone,
		},
		{
			name:       "payload with json null infobox",
			body:       `{"results": [{"title": "a", "href": "https://a", "body": "aa"}], "infobox": null}`,
			wantStatus: types.StatusResults,
			wantItems:  1,
			wantKind:   types.InfoboxNone,
		},
		{
			name:       "payload with absent infobox",
			body:       `{"results": [{"title": "a", "href": "https://a", "body": "aa"}]}`,
			wantStatus: types.StatusResults,
			wantItems:  1,
			wantKind:   types.InfoboxNone,
		},
		{
			name:       "payload with unknown infotype",
			body:       `{"results": [], "infobox": {"infotype": "weather", "temp": "12C"}}`,
			wantStatus: types.StatusResults,
			wantKind:   types.InfoboxNone,
		},
		{
			name:       "empty results with string null infobox",
			body:       `{"results": [], "infobox": "null"}`,
			wantStatus: types.StatusResults,
			wantItems:  0,
			wantKind:   types.InfoboxNone,
		},
		{
			name:       "calc infobox",
			body:       `{"results": [], "infobox": {"infotype": "calc", "equ": "2+2", "result": "4"}}`,
			wantStatus: types.StatusResults,
			wantKind:   types.InfoboxCalc,
		},
		{
			name:       "definition infobox",
			body:       `{"results": [], "infobox": {"infotype": "definition", "word": "cat", "type": "noun", "definition": "A small felid.", "url": "https://en.wiktionary.org/wiki/cat"}}`,
			wantStatus: types.StatusResults,
			wantKind:   types.InfoboxDefinition,
		},
		{
			name:       "wikipedia infobox",
			body:       `{"results": [], "infobox": {"infotype": "wikipedia", "title": "Cat", "info": "The cat is a domestic species.", "url": "https://en.wikipedia.org/wiki/Cat"}}`,
			wantStatus: types.StatusResults,
			wantKind:   types.InfoboxEncyclopedia,
		},
		{
			name:    "not json at all",
			body:    "<html>Bad Gateway</html>",
			wantErr: true,
		},
		{
			name:    "json without results",
			body:    `{"foo": 1}`,
			wantErr: true,
		},
		{
			name:    "results of the wrong shape",
			body:    `{"results": 5}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := classify(types.ModalityWeb, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, outcome)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, types.ModalityWeb, outcome.Modality)
			assert.Len(t, outcome.Web, tt.wantItems)
			assert.Equal(t, tt.wantKind, outcome.Infobox.Kind)
		})
	}
}

func TestClassify_InfoboxFields(t *testing.T) {
	t.Run("calc", func(t *testing.T) {
		outcome, err := classify(types.ModalityWeb, []byte(`{"results": [], "infobox": {"infotype": "calc", "equ": "6*7", "result": "42"}}`))
		require.NoError(t, err)
		require.NotNil(t, outcome.Infobox.Calc)
		assert.Equal(t, "6*7", outcome.Infobox.Calc.Equation)
		assert.Equal(t, "42", outcome.Infobox.Calc.Result)
	})

	t.Run("definition", func(t *testing.T) {
		outcome, err := classify(types.ModalityWeb, []byte(`{"results": [], "infobox": {"infotype": "definition", "word": "gopher", "type": "noun", "definition": "A burrowing rodent.", "url": "https://en.wiktionary.org/wiki/gopher"}}`))
		require.NoError(t, err)
		require.NotNil(t, outcome.Infobox.Definition)
		assert.Equal(t, "gopher", outcome.Infobox.Definition.Word)
		assert.Equal(t, "noun", outcome.Infobox.Definition.PartOfSpeech)
		assert.Equal(t, "A burrowing rodent.", outcome.Infobox.Definition.Definition)
		assert.Equal(t, "https://en.wiktionary.org/wiki/gopher", outcome.Infobox.Definition.SourceURL)
	})

	t.Run("wikipedia", func(t *testing.T) {
		outcome, err := classify(types.ModalityWeb, []byte(`{"results": [], "infobox": {"infotype": "wikipedia", "title": "Gopher", "info": "Gophers are rodents.", "url": "https://en.wikipedia.org/wiki/Gopher"}}`))
		require.NoError(t, err)
		require.NotNil(t, outcome.Infobox.Encyclopedia)
		assert.Equal(t, "Gopher", outcome.Infobox.Encyclopedia.Title)
		assert.Equal(t, "Gophers are rodents.", outcome.Infobox.Encyclopedia.Summary)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Gopher", outcome.Infobox.Encyclopedia.SourceURL)
	})
}

func TestClassify_WebFields(t *testing.T) {
	body := `{"results": [{"title": "Go", "href": "https://go.dev", "body": "The Go programming language.", "page_age": "2024-03-01T00:00:00"}], "infobox": "null"}`

	outcome, err := classify(types.ModalityWeb, []byte(body))
	require.NoError(t, err)
	require.Len(t, outcome.Web, 1)

	got := outcome.Web[0]
	assert.Equal(t, "Go", got.Title)
	assert.Equal(t, "https://go.dev", got.Href)
	assert.Equal(t, "The Go programming language.", got.Body)
	assert.Equal(t, "2024-03-01T00:00:00", got.PageAge)
}

func TestClassify_Images(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantURLs []string
		wantErr  bool
	}{
		{
			name:     "bare array with image keys",
			body:     `[{"image": "https://x/a.png"}, {"image": "https://x/b.png"}]`,
			wantURLs: []string{"https://x/a.png", "https://x/b.png"},
		},
		{
			name:     "bare array with img keys",
			body:     `[{"url": "https://x", "img": "https://x/t.png"}]`,
			wantURLs: []string{"https://x/t.png"},
		},
		{
			name:     "envelope form",
			body:     `{"results": [{"image": "https://x/a.png"}]}`,
			wantURLs: []string{"https://x/a.png"},
		},
		{
			name:     "image key wins over img",
			body:     `[{"image": "https://x/full.png", "img": "https://x/thumb.png"}]`,
			wantURLs: []string{"https://x/full.png"},
		},
		{
			name:     "items without a usable key are dropped",
			body:     `[{"image": "https://x/a.png"}, {"title": "stray"}]`,
			wantURLs: []string{"https://x/a.png"},
		},
		{
			name:    "object without results",
			body:    `{"foo": "bar"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    "oops",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := classify(types.ModalityImage, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, types.StatusResults, outcome.Status)
			require.Len(t, outcome.Images, len(tt.wantURLs))
			for i, want := range tt.wantURLs {
				assert.Equal(t, want, outcome.Images[i].URL)
			}
		})
	}
}

func TestClassify_Videos(t *testing.T) {
	body := `{"results": [
		{"title": "Writing a search engine", "uploader": "jake", "publisher": "YouTube", "content": "https://youtube.com/watch?v=abc", "images": {"small": "https://i/s.jpg", "medium": "https://i/m.jpg"}},
		{"content": "https://youtube.com/watch?v=def"}
	], "infobox": "null"}`

	outcome, err := classify(types.ModalityVideo, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, types.StatusResults, outcome.Status)
	require.Len(t, outcome.Videos, 2)

	first := outcome.Videos[0]
	assert.Equal(t, "Writing a search engine", first.Title)
	assert.Equal(t, "jake", first.Uploader)
	assert.Equal(t, "YouTube", first.Publisher)
	assert.Equal(t, "https://i/s.jpg", first.Images.Best())

	second := outcome.Videos[1]
	assert.Empty(t, second.Title)
	assert.Empty(t, second.Images.Best())
}
