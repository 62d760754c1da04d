package view

import (
	"html/template"

	"github.com/jakestbu/nilch/internal/search/types"
)

// Fixed substitutes for missing video metadata.
const (
	UntitledVideo   = "Untitled Video"
	UnknownCreator  = "Unknown Creator"
	UnknownPlatform = "Unknown Platform"
)

// VideoThumbnailFallback is served from the embedded static set when a
// video item carries no usable thumbnail.
const VideoThumbnailFallback = "/static/video-placeholder.svg"

// WebItem is one display-ready web result.
type WebItem struct {
	Title      string
	Href       string
	Host       string
	FaviconURL string
	Body       string
	PageAge    string
}

// ImageItem is one display-ready image result.
type ImageItem struct {
	URL string
}

// VideoItem is one display-ready video result.
type VideoItem struct {
	Title        string
	Uploader     string
	Platform     string
	ContentURL   string
	ThumbnailURL string
}

// Infobox is the display form of an instant-answer panel. Kind selects the
// variant's template block; a nil *Infobox renders nothing.
type Infobox struct {
	Kind      string
	Heading   string
	Subtitle  string
	Body      string        // plain text, escaped by the template
	BodyHTML  template.HTML // sanitized provider fragment
	SourceURL string
}

// Infobox template block selectors.
const (
	InfoboxKindCalc         = "calc"
	InfoboxKindDefinition   = "definition"
	InfoboxKindEncyclopedia = "encyclopedia"
)

// BuildWebItems normalizes web results for display: truncated title and
// snippet, display host, favicon via the icon service.
func BuildWebItems(results []types.WebResult, iconBase string) []WebItem {
	items := make([]WebItem, 0, len(results))
	for _, r := range results {
		host := hostOf(r.Href)
		items = append(items, WebItem{
			Title:      Truncate(r.Title, TitleLimit),
			Href:       r.Href,
			Host:       host,
			FaviconURL: FaviconURL(iconBase, host),
			Body:       Truncate(r.Body, BodyLimit),
			PageAge:    r.PageAge,
		})
	}
	return items
}

// BuildImageItems normalizes image results for display.
func BuildImageItems(results []types.ImageResult) []ImageItem {
	items := make([]ImageItem, 0, len(results))
	for _, r := range results {
		if r.URL == "" {
			continue
		}
		items = append(items, ImageItem{URL: r.URL})
	}
	return items
}

// BuildVideoItems normalizes video results for display, substituting the
// fixed placeholder strings for missing metadata and walking the thumbnail
// sizes smallest-first.
func BuildVideoItems(results []types.VideoResult) []VideoItem {
	items := make([]VideoItem, 0, len(results))
	for _, r := range results {
		item := VideoItem{
			Title:        Truncate(r.Title, TitleLimit),
			Uploader:     r.Uploader,
			Platform:     r.Publisher,
			ContentURL:   r.Content,
			ThumbnailURL: r.Images.Best(),
		}
		if item.Title == "" {
			item.Title = UntitledVideo
		}
		if item.Uploader == "" {
			item.Uploader = UnknownCreator
		}
		if item.Platform == "" {
			item.Platform = UnknownPlatform
		}
		if item.ThumbnailURL == "" {
			item.ThumbnailURL = VideoThumbnailFallback
		}
		items = append(items, item)
	}
	return items
}

// BuildInfobox maps a classified infobox onto its display form. The None
// variant and variants missing their payload yield nil, which the template
// treats as "no panel".
func BuildInfobox(box types.Infobox) *Infobox {
	switch box.Kind {
	case types.InfoboxCalc:
		if box.Calc == nil {
			return nil
		}
		return &Infobox{
			Kind:    InfoboxKindCalc,
			Heading: box.Calc.Equation,
			Body:    box.Calc.Result,
		}
	case types.InfoboxDefinition:
		if box.Definition == nil {
			return nil
		}
		return &Infobox{
			Kind:      InfoboxKindDefinition,
			Heading:   box.Definition.Word,
			Subtitle:  box.Definition.PartOfSpeech,
			BodyHTML:  SanitizeHTML(box.Definition.Definition),
			SourceURL: box.Definition.SourceURL,
		}
	case types.InfoboxEncyclopedia:
		if box.Encyclopedia == nil {
			return nil
		}
		return &Infobox{
			Kind:      InfoboxKindEncyclopedia,
			Heading:   box.Encyclopedia.Title,
			BodyHTML:  SanitizeHTML(box.Encyclopedia.Summary),
			SourceURL: box.Encyclopedia.SourceURL,
		}
	}
	return nil
}
