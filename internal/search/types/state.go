package types

import (
	"net/url"
	"strconv"

	"golang.org/x/text/language"
)

// Modality selects one of the three result kinds.
type Modality string

const (
	ModalityWeb   Modality = "web"
	ModalityImage Modality = "image"
	ModalityVideo Modality = "video"
)

// Path returns the page path serving this modality.
func (m Modality) Path() string {
	switch m {
	case ModalityImage:
		return "/images"
	case ModalityVideo:
		return "/videos"
	default:
		return "/search"
	}
}

// SafeMode is the backend's safe-search switch.
type SafeMode string

const (
	SafeStrict SafeMode = "strict"
	SafeOff    SafeMode = "off"
)

// Navigation parameter names.
const (
	ParamQuery    = "q"
	ParamSafe     = "safe"
	ParamPage     = "page"
	ParamLanguage = "lang"
	ParamEngine   = "engine"
	ParamFailed   = "failed"
)

// StateDefaults carries the fallback values used for absent or malformed
// navigation parameters.
type StateDefaults struct {
	Safe     SafeMode
	Language string
	Engine   string
}

// PageState is the complete navigation state of one page load. It is built
// fresh from the request's query parameters, serializes losslessly back to
// them, and is never persisted; the one-shot retry marker rides along as
// FailedOnce.
type PageState struct {
	Query      string
	Safe       SafeMode
	Page       int
	Language   string
	Engine     string
	Modality   Modality
	FailedOnce bool
}

// ParseState builds a PageState from raw navigation parameters, degrading
// malformed values to the given defaults.
func ParseState(m Modality, params url.Values, d StateDefaults) PageState {
	s := PageState{
		Query:    params.Get(ParamQuery),
		Safe:     d.Safe,
		Language: d.Language,
		Engine:   d.Engine,
		Modality: m,
	}

	if v := params.Get(ParamSafe); v == string(SafeStrict) || v == string(SafeOff) {
		s.Safe = SafeMode(v)
	}
	if p, err := strconv.Atoi(params.Get(ParamPage)); err == nil && p >= 0 {
		s.Page = p
	}
	if lang := NormalizeLanguage(params.Get(ParamLanguage)); lang != "" {
		s.Language = lang
	}
	if e := params.Get(ParamEngine); e != "" {
		s.Engine = e
	}
	s.FailedOnce = isRetryMarker(params.Get(ParamFailed))

	return s
}

// NormalizeLanguage canonicalizes a locale tag ("en-gb" becomes "en-GB"),
// returning "" when the tag cannot be parsed.
func NormalizeLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	return t.String()
}

func isRetryMarker(v string) bool {
	return v == "1" || v == "true"
}

// Values serializes the state back to navigation parameters. All fields are
// emitted so that links derived from a state preserve it completely; the
// retry marker appears only when set.
func (s PageState) Values() url.Values {
	v := url.Values{}
	v.Set(ParamQuery, s.Query)
	v.Set(ParamSafe, string(s.Safe))
	v.Set(ParamPage, strconv.Itoa(s.Page))
	if s.Language != "" {
		v.Set(ParamLanguage, s.Language)
	}
	if s.Engine != "" {
		v.Set(ParamEngine, s.Engine)
	}
	if s.FailedOnce {
		v.Set(ParamFailed, "1")
	}
	return v
}

// URL renders the state as a same-site navigation target.
func (s PageState) URL() string {
	return s.Modality.Path() + "?" + s.Values().Encode()
}

// WithPage returns a copy of the state pointing at page p.
func (s PageState) WithPage(p int) PageState {
	s.Page = p
	return s
}

// WithFailed returns a copy of the state carrying the one-shot retry marker.
func (s PageState) WithFailed() PageState {
	s.FailedOnce = true
	return s
}
