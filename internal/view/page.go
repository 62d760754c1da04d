package view

// EngineOption is one entry of the engine selector.
type EngineOption struct {
	ID       string
	Name     string
	Selected bool
}

// Tab is one modality link of the results header.
type Tab struct {
	Label  string
	URL    string
	Active bool
}

// Message is a terminal page-level notice (empty results, input error,
// rate-limit fallback, transport error). LinkURL is optional.
type Message struct {
	Title    string
	Body     string
	LinkURL  string
	LinkText string
}

// HomePage is the template model of the landing page.
type HomePage struct {
	Title    string
	Theme    string
	Safe     string
	Language string
	Engines  []EngineOption
}

// ResultsPage is the template model of a results page. Exactly one of the
// item slices is populated, matching Modality; Message is set instead when
// the page shows a terminal notice.
type ResultsPage struct {
	Title    string
	Theme    string
	Query    string
	Modality string
	Safe     string
	Language string
	Engines  []EngineOption
	Tabs     []Tab
	Web      []WebItem
	Images   []ImageItem
	Videos   []VideoItem
	Infobox  *Infobox
	Links    []PageLink
	Message  *Message
	TookMS   int64
}

// HasResults reports whether any result items are present.
func (p *ResultsPage) HasResults() bool {
	return len(p.Web) > 0 || len(p.Images) > 0 || len(p.Videos) > 0
}
