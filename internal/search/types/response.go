package types

// Backend sentinel body texts. The wire protocol answers with one of these
// exact strings instead of a JSON payload; they never leak past response
// classification.
const (
	SentinelNoQuery   = "noquery"
	SentinelNoResults = "noresults"
)

// Status discriminates a classified backend response.
type Status int

const (
	StatusResults Status = iota
	StatusNoQuery
	StatusNoResults
)

func (s Status) String() string {
	switch s {
	case StatusResults:
		return "results"
	case StatusNoQuery:
		return "noquery"
	case StatusNoResults:
		return "noresults"
	default:
		return "unknown"
	}
}

// WebResult is one item of a web payload.
type WebResult struct {
	Title   string
	Href    string
	Body    string
	PageAge string // ISO 8601, often absent
}

// ImageResult is one item of an image payload.
type ImageResult struct {
	URL string
}

// VideoImages is the thumbnail set a video item may carry.
type VideoImages struct {
	Small  string
	Medium string
	Large  string
	Motion string
}

// Best returns the preferred thumbnail, smallest first, or "" when the item
// carries none.
func (v VideoImages) Best() string {
	for _, u := range []string{v.Small, v.Medium, v.Large, v.Motion} {
		if u != "" {
			return u
		}
	}
	return ""
}

// VideoResult is one item of a video payload. Every field is optional on
// the wire.
type VideoResult struct {
	Title     string
	Uploader  string
	Publisher string
	Content   string
	Images    VideoImages
}

// Outcome is one classified backend response: either a sentinel status or a
// results payload for exactly one modality.
type Outcome struct {
	Status   Status
	Modality Modality
	Web      []WebResult
	Images   []ImageResult
	Videos   []VideoResult
	Infobox  Infobox
	Took     int64 // milliseconds
}

// Empty reports whether a results payload carries zero items for its
// modality.
func (o *Outcome) Empty() bool {
	switch o.Modality {
	case ModalityImage:
		return len(o.Images) == 0
	case ModalityVideo:
		return len(o.Videos) == 0
	default:
		return len(o.Web) == 0
	}
}
