package types

// InfoboxKind tags the closed set of infobox variants.
type InfoboxKind int

const (
	InfoboxNone InfoboxKind = iota
	InfoboxCalc
	InfoboxDefinition
	InfoboxEncyclopedia
)

func (k InfoboxKind) String() string {
	switch k {
	case InfoboxCalc:
		return "calc"
	case InfoboxDefinition:
		return "definition"
	case InfoboxEncyclopedia:
		return "encyclopedia"
	default:
		return "none"
	}
}

// Wire discriminator values of the infobox payload.
const (
	InfotypeCalc         = "calc"
	InfotypeDefinition   = "definition"
	InfotypeEncyclopedia = "wikipedia"
)

// Infobox is the closed union of instant-answer panels. Exactly the field
// matching Kind is set. The zero value is the no-render None variant, which
// also absorbs absent payloads, the legacy "null" string, and unknown tags.
type Infobox struct {
	Kind         InfoboxKind
	Calc         *CalcInfobox
	Definition   *DefinitionInfobox
	Encyclopedia *EncyclopediaInfobox
}

// None reports whether the infobox renders nothing.
func (i Infobox) None() bool {
	return i.Kind == InfoboxNone
}

// CalcInfobox answers an arithmetic query.
type CalcInfobox struct {
	Equation string
	Result   string
}

// DefinitionInfobox answers a dictionary lookup. Definition is a provider
// HTML fragment and must pass through sanitization before rendering.
type DefinitionInfobox struct {
	Word         string
	PartOfSpeech string
	Definition   string
	SourceURL    string
}

// EncyclopediaInfobox summarizes an encyclopedia article. Summary is a
// provider HTML fragment and must pass through sanitization before
// rendering.
type EncyclopediaInfobox struct {
	Title     string
	Summary   string
	SourceURL string
}
