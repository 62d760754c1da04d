package view

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// The dictionary and encyclopedia providers hand back HTML fragments with
// light inline markup. Anything beyond that (scripts, event handlers, block
// structure) is stripped before the fragment reaches a template.
var sanitizePolicy = newSanitizePolicy()

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("a", "b", "strong", "i", "em", "sub", "sup", "span", "p", "br")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(true)
	return p
}

// SanitizeHTML reduces a provider HTML fragment to harmless inline markup.
func SanitizeHTML(fragment string) template.HTML {
	return template.HTML(sanitizePolicy.Sanitize(fragment))
}
