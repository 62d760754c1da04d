package bang

import (
	"net/url"
	"regexp"
	"strings"
)

// bangSyntax matches "!trigger", optionally followed by a single whitespace
// and the remainder of the query.
var bangSyntax = regexp.MustCompile(`^!([A-Za-z]+)(?:\s(.*))?$`)

// Resolver turns bang-prefixed queries into redirect targets.
type Resolver struct {
	table *Table
}

// NewResolver creates a resolver over the given table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the redirect target for raw when it is a bang command
// with a known trigger. ok is false both for non-bang syntax and for
// unknown triggers; the caller then dispatches the untouched original
// string, leading "!" included, as a literal search query. Resolution is
// pure: no network access, no side effects.
func (r *Resolver) Resolve(raw string) (target string, ok bool) {
	m := bangSyntax.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}

	b, found := r.table.Lookup(m[1])
	if !found {
		return "", false
	}

	remainder := m[2]
	if remainder == "" || b.URL == "" {
		return "https://" + b.Domain, true
	}

	return strings.Replace(b.URL, Placeholder, encodeRemainder(remainder), 1), true
}

// encodeRemainder percent-encodes the query remainder before template
// substitution. url.QueryEscape alone writes "+" for spaces, which only
// reads back as a space in query position; templates may also place the
// value in path position, so spaces must become %20.
func encodeRemainder(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
