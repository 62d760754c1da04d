package view

import (
	"strconv"

	"github.com/jakestbu/nilch/internal/search/types"
)

// DefaultTotalPages is the highest reachable page index. The backend
// reports no total-results count, so the strip is a fixed constant rather
// than anything response-derived.
const DefaultTotalPages = 9

// PageLink is one entry of the pagination strip.
type PageLink struct {
	Index  int
	Label  string
	URL    string
	Active bool
}

// Paginate builds links for page indices 0..totalPages inclusive. Every
// link carries the full navigation state of the current page and overrides
// only the page index; exactly one link is active.
func Paginate(state types.PageState, totalPages int) []PageLink {
	links := make([]PageLink, 0, totalPages+1)
	for i := 0; i <= totalPages; i++ {
		links = append(links, PageLink{
			Index:  i,
			Label:  strconv.Itoa(i + 1),
			URL:    state.WithPage(i).URL(),
			Active: i == state.Page,
		})
	}
	return links
}
