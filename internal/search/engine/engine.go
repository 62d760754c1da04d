package engine

import (
	"net/url"
	"strings"
	"sync"
)

// Engine identifies one backend search engine together with the outbound
// link offered when nilch itself cannot serve results.
type Engine struct {
	ID          string
	DisplayName string
	// OutboundTemplate is the engine's own search URL; the query replaces
	// the %s verb.
	OutboundTemplate string
}

// Registry holds the known engines. Registration happens at startup;
// lookups afterwards are concurrent.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
	order   []string
	def     string
}

// NewRegistry creates a registry seeded with the built-in engines. The
// default must name a registered engine or the first built-in is used.
func NewRegistry(defaultID string) *Registry {
	r := &Registry{
		engines: make(map[string]Engine),
	}

	r.Register(Engine{ID: "duckduckgo", DisplayName: "DuckDuckGo", OutboundTemplate: "https://duckduckgo.com/?q=%s"})
	r.Register(Engine{ID: "brave", DisplayName: "Brave Search", OutboundTemplate: "https://search.brave.com/search?q=%s"})
	r.Register(Engine{ID: "bing", DisplayName: "Bing", OutboundTemplate: "https://www.bing.com/search?q=%s"})
	r.Register(Engine{ID: "startpage", DisplayName: "Startpage", OutboundTemplate: "https://www.startpage.com/sp/search?query=%s"})

	if _, ok := r.engines[defaultID]; ok {
		r.def = defaultID
	} else {
		r.def = r.order[0]
	}
	return r
}

// Register adds or replaces an engine.
func (r *Registry) Register(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.engines[e.ID] = e
}

// Default returns the default engine.
func (r *Registry) Default() Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.engines[r.def]
}

// Resolve maps a navigation parameter onto a registered engine, falling
// back to the default for unknown IDs.
func (r *Registry) Resolve(id string) Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.engines[id]; ok {
		return e
	}
	return r.engines[r.def]
}

// Alternate returns a deterministic different engine: the next one in
// registration order, wrapping around. With a single registered engine it
// returns that engine.
func (r *Registry) Alternate(id string) Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cur := id
	if _, ok := r.engines[cur]; !ok {
		cur = r.def
	}
	for i, known := range r.order {
		if known == cur {
			return r.engines[r.order[(i+1)%len(r.order)]]
		}
	}
	return r.engines[r.def]
}

// List returns the engines in registration order.
func (r *Registry) List() []Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Engine, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.engines[id])
	}
	return out
}

// OutboundURL builds the engine's external search link for a query.
func (e Engine) OutboundURL(query string) string {
	return strings.Replace(e.OutboundTemplate, "%s", url.QueryEscape(query), 1)
}
