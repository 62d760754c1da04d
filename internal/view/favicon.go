package view

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultIconServiceBase is the icon service used when none is configured.
const DefaultIconServiceBase = "https://icons.duckduckgo.com/ip3"

// FaviconURL builds the icon-service URL for a hostname. An empty host
// yields an empty URL; the template drops the icon in that case.
func FaviconURL(base, host string) string {
	if host == "" {
		return ""
	}
	if base == "" {
		base = DefaultIconServiceBase
	}
	return fmt.Sprintf("%s/%s.ico", strings.TrimRight(base, "/"), host)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
