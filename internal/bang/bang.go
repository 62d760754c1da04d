package bang

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Placeholder is the substitution marker a bang URL template carries for
// the percent-encoded query remainder.
const Placeholder = "{{{s}}}"

var (
	ErrInvalidTrigger    = errors.New("bang trigger must be one or more ASCII letters")
	ErrMissingDomain     = errors.New("bang domain is required")
	ErrMalformedTemplate = errors.New("bang url template must contain at most one placeholder")
	ErrDuplicateTrigger  = errors.New("duplicate bang trigger")
)

var triggerPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Bang is one entry of the redirect table: a trigger token plus where it
// sends the browser. URL is empty for bare-domain bangs.
type Bang struct {
	Trigger string `toml:"trigger"`
	Domain  string `toml:"domain"`
	URL     string `toml:"url"`
}

// Validate checks the table invariants for a single entry.
func (b Bang) Validate() error {
	if !triggerPattern.MatchString(b.Trigger) {
		return ErrInvalidTrigger
	}
	if b.Domain == "" {
		return ErrMissingDomain
	}
	if strings.Count(b.URL, Placeholder) > 1 {
		return ErrMalformedTemplate
	}
	return nil
}

// Table is the immutable trigger lookup. It is loaded once at startup and
// never mutated; lookups are case-sensitive.
type Table struct {
	entries map[string]Bang
}

//go:embed bangs.toml
var defaultBangs []byte

type tableFile struct {
	Bangs []Bang `toml:"bangs"`
}

// DefaultTable loads the bang table embedded in the binary.
func DefaultTable() (*Table, error) {
	return ParseTable(defaultBangs)
}

// ParseTable decodes a TOML bang table and validates every entry.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode bang table: %w", err)
	}
	return NewTable(file.Bangs)
}

// NewTable builds a table from entries.
func NewTable(bangs []Bang) (*Table, error) {
	entries := make(map[string]Bang, len(bangs))
	for _, b := range bangs {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("bang %q: %w", b.Trigger, err)
		}
		if _, exists := entries[b.Trigger]; exists {
			return nil, fmt.Errorf("bang %q: %w", b.Trigger, ErrDuplicateTrigger)
		}
		entries[b.Trigger] = b
	}
	return &Table{entries: entries}, nil
}

// Lookup returns the entry for trigger, matching case-sensitively.
func (t *Table) Lookup(trigger string) (Bang, bool) {
	b, ok := t.entries[trigger]
	return b, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
