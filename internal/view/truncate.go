package view

import "unicode/utf8"

// Display limits, counted in runes.
const (
	TitleLimit = 60
	BodyLimit  = 300
)

// Truncate limits s to max runes and appends an ellipsis when the input was
// longer. A string of exactly max runes passes through unmodified.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
