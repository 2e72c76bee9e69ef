package state

import (
	"strings"

	"golang.org/x/text/cases"
)

// Option is one selectable entry of a select or autocomplete list.
type Option struct {
	Value string
	Label string
}

// FilterOptions returns the options whose label contains query under Unicode
// case folding, in their original order. An empty query matches everything;
// limit <= 0 means no limit.
func FilterOptions(options []Option, query string, limit int) []Option {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	matches := make([]Option, 0, len(options))
	for _, opt := range options {
		if limit > 0 && len(matches) == limit {
			break
		}
		if needle == "" || strings.Contains(fold.String(opt.Label), needle) {
			matches = append(matches, opt)
		}
	}
	return matches
}

// FindOption resolves a value back to its option.
func FindOption(options []Option, value string) (Option, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
