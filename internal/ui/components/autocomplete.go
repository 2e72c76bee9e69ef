package components

import (
	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Autocomplete narrows a list of options by a typed query.
type Autocomplete struct {
	BaseComponent
	options []state.Option
	query   string
	limit   int
	cursor  int
	value   *state.ControlledValue[string]
}

// NewAutocomplete creates an autocomplete showing at most limit matches
// (limit <= 0 shows all). onChange receives every accepted value.
func NewAutocomplete(options []state.Option, limit int, onChange func(string)) *Autocomplete {
	return &Autocomplete{
		BaseComponent: NewBaseComponent(),
		options:       options,
		limit:         limit,
		value:         state.NewControlledValue("", onChange),
	}
}

// SetQuery replaces the query and resets the highlight to the first match.
func (a *Autocomplete) SetQuery(q string) {
	a.query = q
	a.cursor = 0
}

// Query returns the current filter text.
func (a *Autocomplete) Query() string {
	return a.query
}

// Matches returns the options matching the current query.
func (a *Autocomplete) Matches() []state.Option {
	return state.FilterOptions(a.options, a.query, a.limit)
}

// MoveCursor moves the highlight within the matches.
func (a *Autocomplete) MoveCursor(delta int) {
	a.cursor = clampIndex(a.cursor+delta, len(a.Matches()))
}

// Cursor returns the index of the highlighted match.
func (a *Autocomplete) Cursor() int {
	return a.cursor
}

// Accept writes the highlighted match and returns it.
func (a *Autocomplete) Accept() (state.Option, bool) {
	matches := a.Matches()
	if len(matches) == 0 {
		return state.Option{}, false
	}
	opt := matches[clampIndex(a.cursor, len(matches))]
	a.value.Write(opt.Value)
	return opt, true
}

// Value returns the last accepted value.
func (a *Autocomplete) Value() string {
	return a.value.Value()
}

// View renders the autocomplete.
func (a *Autocomplete) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the query line followed by the matches. Labels are
// truncated by display width so wide runes never overflow the context.
func (a *Autocomplete) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	width := ctx.EffectiveWidth()
	body := TypographyStyle(theme, TypographyVariantBody)
	highlight := body.Foreground(theme.Palette.Primary.Base).Bold(true)

	rows := []string{InputStyle(theme, InputStateFocus).Render("› " + runewidth.Truncate(a.query, width-6, "…"))}

	matches := a.Matches()
	if len(matches) == 0 {
		rows = append(rows, TypographyStyle(theme, TypographyVariantMuted).Render("no matches"))
	}
	for i, opt := range matches {
		style := body
		prefix := "  "
		if i == a.cursor {
			style = highlight
			prefix = "› "
		}
		rows = append(rows, style.Render(prefix+runewidth.Truncate(opt.Label, width-2, "…")))
	}
	return a.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
