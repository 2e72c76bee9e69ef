package components

import (
	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Select is a single-choice list. The chosen value may be owned by the
// caller (SetValue) or held by the widget.
type Select struct {
	BaseComponent
	options []state.Option
	value   *state.ControlledValue[string]
	cursor  int
}

// NewSelect creates an uncontrolled select seeded with defaultValue.
// onChange receives every chosen value and may be nil.
func NewSelect(options []state.Option, defaultValue string, onChange func(string)) *Select {
	s := &Select{
		BaseComponent: NewBaseComponent(),
		options:       options,
		value:         state.NewControlledValue(defaultValue, onChange),
	}
	s.syncCursor()
	return s
}

// SetValue hands ownership of the value to the caller.
func (s *Select) SetValue(v string) {
	s.value.SetExternal(v)
	s.syncCursor()
}

// Uncontrol returns ownership of the value to the widget.
func (s *Select) Uncontrol() {
	s.value.ClearExternal()
	s.syncCursor()
}

// Controlled reports whether the caller owns the value.
func (s *Select) Controlled() bool {
	return s.value.Controlled()
}

// Value returns the effective chosen value.
func (s *Select) Value() string {
	return s.value.Value()
}

// Selected returns the option matching the effective value.
func (s *Select) Selected() (state.Option, bool) {
	return state.FindOption(s.options, s.value.Value())
}

// MoveCursor moves the highlight by delta without wrapping.
func (s *Select) MoveCursor(delta int) {
	s.cursor = clampIndex(s.cursor+delta, len(s.options))
}

// Cursor returns the index of the highlighted option.
func (s *Select) Cursor() int {
	return s.cursor
}

// Choose writes the highlighted option and returns it.
func (s *Select) Choose() (state.Option, bool) {
	if len(s.options) == 0 {
		return state.Option{}, false
	}
	opt := s.options[s.cursor]
	s.value.Write(opt.Value)
	return opt, true
}

func (s *Select) syncCursor() {
	for i, opt := range s.options {
		if opt.Value == s.value.Value() {
			s.cursor = i
			return
		}
	}
}

// View renders the select.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders one row per option with a radio marker; labels are
// cut to the context width.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	normal := TypographyStyle(theme, TypographyVariantBody)
	highlight := normal.Foreground(theme.Palette.Primary.Base).Bold(true)

	labelWidth := ctx.EffectiveWidth() - 4
	if labelWidth < 1 {
		labelWidth = 1
	}

	current := s.value.Value()
	rows := make([]string, 0, len(s.options))
	for i, opt := range s.options {
		marker := "( )"
		if opt.Value == current {
			marker = "(•)"
		}
		style := normal
		if i == s.cursor {
			style = highlight
		}
		rows = append(rows, style.Render(marker+" "+runewidth.Truncate(opt.Label, labelWidth, "…")))
	}
	return s.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
