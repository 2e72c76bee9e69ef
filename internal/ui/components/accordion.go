package components

import (
	"strings"

	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/charmbracelet/lipgloss"
)

// AccordionSection is one collapsible block.
type AccordionSection struct {
	ID    string
	Title string
	Body  string
}

// Accordion shows sections whose bodies expand when toggled open.
type Accordion struct {
	BaseComponent
	sections []AccordionSection
	open     *state.ToggleSet[string]
	cursor   int
	onChange func(state.ActiveSet[string])
}

// NewAccordion creates an accordion. With multi false opening a section
// closes the others.
func NewAccordion(multi bool, sections ...AccordionSection) *Accordion {
	return &Accordion{
		BaseComponent: NewBaseComponent(),
		sections:      sections,
		open:          state.NewToggleSet[string](multi),
	}
}

// WithOpen replaces the open sections.
func (a *Accordion) WithOpen(ids ...string) *Accordion {
	a.open = state.NewToggleSet(a.open.MultiSelect(), ids...)
	return a
}

// OnChange registers the callback fired after every toggle.
func (a *Accordion) OnChange(fn func(state.ActiveSet[string])) *Accordion {
	a.onChange = fn
	return a
}

// Toggle opens or closes the section with id and returns the open set.
func (a *Accordion) Toggle(id string) state.ActiveSet[string] {
	active := a.open.Toggle(id)
	if a.onChange != nil {
		a.onChange(active)
	}
	return active
}

// ToggleFocused toggles the section under the cursor.
func (a *Accordion) ToggleFocused() state.ActiveSet[string] {
	if len(a.sections) == 0 {
		return a.open.Active()
	}
	return a.Toggle(a.sections[a.cursor].ID)
}

// MoveCursor moves the focus by delta, wrapping around.
func (a *Accordion) MoveCursor(delta int) {
	a.cursor = wrapIndex(a.cursor+delta, len(a.sections))
}

// Cursor returns the index of the focused section.
func (a *Accordion) Cursor() int {
	return a.cursor
}

// IsOpen reports whether the section with id is expanded.
func (a *Accordion) IsOpen(id string) bool {
	return a.open.IsActive(id)
}

// Open returns the expanded sections.
func (a *Accordion) Open() state.ActiveSet[string] {
	return a.open.Active()
}

// View renders the accordion.
func (a *Accordion) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders headers with a disclosure marker and the bodies of
// open sections indented beneath them.
func (a *Accordion) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	header := TypographyStyle(theme, TypographyVariantEmphasis)
	focused := header.Foreground(theme.Palette.Primary.Base)
	body := TypographyStyle(theme, TypographyVariantBody).
		PaddingLeft(PaddingValue(theme, SpacingSizeMedium)).
		Width(ctx.EffectiveWidth())

	rows := make([]string, 0, len(a.sections)*2)
	for i, section := range a.sections {
		marker := "▸"
		if a.open.IsActive(section.ID) {
			marker = "▾"
		}
		style := header
		if i == a.cursor {
			style = focused
		}
		rows = append(rows, style.Render(marker+" "+section.Title))
		if a.open.IsActive(section.ID) && strings.TrimSpace(section.Body) != "" {
			rows = append(rows, body.Render(section.Body))
		}
	}
	return a.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
