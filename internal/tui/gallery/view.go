package gallery

import (
	"strings"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	ctx := m.renderContext()
	var content strings.Builder

	content.WriteString(m.renderTabBar())
	content.WriteString("\n")

	card := components.NewCard(tabTitles[m.tab], m.activeWidget()).WithFooter(tabHints[m.tab])
	content.WriteString(card.ViewWithContext(ctx))
	content.WriteString("\n")

	content.WriteString(m.renderToast())
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return content.String()
}

var tabTitles = [tabCount]string{
	"Accordion", "Chip filter", "Select", "Range", "Pagination", "Autocomplete", "Stepper", "Buttons",
}

var tabHints = [tabCount]string{
	"↑/↓ move  space toggle",
	"←/→ move  space toggle",
	"↑/↓ move  enter choose",
	"[ ] move low  { } move high",
	"←/→ change page",
	"type to filter  ↑/↓ move  enter accept",
	"→ next  ← back",
	"←/→ focus  enter press",
}

func (m Model) renderTabBar() string {
	active := components.TypographyStyle(m.theme, components.TypographyVariantEmphasis).
		Foreground(m.theme.Palette.Primary.Base).Underline(true)
	idle := components.TypographyStyle(m.theme, components.TypographyVariantMuted)

	parts := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			parts = append(parts, active.Render(t.String()))
			continue
		}
		parts = append(parts, idle.Render(t.String()))
	}
	return strings.Join(parts, "  ")
}

func (m Model) activeWidget() ui.Renderable {
	switch m.tab {
	case TabAccordion:
		return m.accordion
	case TabChips:
		return m.chips
	case TabSelect:
		return m.selector
	case TabRange:
		return m.slider
	case TabPagination:
		return m.pages
	case TabAutocomplete:
		return m.search
	case TabStepper:
		return m.steps
	default:
		children := make([]ui.Renderable, 0, len(m.buttons))
		for _, b := range m.buttons {
			children = append(children, b)
		}
		return components.HStack(children...).WithGap(2)
	}
}

func (m Model) renderToast() string {
	if m.toast == "" {
		return ""
	}
	style := components.TypographyStyle(m.theme, components.TypographyVariantBody).
		Foreground(m.theme.Palette.Info.Base)
	return style.Render("● " + m.toast)
}
