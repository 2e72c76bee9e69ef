package components

import (
	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/charmbracelet/lipgloss"
)

// Chip is one filter option.
type Chip struct {
	ID    string
	Label string
}

// ChipFilter is a row of independently selectable chips.
type ChipFilter struct {
	BaseComponent
	chips    []Chip
	selected *state.ToggleSet[string]
	cursor   int
	onChange func([]Chip)
}

// NewChipFilter creates a chip row with the given chips preselected.
func NewChipFilter(chips []Chip, selected ...string) *ChipFilter {
	return &ChipFilter{
		BaseComponent: NewBaseComponent(),
		chips:         chips,
		selected:      state.NewToggleSet(true, selected...),
	}
}

// OnChange registers the callback that receives the selected chip records.
func (c *ChipFilter) OnChange(fn func([]Chip)) *ChipFilter {
	c.onChange = fn
	return c
}

// Toggle flips the chip with id and returns the selected chips.
func (c *ChipFilter) Toggle(id string) []Chip {
	c.selected.Toggle(id)
	chips := c.Selected()
	if c.onChange != nil {
		c.onChange(chips)
	}
	return chips
}

// ToggleFocused flips the chip under the cursor.
func (c *ChipFilter) ToggleFocused() []Chip {
	if len(c.chips) == 0 {
		return nil
	}
	return c.Toggle(c.chips[c.cursor].ID)
}

// Selected resolves the active ids back to chip records in display order.
// Ids that match no chip are dropped.
func (c *ChipFilter) Selected() []Chip {
	active := c.selected.Active()
	out := make([]Chip, 0, active.Len())
	for _, chip := range c.chips {
		if active.Contains(chip.ID) {
			out = append(out, chip)
		}
	}
	return out
}

// MoveCursor moves the focus by delta, wrapping around.
func (c *ChipFilter) MoveCursor(delta int) {
	c.cursor = wrapIndex(c.cursor+delta, len(c.chips))
}

// Cursor returns the index of the focused chip.
func (c *ChipFilter) Cursor() int {
	return c.cursor
}

// View renders the chips.
func (c *ChipFilter) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders selected chips filled and others outlined. Chips
// wrap onto new lines when the row exceeds the context width.
func (c *ChipFilter) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	gap := MarginValue(theme, SpacingSizeExtraSmall)

	var (
		lines   []string
		current []string
		used    int
	)
	for i, chip := range c.chips {
		badge := NewBadge(chip.Label)
		if c.selected.IsActive(chip.ID) {
			badge.WithVariant(BadgeVariantPrimary)
		} else {
			badge.WithAppliers(PaddingX(SpacingSizeSmall), Foreground(PaletteNeutral))
		}
		if i == c.cursor {
			badge.WithAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Underline(true) })
		}
		view := badge.ViewWithContext(ctx)
		w := lipgloss.Width(view)
		if len(current) > 0 && used+gap+w > ctx.EffectiveWidth() {
			lines = append(lines, joinRow(current, gap))
			current, used = nil, 0
		}
		if len(current) > 0 {
			used += gap
		}
		current = append(current, view)
		used += w
	}
	if len(current) > 0 {
		lines = append(lines, joinRow(current, gap))
	}
	return c.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func joinRow(views []string, gap int) string {
	spacer := lipgloss.NewStyle().Width(gap).Render("")
	parts := make([]string, 0, len(views)*2)
	for i, v := range views {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
