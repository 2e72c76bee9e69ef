package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/charmbracelet/lipgloss"
)

// RangeSlider renders a two-handle range over integer bounds.
type RangeSlider struct {
	BaseComponent
	model *state.Range[int]
	label string
}

// NewRangeSlider creates a slider. It fails when min > max.
func NewRangeSlider(label string, min, max, low, high int) (*RangeSlider, error) {
	model, err := state.NewRange(min, max, low, high)
	if err != nil {
		return nil, err
	}
	return &RangeSlider{BaseComponent: NewBaseComponent(), model: model, label: label}, nil
}

// SetLow moves the low handle and returns the resulting selection.
func (r *RangeSlider) SetLow(v int) (int, int) {
	return r.model.SetLow(v)
}

// SetHigh moves the high handle and returns the resulting selection.
func (r *RangeSlider) SetHigh(v int) (int, int) {
	return r.model.SetHigh(v)
}

// Model exposes the underlying range.
func (r *RangeSlider) Model() *state.Range[int] {
	return r.model
}

// Track returns the unstyled track for width cells: "─" outside the
// selection, "━" inside and "●" at both handles.
func (r *RangeSlider) Track(width int) string {
	if width < 2 {
		width = 2
	}
	last := width - 1
	lo := int(math.Round(r.model.LeftPct() / 100 * float64(last)))
	hi := last - int(math.Round(r.model.RightPct()/100*float64(last)))
	if hi < lo {
		hi = lo
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == lo || i == hi:
			b.WriteString("●")
		case i > lo && i < hi:
			b.WriteString("━")
		default:
			b.WriteString("─")
		}
	}
	return b.String()
}

// View renders the slider.
func (r *RangeSlider) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the track and the selected values.
func (r *RangeSlider) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	track := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Render(r.Track(ctx.EffectiveWidth()))
	lower, upper := r.model.Bounds()
	summary := TypographyStyle(theme, TypographyVariantMuted).Render(
		fmt.Sprintf("%d – %d  (of %d..%d)", r.model.Low(), r.model.High(), lower, upper),
	)

	rows := []string{track, summary}
	if r.label != "" {
		rows = append([]string{TypographyStyle(theme, TypographyVariantEmphasis).Render(r.label)}, rows...)
	}
	return r.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
