package components

import (
	"strings"

	"github.com/alexisbeaulieu97/widgetkit/internal/state"
)

// StepperView renders a multi-step flow as a breadcrumb: "✓" for completed
// steps, "●" for the current one and "○" for the rest.
type StepperView struct {
	BaseComponent
	stepper *state.Stepper
}

// NewStepperView binds a view to stepper.
func NewStepperView(stepper *state.Stepper) *StepperView {
	return &StepperView{BaseComponent: NewBaseComponent(), stepper: stepper}
}

// Stepper exposes the bound flow.
func (s *StepperView) Stepper() *state.Stepper {
	return s.stepper
}

// View renders the breadcrumb.
func (s *StepperView) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the breadcrumb with the given theme context.
func (s *StepperView) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	done := TypographyStyle(theme, TypographyVariantBody).Foreground(theme.Palette.Success.Base)
	current := TypographyStyle(theme, TypographyVariantEmphasis).Foreground(theme.Palette.Primary.Base)
	pending := TypographyStyle(theme, TypographyVariantMuted)
	sep := pending.Render(" › ")

	parts := make([]string, 0, len(s.stepper.Steps()))
	for i, step := range s.stepper.Steps() {
		switch {
		case i == s.stepper.Index() && !s.stepper.Done():
			parts = append(parts, current.Render("● "+step))
		case s.stepper.Completed(i):
			parts = append(parts, done.Render("✓ "+step))
		default:
			parts = append(parts, pending.Render("○ "+step))
		}
	}
	return s.ComputeStyle(theme).Render(strings.Join(parts, sep))
}
