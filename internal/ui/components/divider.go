package components

import "strings"

// Divider renders a horizontal rule across the available width.
type Divider struct {
	BaseComponent
}

// NewDivider creates a divider drawn with "─" that fills the context width.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent()}
	d.SetAppliers(Foreground(PaletteNeutral))
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat("─", ctx.EffectiveWidth()))
}
