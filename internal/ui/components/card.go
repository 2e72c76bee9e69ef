package components

import (
	"github.com/alexisbeaulieu97/widgetkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Card frames a body under a title using the theme's frame border.
type Card struct {
	BaseComponent
	title  string
	body   ui.Renderable
	footer string
}

// NewCard creates a card around body.
func NewCard(title string, body ui.Renderable) *Card {
	c := &Card{BaseComponent: NewBaseComponent(), title: title, body: body}
	c.SetAppliers(FrameBorder(PaletteNeutral), PaddingX(SpacingSizeSmall))
	return c
}

// WithFooter sets a muted line rendered under the body.
func (c *Card) WithFooter(footer string) *Card {
	c.footer = footer
	return c
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. The body receives the width left inside
// the border and padding.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	inner := ctx.EffectiveWidth() - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	bodyCtx := ctx.WithWidth(inner)

	rows := make([]string, 0, 3)
	if c.title != "" {
		rows = append(rows, TitleText(c.title).ViewWithContext(bodyCtx))
	}
	if c.body != nil {
		if contextual, ok := c.body.(ContextualRenderable); ok {
			rows = append(rows, contextual.ViewWithContext(bodyCtx))
		} else {
			rows = append(rows, c.body.View())
		}
	}
	if c.footer != "" {
		rows = append(rows, MutedText(c.footer).ViewWithContext(bodyCtx))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
