package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a pressable label. The pressed state is the short-lived ripple
// shown after activation; callers clear it with Release.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	active   bool
	pressed  bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	switch {
	case b.disabled:
		style = style.Faint(true)
	case b.pressed:
		style = style.Reverse(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// Press marks the button pressed. It reports false for a disabled button.
func (b *Button) Press() bool {
	if b.disabled {
		return false
	}
	b.pressed = true
	return true
}

// Release clears the pressed state.
func (b *Button) Release() {
	b.pressed = false
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	if disabled {
		b.pressed = false
	}
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports whether presses are refused.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive reports whether the button has focus.
func (b *Button) IsActive() bool {
	return b.active
}

// IsPressed reports whether the ripple is showing.
func (b *Button) IsPressed() bool {
	return b.pressed
}
