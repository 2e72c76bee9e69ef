package components

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual tone of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

var badgeVariantNames = map[string]BadgeVariant{
	"default":   BadgeVariantDefault,
	"primary":   BadgeVariantPrimary,
	"secondary": BadgeVariantSecondary,
	"success":   BadgeVariantSuccess,
	"warning":   BadgeVariantWarning,
	"error":     BadgeVariantError,
	"info":      BadgeVariantInfo,
}

// ParseBadgeVariant maps a tone name such as "success" to a BadgeVariant.
func ParseBadgeVariant(name string) (BadgeVariant, bool) {
	v, ok := badgeVariantNames[name]
	return v, ok
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge tone.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}
