package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
	SpacingSizeTripleExtraLarge
	SpacingSizeQuadExtraLarge
)

// SpacingScaleLen is the number of entries in a spacing scale.
const SpacingScaleLen = int(SpacingSizeQuadExtraLarge) + 1

// SpacingScale maps every SpacingSize to a cell count.
type SpacingScale [SpacingScaleLen]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  SpacingScale
	Padding SpacingScale
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
	BorderVariantNone
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlotNames lists the slot names accepted by ThemeOverrides.Palette.
var PaletteSlotNames = []string{"primary", "secondary", "surface", "success", "warning", "danger", "info", "neutral"}

// Slot returns the colour set stored under name.
func (p Palette) Slot(name string) (ColourSet, bool) {
	set := p.slotByName(name)
	if set == nil {
		return ColourSet{}, false
	}
	return *set, true
}

func (p *Palette) slotByName(name string) *ColourSet {
	switch name {
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "surface":
		return &p.Surface
	case "success":
		return &p.Success
	case "warning":
		return &p.Warning
	case "danger":
		return &p.Danger
	case "info":
		return &p.Info
	case "neutral":
		return &p.Neutral
	default:
		return nil
	}
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// InputStyles describes default/focus styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Every field is populated by
// DefaultTheme; callers customise it through ApplyOverrides.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Frame      BorderVariant
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       1,
		SpacingSizeSmall:            1,
		SpacingSizeMedium:           2,
		SpacingSizeLarge:            3,
		SpacingSizeExtraLarge:       4,
		SpacingSizeDoubleExtraLarge: 5,
		SpacingSizeTripleExtraLarge: 6,
		SpacingSizeQuadExtraLarge:   8,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)

	theme := Theme{
		Name:    "default",
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Frame: BorderVariantRounded,
		Spacing: SpacingConfig{
			Padding: defaultSpacingScale(),
			Margin:  defaultSpacingScale(),
		},
		Variants: variants,
	}
	return theme.derive()
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	return theme.derive()
}

// ThemeByName returns one of the built-in themes.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default", "light":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

// derive recomputes the styles that bake in palette colours.
func (t Theme) derive() Theme {
	t.Typography = defaultTypography(t.Palette)
	t.Input = InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(t.Borders.Rounded).
			BorderForeground(t.Palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(t.Palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(t.Borders.Thick).
			BorderForeground(t.Palette.Primary.Base).
			Padding(0, 1).
			Foreground(t.Palette.Surface.OnBase),
	}
	return t
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base).Faint(true),
	}
}

// ColourOverrides replaces individual colours of one palette slot.
type ColourOverrides struct {
	Base     *lipgloss.AdaptiveColor
	OnBase   *lipgloss.AdaptiveColor
	Muted    *lipgloss.AdaptiveColor
	Contrast *lipgloss.AdaptiveColor
}

// ThemeOverrides lists the optional changes applied on top of a base theme.
// Nil fields leave the base untouched.
type ThemeOverrides struct {
	Name    *string
	Palette map[string]ColourOverrides
	Padding *SpacingScale
	Margin  *SpacingScale
	Frame   *BorderVariant
}

// ApplyOverrides returns a new theme with overrides merged over base. Palette
// slots not named in PaletteSlotNames are ignored.
func ApplyOverrides(base Theme, overrides ThemeOverrides) Theme {
	t := base
	if overrides.Name != nil {
		t.Name = *overrides.Name
	}
	for name, colours := range overrides.Palette {
		slot := t.Palette.slotByName(name)
		if slot == nil {
			continue
		}
		if colours.Base != nil {
			slot.Base = *colours.Base
		}
		if colours.OnBase != nil {
			slot.OnBase = *colours.OnBase
		}
		if colours.Muted != nil {
			slot.Muted = *colours.Muted
		}
		if colours.Contrast != nil {
			slot.Contrast = *colours.Contrast
		}
	}
	if overrides.Padding != nil {
		t.Spacing.Padding = *overrides.Padding
	}
	if overrides.Margin != nil {
		t.Spacing.Margin = *overrides.Margin
	}
	if overrides.Frame != nil {
		t.Frame = *overrides.Frame
	}
	return t.derive()
}

// ParseBorderVariant maps a config name to a BorderVariant.
func ParseBorderVariant(name string) (BorderVariant, bool) {
	switch name {
	case "normal":
		return BorderVariantNormal, true
	case "thick":
		return BorderVariantThick, true
	case "rounded":
		return BorderVariantRounded, true
	case "double":
		return BorderVariantDouble, true
	case "none":
		return BorderVariantNone, true
	default:
		return 0, false
	}
}

// String returns the name used in theme documents.
func (v BorderVariant) String() string {
	switch v {
	case BorderVariantNormal:
		return "normal"
	case BorderVariantThick:
		return "thick"
	case BorderVariantRounded:
		return "rounded"
	case BorderVariantDouble:
		return "double"
	default:
		return "none"
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantSuccess:   PaletteSuccess,
		ButtonVariantError:     PaletteDanger,
		ButtonVariantWarning:   PaletteWarning,
		ButtonVariantInfo:      PaletteInfo,
		ButtonVariantMuted:     PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
	}
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:   PaletteNeutral,
		BadgeVariantPrimary:   PalettePrimary,
		BadgeVariantSecondary: PaletteSecondary,
		BadgeVariantSuccess:   PaletteSuccess,
		BadgeVariantWarning:   PaletteWarning,
		BadgeVariantError:     PaletteDanger,
		BadgeVariantInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding cells for size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin cells for size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table SpacingScale, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	if state == InputStateFocus {
		return theme.Input.Focus
	}
	return theme.Input.Default
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies one of the theme borders.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// FrameBorder applies the theme's default frame border.
func FrameBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if theme.Frame == BorderVariantNone {
			return base
		}
		return base.Border(BorderForVariant(theme, theme.Frame)).BorderForeground(slot(theme.Palette).Muted)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
