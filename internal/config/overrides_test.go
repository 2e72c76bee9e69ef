package config

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

func TestThemeFileOverrides(t *testing.T) {
	t.Parallel()

	file := ThemeFile{
		Name: "brand",
		Palette: map[string]SlotFile{
			"primary": {Base: "#ff0000,#aa0000", Muted: "#111"},
		},
		Spacing: SpacingFile{Padding: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		Borders: BordersFile{Default: "thick"},
	}

	o := file.Overrides()
	require.NotNil(t, o.Name)
	assert.Equal(t, "brand", *o.Name)

	primary := o.Palette["primary"]
	require.NotNil(t, primary.Base)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#aa0000"}, *primary.Base)
	require.NotNil(t, primary.Muted)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#111", Dark: "#111"}, *primary.Muted)
	assert.Nil(t, primary.OnBase)

	require.NotNil(t, o.Padding)
	assert.Equal(t, 3, o.Padding[components.SpacingSizeMedium])
	assert.Nil(t, o.Margin)
	require.NotNil(t, o.Frame)
	assert.Equal(t, components.BorderVariantThick, *o.Frame)
}

func TestThemeFileResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", ThemeFile{}.Resolve().Name)

	dark := ThemeFile{Extends: "dark"}.Resolve()
	assert.Equal(t, components.DarkTheme().Palette.Surface, dark.Palette.Surface)

	named := ThemeFile{Extends: "dark", Name: "night"}.Resolve()
	assert.Equal(t, "night", named.Name)
}

func TestThemeFileResolveOnKeepsBase(t *testing.T) {
	t.Parallel()

	base := components.DarkTheme()
	got := ThemeFile{Palette: map[string]SlotFile{"danger": {Base: "#000000"}}}.ResolveOn(base)

	assert.Equal(t, "dark", got.Name)
	assert.Equal(t, "#000000", got.Palette.Danger.Base.Light)
	assert.Equal(t, base.Palette.Surface, got.Palette.Surface)
	assert.NotEqual(t, "#000000", base.Palette.Danger.Base.Light)
}

func TestDescribeRoundTrips(t *testing.T) {
	t.Parallel()

	for _, theme := range []components.Theme{components.DefaultTheme(), components.DarkTheme()} {
		doc := Describe(theme)
		require.NoError(t, ValidateTheme(&doc))
		assert.Equal(t, "rounded", doc.Borders.Default)
		assert.Len(t, doc.Palette, len(components.PaletteSlotNames))

		back := doc.Resolve()
		assert.Equal(t, theme.Name, back.Name)
		assert.Equal(t, theme.Palette, back.Palette)
		assert.Equal(t, theme.Spacing, back.Spacing)
		assert.Equal(t, theme.Frame, back.Frame)
	}
}

func TestDescribeCollapsesEqualPairs(t *testing.T) {
	t.Parallel()

	doc := Describe(components.DefaultTheme())
	assert.Equal(t, "#3b82f6,#60a5fa", doc.Palette["primary"].Base)
	assert.NotContains(t, formatColour(lipgloss.AdaptiveColor{Light: "#fff", Dark: "#fff"}), ",")
}
