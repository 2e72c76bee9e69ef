package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

// Overrides converts the document into theme overrides. Call it on a
// validated document; malformed colours are skipped.
func (t ThemeFile) Overrides() components.ThemeOverrides {
	var o components.ThemeOverrides

	if t.Name != "" {
		name := t.Name
		o.Name = &name
	}

	if len(t.Palette) > 0 {
		o.Palette = make(map[string]components.ColourOverrides, len(t.Palette))
		for slot, colours := range t.Palette {
			o.Palette[slot] = components.ColourOverrides{
				Base:     parseColour(colours.Base),
				OnBase:   parseColour(colours.OnBase),
				Muted:    parseColour(colours.Muted),
				Contrast: parseColour(colours.Contrast),
			}
		}
	}

	o.Padding = spacingScale(t.Spacing.Padding)
	o.Margin = spacingScale(t.Spacing.Margin)

	if frame, ok := components.ParseBorderVariant(t.Borders.Default); ok {
		o.Frame = &frame
	}
	return o
}

// Resolve applies the document to the theme named by Extends.
func (t ThemeFile) Resolve() components.Theme {
	return t.ResolveOn(components.DefaultTheme())
}

// ResolveOn applies the document to base, or to the theme named by Extends
// when one is set.
func (t ThemeFile) ResolveOn(base components.Theme) components.Theme {
	if t.Extends != "" {
		if named, ok := components.ThemeByName(t.Extends); ok {
			base = named
		}
	}
	return components.ApplyOverrides(base, t.Overrides())
}

// Describe renders a theme back into document form. Resolving the result
// yields a theme with the same palette, spacing and frame.
func Describe(theme components.Theme) ThemeFile {
	doc := ThemeFile{
		Name:    theme.Name,
		Palette: make(map[string]SlotFile, len(components.PaletteSlotNames)),
		Spacing: SpacingFile{
			Padding: append([]int(nil), theme.Spacing.Padding[:]...),
			Margin:  append([]int(nil), theme.Spacing.Margin[:]...),
		},
		Borders: BordersFile{Default: theme.Frame.String()},
	}
	for _, name := range components.PaletteSlotNames {
		set, _ := theme.Palette.Slot(name)
		doc.Palette[name] = SlotFile{
			Base:     formatColour(set.Base),
			OnBase:   formatColour(set.OnBase),
			Muted:    formatColour(set.Muted),
			Contrast: formatColour(set.Contrast),
		}
	}
	return doc
}

func formatColour(c lipgloss.AdaptiveColor) string {
	if c.Light == c.Dark {
		return c.Light
	}
	return c.Light + "," + c.Dark
}

func parseColour(value string) *lipgloss.AdaptiveColor {
	if value == "" {
		return nil
	}
	light, dark, ok := splitColourPair(value)
	if !ok {
		return nil
	}
	return &lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func spacingScale(values []int) *components.SpacingScale {
	if len(values) != components.SpacingScaleLen {
		return nil
	}
	var scale components.SpacingScale
	copy(scale[:], values)
	return &scale
}
