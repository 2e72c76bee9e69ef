// Package components renders terminal widgets with lipgloss.
//
// # Theme
//
// Themes are plain values passed explicitly through RenderContext:
//
//	theme := components.ApplyOverrides(components.DarkTheme(), overrides)
//	ctx := components.DefaultContext().WithTheme(theme).WithWidth(60)
//	out := widget.ViewWithContext(ctx)
//
// View() renders with DefaultTheme and the default width.
//
// ApplyOverrides never mutates its input; styles that bake in palette
// colours (typography, inputs) are re-derived on the returned theme.
//
// # Modifiers
//
// StyleFunc values such as Background, Foreground, PaddingX and Typography
// read the theme at render time, so a component configured once follows
// theme changes:
//
//	badge := components.NewBadge("beta").WithAppliers(components.Foreground(components.PaletteInfo))
//
// # Widgets
//
// Accordion, ChipFilter, Select, RangeSlider, Pagination, Autocomplete and
// StepperView each hold one piece of interaction state from package state and
// only translate it into text. Text, Badge, Button, Stack, Card and Divider
// are the primitives they compose with.
package components
