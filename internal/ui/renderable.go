// Package ui holds the interfaces shared by every rendered widget.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}
