package components

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/widgetkit/internal/state"
)

// Pagination renders a window of page buttons around the current page.
type Pagination struct {
	BaseComponent
	pager    state.Pager
	onChange func(int)
}

// NewPagination creates a pagination control.
func NewPagination(current, total int) *Pagination {
	return &Pagination{BaseComponent: NewBaseComponent(), pager: state.NewPager(current, total)}
}

// OnChange registers the callback fired when the current page changes.
func (p *Pagination) OnChange(fn func(int)) *Pagination {
	p.onChange = fn
	return p
}

// Pager returns the current page state.
func (p *Pagination) Pager() state.Pager {
	return p.pager
}

// Next moves one page forward and returns the current page.
func (p *Pagination) Next() int { return p.set(p.pager.Next()) }

// Prev moves one page back and returns the current page.
func (p *Pagination) Prev() int { return p.set(p.pager.Prev()) }

// GoTo jumps to page, clamped into range, and returns the current page.
func (p *Pagination) GoTo(page int) int { return p.set(p.pager.GoTo(page)) }

func (p *Pagination) set(next state.Pager) int {
	changed := next.Current != p.pager.Current
	p.pager = next
	if changed && p.onChange != nil {
		p.onChange(next.Current)
	}
	return next.Current
}

// View renders the pagination.
func (p *Pagination) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "‹ Prev", the page window with "…" for skipped
// runs and the current page in brackets, then "Next ›". Edge buttons are
// faint when unavailable.
func (p *Pagination) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	normal := TypographyStyle(theme, TypographyVariantBody)
	muted := TypographyStyle(theme, TypographyVariantMuted)
	current := normal.Foreground(theme.Palette.Primary.Base).Bold(true)

	nav := func(label string, enabled bool) string {
		if enabled {
			return normal.Render(label)
		}
		return muted.Render(label)
	}

	parts := []string{nav("‹ Prev", p.pager.CanGoPrev())}
	for _, seg := range p.pager.Segments() {
		switch {
		case seg.Kind == state.SegmentGap:
			parts = append(parts, muted.Render("…"))
		case seg.Page == p.pager.Current:
			parts = append(parts, current.Render("["+strconv.Itoa(seg.Page)+"]"))
		default:
			parts = append(parts, normal.Render(strconv.Itoa(seg.Page)))
		}
	}
	parts = append(parts, nav("Next ›", p.pager.CanGoNext()))

	return p.ComputeStyle(theme).Render(strings.Join(parts, " "))
}

var _ ContextualRenderable = (*Pagination)(nil)
