package state

// VisiblePages returns the ascending page window for a paged list: the first
// and last page plus every page within one of current. current is clamped
// into [1, total]; total below 1 yields no pages.
func VisiblePages(current, total int) []int {
	if total < 1 {
		return []int{}
	}
	current = clamp(current, 1, total)

	pages := make([]int, 0, 5)
	for p := 1; p <= total; p++ {
		if p == 1 || p == total || abs(p-current) <= 1 {
			pages = append(pages, p)
		}
	}
	return pages
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SegmentKind distinguishes page buttons from skipped runs.
type SegmentKind int

const (
	SegmentPage SegmentKind = iota
	SegmentGap
)

// PageSegment is one element of a rendered page window.
type PageSegment struct {
	Kind SegmentKind
	Page int
}

// Segments is VisiblePages with a gap segment wherever consecutive visible
// pages are not adjacent.
func Segments(current, total int) []PageSegment {
	pages := VisiblePages(current, total)
	segments := make([]PageSegment, 0, len(pages)+2)
	for i, p := range pages {
		if i > 0 && p-pages[i-1] > 1 {
			segments = append(segments, PageSegment{Kind: SegmentGap})
		}
		segments = append(segments, PageSegment{Kind: SegmentPage, Page: p})
	}
	return segments
}

// Pager holds the current page of a paged list.
type Pager struct {
	Current int
	Total   int
}

// NewPager clamps current into [1, total].
func NewPager(current, total int) Pager {
	p := Pager{Current: current, Total: total}
	p.Current = p.normalize(current)
	return p
}

func (p Pager) normalize(page int) int {
	if p.Total < 1 {
		return 1
	}
	return clamp(page, 1, p.Total)
}

// CanGoPrev reports whether a previous page exists.
func (p Pager) CanGoPrev() bool {
	return p.Current > 1
}

// CanGoNext reports whether a next page exists.
func (p Pager) CanGoNext() bool {
	return p.Current < p.Total
}

// Prev moves back one page; at the first page it is a no-op.
func (p Pager) Prev() Pager {
	return p.GoTo(p.Current - 1)
}

// Next moves forward one page; at the last page it is a no-op.
func (p Pager) Next() Pager {
	return p.GoTo(p.Current + 1)
}

// GoTo jumps to page. Requests outside [1, Total] leave the pager unchanged.
func (p Pager) GoTo(page int) Pager {
	if page < 1 || page > p.Total {
		return p
	}
	p.Current = page
	return p
}

// Pages returns the visible page window.
func (p Pager) Pages() []int {
	return VisiblePages(p.Current, p.Total)
}

// Segments returns the visible page window with gap markers.
func (p Pager) Segments() []PageSegment {
	return Segments(p.Current, p.Total)
}
