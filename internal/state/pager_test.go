package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisiblePages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{name: "middle", current: 5, total: 10, want: []int{1, 4, 5, 6, 10}},
		{name: "first page", current: 1, total: 10, want: []int{1, 2, 10}},
		{name: "last page", current: 10, total: 10, want: []int{1, 9, 10}},
		{name: "single page", current: 1, total: 1, want: []int{1}},
		{name: "two pages", current: 2, total: 2, want: []int{1, 2}},
		{name: "near start", current: 2, total: 6, want: []int{1, 2, 3, 6}},
		{name: "current clamped high", current: 42, total: 5, want: []int{1, 4, 5}},
		{name: "current clamped low", current: -3, total: 5, want: []int{1, 2, 5}},
		{name: "no pages", current: 1, total: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisiblePages(tt.current, tt.total))
		})
	}
}

func TestPagerEdges(t *testing.T) {
	t.Parallel()

	single := NewPager(1, 1)
	assert.False(t, single.CanGoPrev())
	assert.False(t, single.CanGoNext())
	assert.Equal(t, []int{1}, single.Pages())

	p := NewPager(1, 3)
	assert.False(t, p.CanGoPrev())
	assert.True(t, p.CanGoNext())
	assert.Equal(t, p, p.Prev(), "prev at the first page is a no-op")

	p = p.Next().Next()
	assert.Equal(t, 3, p.Current)
	assert.False(t, p.CanGoNext())
	assert.Equal(t, p, p.Next(), "next at the last page is a no-op")
}

func TestPagerGoToOutOfRange(t *testing.T) {
	t.Parallel()

	p := NewPager(2, 4)
	assert.Equal(t, 2, p.GoTo(0).Current)
	assert.Equal(t, 2, p.GoTo(5).Current)
	assert.Equal(t, 4, p.GoTo(4).Current)
}

func TestNewPagerClampsCurrent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, NewPager(9, 4).Current)
	assert.Equal(t, 1, NewPager(0, 4).Current)
}

func TestSegmentsInsertGaps(t *testing.T) {
	t.Parallel()

	segments := Segments(5, 10)
	assert.Equal(t, []PageSegment{
		{Kind: SegmentPage, Page: 1},
		{Kind: SegmentGap},
		{Kind: SegmentPage, Page: 4},
		{Kind: SegmentPage, Page: 5},
		{Kind: SegmentPage, Page: 6},
		{Kind: SegmentGap},
		{Kind: SegmentPage, Page: 10},
	}, segments)

	assert.Equal(t, []PageSegment{
		{Kind: SegmentPage, Page: 1},
		{Kind: SegmentPage, Page: 2},
		{Kind: SegmentPage, Page: 3},
	}, Segments(2, 3))
}
