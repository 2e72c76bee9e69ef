package state

import (
	"fmt"
	"math"

	wkerrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// Number is the set of types a Range can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range is a pair of endpoints kept ordered inside [min, max].
type Range[T Number] struct {
	min, max  T
	low, high T
}

// NewRange creates a range. The default pair is clamped into the bounds and
// ordered. Inverted bounds and NaN values are rejected.
func NewRange[T Number](min, max, low, high T) (*Range[T], error) {
	if isNaN(min) || isNaN(max) || isNaN(low) || isNaN(high) {
		return nil, wkerrors.NewValidationError("range", "bounds and endpoints must be numbers, got NaN", nil)
	}
	if min > max {
		return nil, wkerrors.NewValidationError("range", fmt.Sprintf("min %v is greater than max %v", min, max), nil)
	}
	low = clamp(low, min, max)
	high = clamp(high, min, max)
	if low > high {
		low, high = high, low
	}
	return &Range[T]{min: min, max: max, low: low, high: high}, nil
}

// isNaN is only ever true for floating point T.
func isNaN[T Number](v T) bool {
	return math.IsNaN(float64(v))
}

func clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetLow moves the low endpoint, never past min or the current high. A NaN
// request leaves the range unchanged.
func (r *Range[T]) SetLow(v T) (T, T) {
	if isNaN(v) {
		return r.low, r.high
	}
	if v < r.min {
		v = r.min
	}
	if v > r.high {
		v = r.high
	}
	r.low = v
	return r.low, r.high
}

// SetHigh moves the high endpoint, never past max or the current low. A NaN
// request leaves the range unchanged.
func (r *Range[T]) SetHigh(v T) (T, T) {
	if isNaN(v) {
		return r.low, r.high
	}
	if v > r.max {
		v = r.max
	}
	if v < r.low {
		v = r.low
	}
	r.high = v
	return r.low, r.high
}

// Low returns the low endpoint.
func (r *Range[T]) Low() T { return r.low }

// High returns the high endpoint.
func (r *Range[T]) High() T { return r.high }

// Bounds returns the fixed [min, max] interval.
func (r *Range[T]) Bounds() (T, T) { return r.min, r.max }

// LeftPct is the inset of the filled track from the left edge, in percent.
func (r *Range[T]) LeftPct() float64 {
	span := float64(r.max) - float64(r.min)
	if span == 0 {
		return 0
	}
	return (float64(r.low) - float64(r.min)) / span * 100
}

// RightPct is the inset of the filled track from the right edge, in percent.
func (r *Range[T]) RightPct() float64 {
	span := float64(r.max) - float64(r.min)
	if span == 0 {
		return 0
	}
	return 100 - (float64(r.high)-float64(r.min))/span*100
}
