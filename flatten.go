package geom

import (
	"fmt"
	"iter"
)

// Flattenable describes a curve that can be flattened by repeatedly cutting
// off its flattest leading part.
type Flattenable[S Scalar, C any] interface {
	// FlatteningStep returns the parameter t in (0, 1] such that the chord
	// between Start and Eval(t) stays within tolerance of the curve. Any other
	// value ends the flattening at the curve's end point.
	FlatteningStep(tolerance S) S
	// AfterSplit returns the part of the curve between t and 1.
	AfterSplit(t S) C
	Start() Point[S]
	End() Point[S]
}

// Flattened is an iterator over the points of a polyline approximating a
// curve. The curve's start point is not produced; the last point is always
// the curve's end point.
//
// A Flattened is consumed by iterating it and must not be copied after first
// use.
type Flattened[S Scalar, C Flattenable[S, C]] struct {
	curve     C
	tolerance S
	done      bool
}

// NewFlattened returns an iterator flattening curve with the given tolerance.
// It panics if tolerance isn't positive.
func NewFlattened[S Scalar, C Flattenable[S, C]](curve C, tolerance S) *Flattened[S, C] {
	if !(tolerance > 0) {
		panic(fmt.Sprintf("flattening tolerance must be positive, got %g", tolerance))
	}
	return &Flattened[S, C]{
		curve:     curve,
		tolerance: tolerance,
	}
}

// Next returns the next point, or false once the end point has been
// produced.
func (f *Flattened[S, C]) Next() (Point[S], bool) {
	if f.done {
		return Point[S]{}, false
	}
	t := f.curve.FlatteningStep(f.tolerance)
	if !(t > 0 && t < 1) {
		f.done = true
		return f.curve.End(), true
	}
	f.curve = f.curve.AfterSplit(t)
	return f.curve.Start(), true
}

// All returns an iterator over the remaining points.
func (f *Flattened[S, C]) All() iter.Seq[Point[S]] {
	return func(yield func(Point[S]) bool) {
		for {
			pt, ok := f.Next()
			if !ok || !yield(pt) {
				return
			}
		}
	}
}

// FlattenedForEach calls fn for every point of the flattened curve, in the
// same order as [Flattened] produces them.
func FlattenedForEach[S Scalar, C Flattenable[S, C]](curve C, tolerance S, fn func(Point[S])) {
	f := NewFlattened(curve, tolerance)
	for {
		pt, ok := f.Next()
		if !ok {
			return
		}
		fn(pt)
	}
}

// ApproxLengthFromFlattening returns the length of the polyline approximating
// curve, starting at the curve's start point.
func ApproxLengthFromFlattening[S Scalar, C Flattenable[S, C]](curve C, tolerance S) S {
	var length S
	from := curve.Start()
	FlattenedForEach(curve, tolerance, func(to Point[S]) {
		length += from.Distance(to)
		from = to
	})
	return length
}
