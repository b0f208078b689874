package geom_test

import (
	"fmt"

	"honnef.co/go/geom"
)

func ExampleQuadBez_Flatten() {
	q := geom.QuadBez[float64]{
		From: geom.Pt(0.0, 0.0),
		Ctrl: geom.Pt(50.0, 100.0),
		To:   geom.Pt(100.0, 0.0),
	}
	// The polyline starts at q.From, which isn't produced by the iterator.
	for pt := range q.Flatten(5).All() {
		fmt.Printf("%.1f, %.1f\n", pt.X, pt.Y)
	}
	fmt.Printf("length: %.2f\n", q.ApproxLength(0.1))
	// Output:
	// 27.3, 39.7
	// 48.5, 50.0
	// 66.8, 44.4
	// 86.8, 22.9
	// 100.0, 0.0
	// length: 147.87
}

func ExampleQuadBez_BoundingRect() {
	q := geom.QuadBez[float64]{
		From: geom.Pt(0.0, 0.0),
		Ctrl: geom.Pt(1.0, 1.0),
		To:   geom.Pt(2.0, 0.0),
	}
	fmt.Println(q.FastBoundingRect())
	fmt.Println(q.BoundingRect())
	// Output:
	// [0, 2]×[0, 1]
	// [0, 2]×[0, 0.5]
}

func ExampleQuadBez_MonotonicPieces() {
	q := geom.QuadBez[float64]{
		From: geom.Pt(1.0, 1.0),
		Ctrl: geom.Pt(5.0, 5.0),
		To:   geom.Pt(10.0, 2.0),
	}
	for m := range q.MonotonicPieces() {
		c := m.Curve()
		fmt.Printf("(%.2f, %.2f) -> (%.2f, %.2f)\n", c.From.X, c.From.Y, c.To.X, c.To.Y)
	}
	// Output:
	// (1.00, 1.00) -> (5.90, 3.29)
	// (5.90, 3.29) -> (10.00, 2.00)
}

func ExampleQuadBez_LineSegmentIntersections() {
	q := geom.QuadBez[float64]{
		From: geom.Pt(0.0, -10.0),
		Ctrl: geom.Pt(10.0, 20.0),
		To:   geom.Pt(20.0, -10.0),
	}
	line := geom.Line[float64]{P0: geom.Pt(10.0, -10.0), P1: geom.Pt(10.0, 10.0)}
	pts, n := q.LineSegmentIntersections(line)
	for _, pt := range pts[:n] {
		fmt.Printf("%.2f, %.2f\n", pt.X, pt.Y)
	}
	// Output:
	// 10.00, 5.00
}
