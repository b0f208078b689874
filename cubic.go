package geom

import "slices"

// MaxExtrema is the maximum number of interior extrema of a cubic Bézier,
// two per axis.
const MaxExtrema = 4

// CubicBez is a cubic Bézier segment. It is the target of [QuadBez.Raise] and
// provides the line intersection routines quadratic Béziers delegate to.
type CubicBez[S Scalar] struct {
	From  Point[S]
	Ctrl1 Point[S]
	Ctrl2 Point[S]
	To    Point[S]
}

func (c CubicBez[S]) IsInf() bool {
	return c.From.IsInf() || c.Ctrl1.IsInf() || c.Ctrl2.IsInf() || c.To.IsInf()
}

func (c CubicBez[S]) IsNaN() bool {
	return c.From.IsNaN() || c.Ctrl1.IsNaN() || c.Ctrl2.IsNaN() || c.To.IsNaN()
}

func (c CubicBez[S]) Eval(t S) Point[S] {
	mt := 1.0 - t
	a := Vec2[S](c.From).Mul(mt * mt * mt)
	b := Vec2[S](c.Ctrl1).Mul(mt * mt * 3.0)
	cc := Vec2[S](c.Ctrl2).Mul(mt * 3.0)
	d := Vec2[S](c.To)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point[S](v)
}

func (c CubicBez[S]) Start() Point[S] {
	return c.From
}

func (c CubicBez[S]) End() Point[S] {
	return c.To
}

// Subdivide splits the curve at t = 0.5.
func (c CubicBez[S]) Subdivide() (CubicBez[S], CubicBez[S]) {
	pm := c.Eval(0.5)
	p01 := c.From.Midpoint(c.Ctrl1)
	p12 := c.Ctrl1.Midpoint(c.Ctrl2)
	p23 := c.Ctrl2.Midpoint(c.To)
	return CubicBez[S]{c.From, p01, p01.Midpoint(p12), pm},
		CubicBez[S]{pm, p12.Midpoint(p23), p23, c.To}
}

// Subsegment returns the part of the curve between t0 and t1.
func (c CubicBez[S]) Subsegment(t0, t1 S) CubicBez[S] {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2[S](d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2[S](d.Eval(t1)).Mul(-scale))
	return CubicBez[S]{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier whose points are to be read as vectors.
func (c CubicBez[S]) Differentiate() QuadBez[S] {
	return QuadBez[S]{
		Point[S](c.Ctrl1.Sub(c.From).Mul(3)),
		Point[S](c.Ctrl2.Sub(c.Ctrl1).Mul(3)),
		Point[S](c.To.Sub(c.Ctrl2).Mul(3)),
	}
}

func (c CubicBez[S]) Transform(aff Affine[S]) CubicBez[S] {
	return CubicBez[S]{
		From:  c.From.Transform(aff),
		Ctrl1: c.Ctrl1.Transform(aff),
		Ctrl2: c.Ctrl2.Transform(aff),
		To:    c.To.Transform(aff),
	}
}

// Extrema returns the parameters of the interior x and y extrema, in
// increasing order.
func (c CubicBez[S]) Extrema() ([MaxExtrema]S, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]S
	var outN int
	oneCoord := func(d0, d1, d2 S) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.Ctrl1.Sub(c.From)
	d1 := c.Ctrl2.Sub(c.Ctrl1)
	d2 := c.To.Sub(c.Ctrl2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	slices.Sort(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest rectangle enclosing the curve.
func (c CubicBez[S]) BoundingBox() Rect[S] {
	bbox := NewRectFromPoints(c.From, c.To)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// IntersectInfiniteLine returns the parameters, in increasing order, at which
// the curve crosses line.
func (c CubicBez[S]) IntersectInfiniteLine(line InfiniteLine[S]) ([3]S, int) {
	epsilon := paramEpsilon[S]()
	eq := line.Equation()

	// Plugging the polynomial form of the curve into the line equation gives the
	// signed distance from the line as a cubic in t.
	px0, px1, px2, px3 := cubicBezCoefficients(c.From.X, c.Ctrl1.X, c.Ctrl2.X, c.To.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.From.Y, c.Ctrl1.Y, c.Ctrl2.Y, c.To.Y)
	ts, n := solveCurveCubic(
		eq.A*px0+eq.B*py0+eq.C,
		eq.A*px1+eq.B*py1,
		eq.A*px2+eq.B*py2,
		eq.A*px3+eq.B*py3,
	)
	var ret [3]S
	var retN int
	for _, t := range ts[:n] {
		if t >= -epsilon && t <= 1+epsilon {
			ret[retN] = min(max(t, 0), 1)
			retN++
		}
	}
	slices.Sort(ret[:retN])
	return ret, retN
}

// IntersectLine computes the intersections of the curve with a line segment.
func (c CubicBez[S]) IntersectLine(line Line[S]) ([3]LineIntersection[S], int) {
	epsilon := paramEpsilon[S]()
	p0x, p0y := line.P0.X, line.P0.Y
	dx := line.P1.X - p0x
	dy := line.P1.Y - p0y

	// x and y are cubic polynomials in t. Plugging them into the equation of
	// the segment's line gives a scaled signed distance, whose roots are the
	// crossings.
	px0, px1, px2, px3 := cubicBezCoefficients(c.From.X, c.Ctrl1.X, c.Ctrl2.X, c.To.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.From.Y, c.Ctrl1.Y, c.Ctrl2.Y, c.To.Y)
	c0 := dy*(px0-p0x) - dx*(py0-p0y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	c3 := dy*px3 - dx*py3
	invlen2 := 1 / (dx*dx + dy*dy)
	ts, n := solveCurveCubic(c0, c1, c2, c3)
	var ret [3]LineIntersection[S]
	var retN int
	for _, t := range ts[:n] {
		if t >= -epsilon && t <= 1+epsilon {
			x := px0 + t*px1 + t*t*px2 + t*t*t*px3
			y := py0 + t*py1 + t*t*py2 + t*t*t*py3
			u := ((x-p0x)*dx + (y-p0y)*dy) * invlen2
			if u >= 0 && u <= 1 {
				ret[retN] = LineIntersection[S]{u, min(max(t, 0), 1)}
				retN++
			}
		}
	}
	slices.SortFunc(ret[:retN], func(a, b LineIntersection[S]) int {
		switch {
		case a.SegmentT < b.SegmentT:
			return -1
		case a.SegmentT > b.SegmentT:
			return 1
		default:
			return 0
		}
	})
	return ret, retN
}

// Return polynomial coefficients given cubic bezier coordinates.
//
// A cubic coefficient within the rounding noise of S, as left behind by
// degree elevation of a quadratic, is returned as exactly zero.
func cubicBezCoefficients[S Scalar](x0, x1, x2, x3 S) (_, _, _, _ S) {
	p0 := x0
	p1 := 3*x1 - 3*x0
	p2 := 3*x2 - 6*x1 + 3*x0
	p3 := x3 - 3*x2 + 3*x1 - x0
	magnitude := abs(x0) + 3*abs(x1) + 3*abs(x2) + abs(x3)
	if abs(p3) <= relEpsilon[S]()*magnitude {
		p3 = 0
	}
	return p0, p1, p2, p3
}
