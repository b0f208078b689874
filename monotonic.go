package geom

// MonotonicCurve describes a parametric curve with per-axis evaluation and
// derivatives, as required by [Monotonic].
type MonotonicCurve[S Scalar] interface {
	Eval(t S) Point[S]
	X(t S) S
	Y(t S) S
	Dx(t S) S
	Dy(t S) S
}

// Monotonic wraps a curve that is monotonic in both x and y over [0, 1], which
// makes it possible to find the parameter for a given coordinate.
//
// Monotonic values are only created by conversion methods such as
// [QuadBez.AssumeMonotonic], which do not verify the property. The results of
// SolveTForX and SolveTForY are meaningless for curves that aren't monotonic.
type Monotonic[S Scalar, C MonotonicCurve[S]] struct {
	curve C
}

// MonotonicQuadBez is a quadratic Bézier segment that is monotonic in both x
// and y.
type MonotonicQuadBez[S Scalar] = Monotonic[S, QuadBez[S]]

// Curve returns the wrapped curve.
func (m Monotonic[S, C]) Curve() C {
	return m.curve
}

func (m Monotonic[S, C]) Eval(t S) Point[S] {
	return m.curve.Eval(t)
}

func (m Monotonic[S, C]) X(t S) S {
	return m.curve.X(t)
}

func (m Monotonic[S, C]) Y(t S) S {
	return m.curve.Y(t)
}

// SolveTForX returns the parameter t at which the curve's x coordinate is
// within tolerance of x. Values of x outside the curve's range are clamped to
// the nearest end point, returning 0 or 1.
func (m Monotonic[S, C]) SolveTForX(x, tolerance S) S {
	return solveMonotonic(m.curve.X, m.curve.Dx, x, tolerance)
}

// SolveTForY returns the parameter t at which the curve's y coordinate is
// within tolerance of y. See [Monotonic.SolveTForX].
func (m Monotonic[S, C]) SolveTForY(y, tolerance S) S {
	return solveMonotonic(m.curve.Y, m.curve.Dy, y, tolerance)
}

func solveMonotonic[S Scalar](f, df func(S) S, value, tolerance S) S {
	const maxNewtonIterations = 8

	from := f(0)
	to := f(1)
	if from <= to {
		if value <= from {
			return 0
		}
		if value >= to {
			return 1
		}
	} else {
		if value >= from {
			return 0
		}
		if value <= to {
			return 1
		}
	}

	// Newton's method, starting from the parameter the value would have if
	// the curve were a straight line.
	t := (value - from) / (to - from)
	for range maxNewtonIterations {
		d := f(t) - value
		if abs(d) <= tolerance {
			return t
		}
		dt := df(t)
		if dt == 0 {
			break
		}
		t -= d / dt
		if !(t >= 0 && t <= 1) {
			break
		}
	}

	// Newton overshot or stalled at a vanishing derivative. Fall back to
	// bracketing, which cannot fail on a monotonic function.
	var sign S = 1
	if from > to {
		sign = -1
	}
	g := func(t S) S {
		return sign * (f(t) - value)
	}
	var epsilon S = 1e-12
	if isFloat32[S]() {
		epsilon = 1e-6
	}
	return SolveITP(g, 0, 1, epsilon, 1, 0.2, g(0), g(1))
}
