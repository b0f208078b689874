package geom

// LineEquation is the implicit equation A·x + B·y + C = 0 of a line,
// normalized so that A² + B² = 1. Evaluating the left-hand side at a point
// yields the point's signed distance to the line.
type LineEquation[S Scalar] struct {
	A, B, C S
}

// NewLineEquation returns the normalized equation a·x + b·y + c = 0.
//
// a and b must not both be zero.
func NewLineEquation[S Scalar](a, b, c S) LineEquation[S] {
	assertf(a != 0 || b != 0, "degenerate line equation %g·x + %g·y + %g = 0", a, b, c)
	div := 1 / sqrt(a*a+b*b)
	return LineEquation[S]{A: a * div, B: b * div, C: c * div}
}

// SignedDistanceToPoint returns the distance of pt to the line. Points on the
// side the normal ⟨A, B⟩ points to have positive distances.
func (eq LineEquation[S]) SignedDistanceToPoint(pt Point[S]) S {
	return eq.A*pt.X + eq.B*pt.Y + eq.C
}

// DistanceToPoint returns the unsigned distance of pt to the line.
func (eq LineEquation[S]) DistanceToPoint(pt Point[S]) S {
	return abs(eq.SignedDistanceToPoint(pt))
}

// Offset returns the parallel line moved by d in the direction of the normal.
func (eq LineEquation[S]) Offset(d S) LineEquation[S] {
	return NewLineEquation(eq.A, eq.B, eq.C-d)
}

// SolveX returns the x coordinate of the line at the given y, and false if the
// line is horizontal.
func (eq LineEquation[S]) SolveX(y S) (S, bool) {
	if eq.A == 0 {
		return 0, false
	}
	return -(eq.B*y + eq.C) / eq.A, true
}

// SolveY returns the y coordinate of the line at the given x, and false if the
// line is vertical.
func (eq LineEquation[S]) SolveY(x S) (S, bool) {
	if eq.B == 0 {
		return 0, false
	}
	return -(eq.A*x + eq.C) / eq.B, true
}
