package geom

// SolveQuadratic returns the real roots of c0 + c1 x + c2 x² = 0 in increasing
// order, and how many there are.
//
// When c2 is so small that the equation is effectively linear, the single
// root of the linear equation is returned; the quadratic's second root would
// be out of range of S. When all coefficients are zero, every x is a solution
// and 0 is returned as the only root.
func SolveQuadratic[S Scalar](c0, c1, c2 S) ([2]S, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if c2 == 0 || isInf(sc0) || isInf(sc1) {
		if c1 == 0 {
			if c0 == 0 {
				return [2]S{0}, 1
			}
			return [2]S{}, 0
		}
		root := -c0 / c1
		if isInf(root) {
			return [2]S{}, 0
		}
		return [2]S{root}, 1
	}

	var root1 S
	disc := sc1*sc1 - 4*sc0
	if isInf(disc) {
		// sc1² overflowed. x² + sc1 x ≈ 0 gives one root, the product of the
		// roots gives the other.
		root1 = -sc1
	} else {
		if disc < 0 {
			return [2]S{}, 0
		}
		if disc == 0 {
			return [2]S{-0.5 * sc1}, 1
		}
		// Avoid cancellation between sc1 and the square root; see
		// https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + copysign(sqrt(disc), sc1))
	}

	root2 := sc0 / root1
	if isInf(root2) {
		return [2]S{root1}, 1
	}
	return [2]S{min(root1, root2), max(root1, root2)}, 2
}

// SolveCubic returns the real roots of c0 + c1 x + c2 x² + c3 x³ = 0, and how
// many there are. The roots are not sorted. A vanishing c3 falls back to
// [SolveQuadratic].
//
// The method is Jim Blinn's "How to Solve a Cubic Equation", following
// https://momentsingraphics.de/CubicRoots.html.
func SolveCubic[S Scalar](c0, c1, c2, c3 S) ([3]S, int) {
	inv := 1 / c3
	b := c2 * (inv / 3)
	c := c1 * (inv / 3)
	d := c0 * inv
	if isInf(b) || isInf(c) || isInf(d) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]S{roots[0], roots[1]}, n
	}

	// Blinn's Δ = (δ1, δ2, δ3) for x³ + 3b x² + 3c x + d.
	delta1 := fma(-b, b, c)
	delta2 := fma(-c, b, d)
	delta3 := b*d - c*c
	disc := 4*delta1*delta3 - delta2*delta2
	// Depressed cubic constant term; the linear term is delta1.
	dep := fma(-2*b, delta1, delta2)

	switch {
	case disc < 0:
		// One real root.
		sq := sqrt(-0.25 * disc)
		r := -0.5 * dep
		return [3]S{cbrt(r+sq) + cbrt(r-sq) - b}, 1
	case disc == 0:
		// A double root.
		t := copysign(sqrt(-delta1), dep)
		return [3]S{t - b, -2*t - b}, 2
	default:
		// Three real roots, found trigonometrically.
		theta := atan2(sqrt(disc), -dep) / 3
		sin, cos := sincos(theta)
		sin3 := sin * sqrt(S(3))
		scale := 2 * sqrt(-delta1)
		return [3]S{
			fma(scale, cos, -b),
			fma(scale, 0.5*(-cos+sin3), -b),
			fma(scale, 0.5*(-cos-sin3), -b),
		}, 3
	}
}

// solveCurveCubic solves c0 + c1 t + c2 t² + c3 t³ = 0 for the parameter of a
// curve, going straight to the quadratic solver when c3 is zero. A curve lying
// on the line has no isolated roots and yields none.
func solveCurveCubic[S Scalar](c0, c1, c2, c3 S) ([3]S, int) {
	if c3 == 0 && c2 == 0 && c1 == 0 {
		return [3]S{}, 0
	}
	if c3 == 0 {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]S{roots[0], roots[1]}, n
	}
	return SolveCubic(c0, c1, c2, c3)
}

// SolveITP finds a zero crossing of f in [a, b] with the ITP method
// (https://en.wikipedia.org/wiki/ITP_Method, Oliveira and Takahashi, "An
// Enhancement of the Bisection Method Average Performance Preserving Minmax
// Optimality", https://dl.acm.org/doi/10.1145/3423597).
//
// ya and yb are f(a) and f(b), which must satisfy ya < 0 < yb. For monotonic f
// the result is within epsilon of the crossing. epsilon must be larger than
// 2⁻⁶³ (b - a).
//
// n0 trades worst case against average case: 0 never takes more steps than
// bisection, 1 lets the secant step engage more often on smooth functions. k1
// is the truncation factor, 0.2 / (b - a) being a good choice. The truncation
// exponent k2 is fixed at 2.
//
// The search also stops when the bracket can no longer be narrowed in S, which
// can happen before epsilon is reached for float32.
func SolveITP[S Scalar](f func(S) S, a, b, epsilon S, n0 int, k1 S, ya, yb S) S {
	nHalf := int(max(ceil(log2((b-a)/epsilon))-1, 0))
	nMax := n0 + nHalf
	scaledEpsilon := epsilon * S(uint64(1)<<nMax)
	for b-a > 2*epsilon {
		mid := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)

		// Interpolate, truncate towards the midpoint, then project into the
		// minmax interval around it.
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		delta := k1 * (b - a) * (b - a)
		xt := mid
		if delta <= abs(sigma) {
			xt = xf + copysign(delta, sigma)
		}
		x := xt
		if abs(xt-mid) > r {
			x = mid - copysign(r, sigma)
		}
		if !(x > a && x < b) {
			break
		}

		y := f(x)
		switch {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
