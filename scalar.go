package geom

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the coordinate types that geom types and
// functions can handle. Named types are allowed; their arithmetic follows
// their underlying float32 or float64 type.
//
// Constants such as zero, one and two are written as untyped constants and
// converted to the scalar type, e.g. S(2).
type Scalar interface {
	constraints.Float
}

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// DefaultTolerance is a default flattening tolerance. A tenth of a unit is not
// visible to the eye when units are pixels.
const DefaultTolerance = 0.1

// isFloat32 reports whether S has float32 as its underlying type.
func isFloat32[S Scalar]() bool {
	return unsafe.Sizeof(S(0)) == 4
}

func sqrt[S Scalar](x S) S {
	if isFloat32[S]() {
		return S(math32.Sqrt(float32(x)))
	}
	return S(math.Sqrt(float64(x)))
}

func cbrt[S Scalar](x S) S {
	if isFloat32[S]() {
		return S(math32.Cbrt(float32(x)))
	}
	return S(math.Cbrt(float64(x)))
}

func hypot[S Scalar](x, y S) S {
	if isFloat32[S]() {
		return S(math32.Hypot(float32(x), float32(y)))
	}
	return S(math.Hypot(float64(x), float64(y)))
}

func abs[S Scalar](x S) S {
	if isFloat32[S]() {
		return S(math32.Abs(float32(x)))
	}
	return S(math.Abs(float64(x)))
}

func copysign[S Scalar](x, sign S) S {
	if isFloat32[S]() {
		return S(math32.Copysign(float32(x), float32(sign)))
	}
	return S(math.Copysign(float64(x), float64(sign)))
}

func atan2[S Scalar](y, x S) S {
	if isFloat32[S]() {
		return S(math32.Atan2(float32(y), float32(x)))
	}
	return S(math.Atan2(float64(y), float64(x)))
}

func sincos[S Scalar](x S) (sin, cos S) {
	if isFloat32[S]() {
		s, c := math32.Sincos(float32(x))
		return S(s), S(c)
	}
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

func log2[S Scalar](x S) S {
	if isFloat32[S]() {
		return S(math32.Log2(float32(x)))
	}
	return S(math.Log2(float64(x)))
}

func ceil[S Scalar](x S) S {
	if isFloat32[S]() {
		return S(math32.Ceil(float32(x)))
	}
	return S(math.Ceil(float64(x)))
}

// fma returns x*y+z, computing the product without rounding. math32 has no
// FMA; the product of two float32 values is exact in float64.
func fma[S Scalar](x, y, z S) S {
	if isFloat32[S]() {
		return S(float32(float64(x)*float64(y) + float64(z)))
	}
	return S(math.FMA(float64(x), float64(y), float64(z)))
}

func isInf[S Scalar](x S) bool {
	if isFloat32[S]() {
		return math32.IsInf(float32(x), 0)
	}
	return math.IsInf(float64(x), 0)
}

func isNaN[S Scalar](x S) bool {
	return x != x
}

// relEpsilon returns the relative error below which a polynomial coefficient
// computed in S is indistinguishable from zero.
func relEpsilon[S Scalar]() S {
	if isFloat32[S]() {
		return 1e-5
	}
	return 1e-12
}

// paramEpsilon is how far outside [0, 1] a computed curve parameter may stray
// and still be treated as lying on the curve.
func paramEpsilon[S Scalar]() S {
	if isFloat32[S]() {
		return 1e-6
	}
	return 1e-9
}
