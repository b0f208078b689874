package geom

import "iter"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Note that this convention is transposed from PostScript and Direct2D, but is
// consistent with the [Wikipedia] formulation of affine transformation as
// augmented matrix. The idea is that (A * B) * v == A * (B * v).
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine[S Scalar] struct {
	// Affine is a struct instead of an array because structs benefit from SROA
	// and arrays don't.

	N0, N1, N2, N3, N4, N5 S
}

// Identity returns the identity transform.
func Identity[S Scalar]() Affine[S] {
	return Affine[S]{1, 0, 0, 1, 0, 0}
}

// FlipY returns a transform that is flipped on the y-axis. Useful for
// converting between y-up and y-down spaces.
func FlipY[S Scalar]() Affine[S] {
	return Affine[S]{1, 0, 0, -1, 0, 0}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale[S Scalar](x, y S) Affine[S] {
	return Affine[S]{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate[S Scalar](v Vec2[S]) Affine[S] {
	return Affine[S]{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate[S Scalar](th S) Affine[S] {
	sin, cos := sincos(th)
	return Affine[S]{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
//
// See [Rotate] for more info.
func RotateAbout[S Scalar](th S, center Point[S]) Affine[S] {
	c := Vec2[S](center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and vertical
// directions, respectively.
func Skew[S Scalar](x, y S) Affine[S] {
	return Affine[S]{1, y, x, 1, 0, 0}
}

func (aff Affine[S]) Mul(o Affine[S]) Affine[S] {
	return Affine[S]{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreRotate creates a rotation by th followed by aff.
//
// Equivalent to "aff * Rotate(th)"
func (aff Affine[S]) PreRotate(th S) Affine[S] {
	return aff.Mul(Rotate(th))
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine[S]) ThenRotate(th S) Affine[S] {
	return Rotate(th).Mul(aff)
}

// PreScale creates a scale followed by aff.
func (aff Affine[S]) PreScale(x, y S) Affine[S] {
	return aff.Mul(Scale(x, y))
}

// ThenScale creates aff followed by a scale.
func (aff Affine[S]) ThenScale(x, y S) Affine[S] {
	return Scale(x, y).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
func (aff Affine[S]) PreTranslate(v Vec2[S]) Affine[S] {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine[S]) ThenTranslate(v Vec2[S]) Affine[S] {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine[S]) Determinant() S {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine[S]) Invert() Affine[S] {
	invDet := 1 / aff.Determinant()
	return Affine[S]{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine[S]) IsInf() bool {
	return isInf(aff.N0) ||
		isInf(aff.N1) ||
		isInf(aff.N2) ||
		isInf(aff.N3) ||
		isInf(aff.N4) ||
		isInf(aff.N5)
}

func (aff Affine[S]) IsNaN() bool {
	return isNaN(aff.N0) ||
		isNaN(aff.N1) ||
		isNaN(aff.N2) ||
		isNaN(aff.N3) ||
		isNaN(aff.N4) ||
		isNaN(aff.N5)
}

// TransformRectBoundingBox computes the bounding box of a transformed rectangle.
//
// The returned rectangle always has non-negative width and height.
func (aff Affine[S]) TransformRectBoundingBox(rect Rect[S]) Rect[S] {
	p00 := Pt(rect.X0, rect.Y0).Transform(aff)
	p01 := Pt(rect.X0, rect.Y1).Transform(aff)
	p10 := Pt(rect.X1, rect.Y0).Transform(aff)
	p11 := Pt(rect.X1, rect.Y1).Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}

// Transform applies aff to every value of seq.
func Transform[S Scalar, T interface{ Transform(Affine[S]) T }](seq iter.Seq[T], aff Affine[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
