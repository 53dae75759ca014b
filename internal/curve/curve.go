package curve

import (
	"github.com/adtrdlvm/c-sike/internal/field"
)

// This file implements the Montgomery curve model used along the isogeny
// chains: the curve E_(A:C) is y^2 = x^3 + (A/C)*x^2 + x, and points are
// handled in XZ coordinates only. With projective coordinates, a single
// field inversion is needed per operation at most (and none in the hot
// paths).

// ProjectiveCurveParameters defines a curve by its (A:C) coefficient.
type ProjectiveCurveParameters struct {
	A field.Fp2
	C field.Fp2
}

// CurveCoefficientsEquiv holds curve coefficients projectively equivalent
// to (A:C), in the form used by a given isogeny degree:
//   degree 4 (and doublings):   (A+2C : 4C)
//   degree 3 (and triplings):   (A+2C : A-2C)
type CurveCoefficientsEquiv struct {
	A field.Fp2
	C field.Fp2
}

// Returns an all-ones mask if the two curves have the same coefficient
// A/C, zero otherwise.
func (E *ProjectiveCurveParameters) Equal(E2 *ProjectiveCurveParameters) field.Word {
	var t0, t1 field.Fp2
	t0.Mul(&E.A, &E2.C)
	t1.Mul(&E2.A, &E.C)
	return t0.Equal(&t1)
}

// CalcCurveParamsEquiv4 computes (A+2C : 4C).
func CalcCurveParamsEquiv4(E *ProjectiveCurveParameters) CurveCoefficientsEquiv {
	var cc CurveCoefficientsEquiv
	cc.C.Add(&E.C, &E.C)
	cc.A.Add(&E.A, &cc.C)
	cc.C.Add(&cc.C, &cc.C)
	return cc
}

// CalcCurveParamsEquiv3 computes (A+2C : A-2C).
func CalcCurveParamsEquiv3(E *ProjectiveCurveParameters) CurveCoefficientsEquiv {
	var cc CurveCoefficientsEquiv
	var c2 field.Fp2
	c2.Add(&E.C, &E.C)
	cc.A.Add(&E.A, &c2)
	cc.C.Sub(&E.A, &c2)
	return cc
}

// RecoverCurveCoefficients4 converts (A+2C : 4C) back to (A:C).
func RecoverCurveCoefficients4(cc *CurveCoefficientsEquiv) ProjectiveCurveParameters {
	var E ProjectiveCurveParameters
	// C <- 4C/2 = 2C, A <- (A+2C) - 2C, C <- 2C/2
	E.C.Mul(&cc.C, &field.Fp2_HALF)
	E.A.Sub(&cc.A, &E.C)
	E.C.Mul(&E.C, &field.Fp2_HALF)
	return E
}

// RecoverCurveCoefficients3 converts (A+2C : A-2C) back to (4A : 4C).
func RecoverCurveCoefficients3(cc *CurveCoefficientsEquiv) ProjectiveCurveParameters {
	var E ProjectiveCurveParameters
	E.A.Add(&cc.A, &cc.C)
	E.A.Add(&E.A, &E.A)
	E.C.Sub(&cc.A, &cc.C)
	return E
}

// Helper for the ladder: returns (A+2C)/4C.
func calcAplus2Over4(E *ProjectiveCurveParameters) field.Fp2 {
	var t, r field.Fp2
	t.Add(&E.C, &E.C)
	r.Add(&E.A, &t)
	t.Add(&t, &t)
	t.Inv(&t)
	r.Mul(&r, &t)
	return r
}

// Jinvariant computes the j-invariant of E_(A:C):
//   j = 256*(A^2 - 3C^2)^3 / (C^4*(A^2 - 4C^2))
// If C = 0 or A^2 = 4C^2 (singular curve), then this returns zero.
func Jinvariant(E *ProjectiveCurveParameters) field.Fp2 {
	var j, t0, t1 field.Fp2

	j.Sqr(&E.A)       // j  = A^2
	t1.Sqr(&E.C)      // t1 = C^2
	t0.Add(&t1, &t1)  // t0 = 2C^2
	t0.Sub(&j, &t0)   // t0 = A^2 - 2C^2
	t0.Sub(&t0, &t1)  // t0 = A^2 - 3C^2
	j.Sub(&t0, &t1)   // j  = A^2 - 4C^2
	t1.Sqr(&t1)       // t1 = C^4
	j.Mul(&j, &t1)    // j  = C^4*(A^2 - 4C^2)
	t0.Add(&t0, &t0)  // t0 = 2*(A^2 - 3C^2)
	t0.Add(&t0, &t0)  // t0 = 4*(A^2 - 3C^2)
	t1.Sqr(&t0)       // t1 = 16*(A^2 - 3C^2)^2
	t0.Mul(&t0, &t1)  // t0 = 64*(A^2 - 3C^2)^3
	t0.Add(&t0, &t0)  // t0 = 128*(A^2 - 3C^2)^3
	t0.Add(&t0, &t0)  // t0 = 256*(A^2 - 3C^2)^3
	j.Inv(&j)
	j.Mul(&t0, &j)
	return j
}

// RecoverCoordinateA recovers the curve coefficient of E_(A:1) from the
// affine x-coordinates of P, Q and Q - P:
//   A = (1 - xP*xQ - xP*xR - xQ*xR)^2 / (4*xP*xQ*xR) - xP - xQ - xR
// The result has C = 1.
func RecoverCoordinateA(xP, xQ, xR *field.Fp2) ProjectiveCurveParameters {
	var E ProjectiveCurveParameters
	var t0, t1 field.Fp2

	t1.Add(xP, xQ)                // t1 = xP + xQ
	t0.Mul(xP, xQ)                // t0 = xP*xQ
	E.A.Mul(xR, &t1)              // A  = xR*t1
	E.A.Add(&E.A, &t0)            // A  = A + t0
	t0.Mul(&t0, xR)               // t0 = t0*xR
	E.A.Sub(&E.A, &field.Fp2_ONE) // A  = A - 1
	t0.Add(&t0, &t0)              // t0 = 2*t0
	t1.Add(&t1, xR)               // t1 = t1 + xR
	t0.Add(&t0, &t0)              // t0 = 4*t0
	E.A.Sqr(&E.A)                 // A  = A^2
	t0.Inv(&t0)                   // t0 = 1/t0
	E.A.Mul(&E.A, &t0)            // A  = A*t0
	E.A.Sub(&E.A, &t1)            // A  = A - t1
	E.C = field.Fp2_ONE
	return E
}

// Batch3Inv sets (y1, y2, y3) = (1/x1, 1/x2, 1/x3) with a single field
// inversion. All xi and yi MUST be distinct. If any xi is zero, then all
// outputs are zero.
func Batch3Inv(x1, x2, x3, y1, y2, y3 *field.Fp2) {
	var x1x2, t field.Fp2

	x1x2.Mul(x1, x2)
	t.Mul(&x1x2, x3)
	t.Inv(&t)
	y1.Mul(&t, x2)
	y1.Mul(y1, x3)
	y2.Mul(&t, x1)
	y2.Mul(y2, x3)
	y3.Mul(&t, &x1x2)
}
