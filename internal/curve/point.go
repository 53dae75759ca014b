package curve

import (
	"github.com/adtrdlvm/c-sike/internal/field"
)

// ProjectivePoint is the x-coordinate of a point, as the ratio X/Z.
// (X:Z) and (l*X:l*Z) are the same point for any non-zero l; Z = 0 is
// the point at infinity.
type ProjectivePoint struct {
	X field.Fp2
	Z field.Fp2
}

// Point at infinity.
var ProjectivePoint_INFINITY = ProjectivePoint{X: field.Fp2_ONE}

// NewAffinePoint returns the point (x:1).
func NewAffinePoint(x *field.Fp2) ProjectivePoint {
	return ProjectivePoint{X: *x, Z: field.Fp2_ONE}
}

// P <- Q
func (P *ProjectivePoint) Set(Q *ProjectivePoint) *ProjectivePoint {
	*P = *Q
	return P
}

// P <- [2^k]Q, on the curve with coefficients cc = (A+2C : 4C).
// The sequence of operations depends only on k.
func (P *ProjectivePoint) Pow2k(Q *ProjectivePoint, cc *CurveCoefficientsEquiv, k uint32) *ProjectivePoint {
	var t0, t1 field.Fp2

	*P = *Q
	x, z := &P.X, &P.Z
	for i := uint32(0); i < k; i++ {
		t0.Sub(x, z)       // t0 = X - Z
		t1.Add(x, z)       // t1 = X + Z
		t0.Sqr(&t0)        // t0 = t0^2
		t1.Sqr(&t1)        // t1 = t1^2
		z.Mul(&cc.C, &t0)  // Z  = C24*t0
		x.Mul(z, &t1)      // X  = Z*t1
		t1.Sub(&t1, &t0)   // t1 = t1 - t0
		t0.Mul(&cc.A, &t1) // t0 = A24*t1
		z.Add(z, &t0)      // Z  = Z + t0
		z.Mul(z, &t1)      // Z  = Z*t1
	}
	return P
}

// P <- [3^k]Q, on the curve with coefficients cc = (A+2C : A-2C).
// The sequence of operations depends only on k.
func (P *ProjectivePoint) Pow3k(Q *ProjectivePoint, cc *CurveCoefficientsEquiv, k uint32) *ProjectivePoint {
	var t0, t1, t2, t3, t4, t5, t6 field.Fp2

	*P = *Q
	x, z := &P.X, &P.Z
	for i := uint32(0); i < k; i++ {
		t0.Sub(x, z)       // t0 = X - Z
		t2.Sqr(&t0)        // t2 = t0^2
		t1.Add(x, z)       // t1 = X + Z
		t3.Sqr(&t1)        // t3 = t1^2
		t4.Add(&t1, &t0)   // t4 = t1 + t0
		t0.Sub(&t1, &t0)   // t0 = t1 - t0
		t1.Sqr(&t4)        // t1 = t4^2
		t1.Sub(&t1, &t3)   // t1 = t1 - t3
		t1.Sub(&t1, &t2)   // t1 = t1 - t2
		t5.Mul(&t3, &cc.A) // t5 = t3*A24p
		t3.Mul(&t3, &t5)   // t3 = t3*t5
		t6.Mul(&t2, &cc.C) // t6 = t2*A24m
		t2.Mul(&t2, &t6)   // t2 = t2*t6
		t3.Sub(&t2, &t3)   // t3 = t2 - t3
		t2.Sub(&t5, &t6)   // t2 = t5 - t6
		t1.Mul(&t2, &t1)   // t1 = t2*t1
		t2.Add(&t3, &t1)   // t2 = t3 + t1
		t2.Sqr(&t2)        // t2 = t2^2
		x.Mul(&t2, &t4)    // X  = t2*t4
		t1.Sub(&t3, &t1)   // t1 = t3 - t1
		t1.Sqr(&t1)        // t1 = t1^2
		z.Mul(&t1, &t0)    // Z  = t1*t0
	}
	return P
}

// P <- 2*Q
func (P *ProjectivePoint) Double(Q *ProjectivePoint, cc *CurveCoefficientsEquiv) *ProjectivePoint {
	return P.Pow2k(Q, cc, 1)
}

// P <- 3*Q
func (P *ProjectivePoint) Triple(Q *ProjectivePoint, cc *CurveCoefficientsEquiv) *ProjectivePoint {
	return P.Pow3k(Q, cc, 1)
}

// Differential addition: R <- P + Q, given PmQ = P - Q. The result is
// undefined if PmQ is the point at infinity or has x = 0.
func (R *ProjectivePoint) Add(P, Q, PmQ *ProjectivePoint) *ProjectivePoint {
	var t0, t1, t2 field.Fp2

	t0.Add(&P.X, &P.Z) // t0 = Xp + Zp
	t1.Sub(&Q.X, &Q.Z) // t1 = Xq - Zq
	t0.Mul(&t0, &t1)   // t0 = (Xp + Zp)*(Xq - Zq)
	t1.Sub(&P.X, &P.Z) // t1 = Xp - Zp
	t2.Add(&Q.X, &Q.Z) // t2 = Xq + Zq
	t1.Mul(&t1, &t2)   // t1 = (Xp - Zp)*(Xq + Zq)
	t2.Add(&t0, &t1)
	t2.Sqr(&t2)
	t0.Sub(&t0, &t1)
	t0.Sqr(&t0)
	t2.Mul(&PmQ.Z, &t2)
	R.Z.Mul(&PmQ.X, &t0)
	R.X = t2
	return R
}

// Combined doubling and differential addition, for the ladder: given P,
// Q, QmP = Q - P and a24 = (A+2C)/4C, returns 2*P and P + Q.
func dblAdd(P, Q, QmP *ProjectivePoint, a24 *field.Fp2) (dbl, sum ProjectivePoint) {
	var t0, t1, t2 field.Fp2

	t0.Add(&P.X, &P.Z)        // t0 = Xp + Zp
	t1.Sub(&P.X, &P.Z)        // t1 = Xp - Zp
	dbl.X.Sqr(&t0)            // X2 = t0^2
	t2.Sub(&Q.X, &Q.Z)        // t2 = Xq - Zq
	sum.X.Add(&Q.X, &Q.Z)     // Xs = Xq + Zq
	t0.Mul(&t0, &t2)          // t0 = t0*t2
	dbl.Z.Sqr(&t1)            // Z2 = t1^2
	t1.Mul(&t1, &sum.X)       // t1 = t1*Xs
	t2.Sub(&dbl.X, &dbl.Z)    // t2 = X2 - Z2
	dbl.X.Mul(&dbl.X, &dbl.Z) // X2 = X2*Z2
	sum.X.Mul(a24, &t2)       // Xs = a24*t2
	sum.Z.Sub(&t0, &t1)       // Zs = t0 - t1
	dbl.Z.Add(&sum.X, &dbl.Z) // Z2 = Xs + Z2
	sum.X.Add(&t0, &t1)       // Xs = t0 + t1
	dbl.Z.Mul(&dbl.Z, &t2)    // Z2 = Z2*t2
	sum.Z.Sqr(&sum.Z)         // Zs = Zs^2
	sum.X.Sqr(&sum.X)         // Xs = Xs^2
	sum.Z.Mul(&QmP.X, &sum.Z) // Zs = Xqmp*Zs
	sum.X.Mul(&QmP.Z, &sum.X) // Xs = Zqmp*Xs
	return
}

// Swap P and Q if mask is all-ones; leave them untouched if mask is zero.
func (P *ProjectivePoint) condSwap(Q *ProjectivePoint, mask field.Word) {
	P.X.CondSwap(&Q.X, mask)
	P.Z.CondSwap(&Q.Z, mask)
}

// Returns an all-ones mask if P and Q are the same point (X1*Z2 = X2*Z1),
// zero otherwise. Two points at infinity are equal; the invalid (0:0)
// compares equal to everything.
func (P *ProjectivePoint) Equal(Q *ProjectivePoint) field.Word {
	var t0, t1 field.Fp2
	t0.Mul(&P.X, &Q.Z)
	t1.Mul(&Q.X, &P.Z)
	return t0.Equal(&t1)
}

// Returns an all-ones mask if P is the point at infinity, zero otherwise.
func (P *ProjectivePoint) IsInfinity() field.Word {
	return P.Z.IsZero()
}

// Affine returns X/Z (zero for the point at infinity).
func (P *ProjectivePoint) Affine() field.Fp2 {
	var x field.Fp2
	x.Inv(&P.Z)
	x.Mul(&x, &P.X)
	return x
}

// ScalarMul3Pt computes x(P + [s]Q) from x(P), x(Q) and x(P - Q), with a
// right-to-left ladder over the low nbits bits of the scalar s
// (unsigned little-endian, at least (nbits+7)/8 bytes). The sequence
// of operations depends only on nbits; scalar bits only drive
// constant-time swaps.
func ScalarMul3Pt(E *ProjectiveCurveParameters, P, Q, PmQ *ProjectivePoint, nbits uint, scalar []byte) ProjectivePoint {
	a24 := calcAplus2Over4(E)
	R0, R1, R2 := *Q, *P, *PmQ

	var prev byte
	for i := uint(0); i < nbits; i++ {
		bit := (scalar[i>>3] >> (i & 7)) & 1
		R1.condSwap(&R2, -field.Word(prev^bit))
		prev = bit
		R0, R2 = dblAdd(&R0, &R2, &R1, &a24)
	}
	R1.condSwap(&R2, -field.Word(prev))
	return R1
}
