package curve

import (
	"github.com/adtrdlvm/c-sike/internal/field"
)

// Isogeny is an l-isogeny phi : E_(A:C) -> E_(A':C') of small degree,
// built from a generator of its kernel.
type Isogeny interface {
	// GenerateCurve sets up phi from a kernel point of exact order l
	// (l = 3 or 4) and returns the image curve, as the coefficients
	// expected by the matching multiplication (Pow3k or Pow2k).
	GenerateCurve(K *ProjectivePoint) CurveCoefficientsEquiv

	// EvaluatePoint returns phi(P). GenerateCurve MUST have been
	// called first.
	EvaluatePoint(P *ProjectivePoint) ProjectivePoint
}

// Isogeny3 is a 3-isogeny. The image curve is returned as
// (A'+2C' : A'-2C').
type Isogeny3 struct {
	K1, K2 field.Fp2
}

// Isogeny4 is a 4-isogeny. The image curve is returned as
// (A'+2C' : 4C'). The kernel point MUST NOT be (1:1) or (-1:1), i.e.
// twice the kernel point is not (0,0).
type Isogeny4 struct {
	K1, K2, K3 field.Fp2
}

// NewIsogeny returns an empty isogeny of degree 3 or 4, or nil for any
// other degree.
func NewIsogeny(degree uint) Isogeny {
	switch degree {
	case 3:
		return new(Isogeny3)
	case 4:
		return new(Isogeny4)
	}
	return nil
}

func (phi *Isogeny3) GenerateCurve(K *ProjectivePoint) CurveCoefficientsEquiv {
	var t0, t1, t2, t3, t4 field.Fp2
	var cc CurveCoefficientsEquiv
	K1, K2 := &phi.K1, &phi.K2

	K1.Sub(&K.X, &K.Z)   // K1 = X - Z
	t0.Sqr(K1)           // t0 = K1^2
	K2.Add(&K.X, &K.Z)   // K2 = X + Z
	t1.Sqr(K2)           // t1 = K2^2
	t2.Add(&t0, &t1)     // t2 = t0 + t1
	t3.Add(K1, K2)       // t3 = K1 + K2
	t3.Sqr(&t3)          // t3 = t3^2
	t3.Sub(&t3, &t2)     // t3 = t3 - t2
	t2.Add(&t1, &t3)     // t2 = t1 + t3
	t3.Add(&t3, &t0)     // t3 = t3 + t0
	t4.Add(&t3, &t0)     // t4 = t3 + t0
	t4.Add(&t4, &t4)     // t4 = 2*t4
	t4.Add(&t1, &t4)     // t4 = t1 + t4
	cc.C.Mul(&t2, &t4)   // A24m = t2*t4
	t4.Add(&t1, &t2)     // t4 = t1 + t2
	t4.Add(&t4, &t4)     // t4 = 2*t4
	t4.Add(&t0, &t4)     // t4 = t0 + t4
	t4.Mul(&t3, &t4)     // t4 = t3*t4
	t0.Sub(&t4, &cc.C)   // t0 = t4 - A24m
	cc.A.Add(&cc.C, &t0) // A24p = A24m + t0
	return cc
}

func (phi *Isogeny3) EvaluatePoint(P *ProjectivePoint) ProjectivePoint {
	var t0, t1, t2 field.Fp2
	var Q ProjectivePoint

	t0.Add(&P.X, &P.Z)   // t0 = X + Z
	t1.Sub(&P.X, &P.Z)   // t1 = X - Z
	t0.Mul(&phi.K1, &t0) // t0 = K1*t0
	t1.Mul(&phi.K2, &t1) // t1 = K2*t1
	t2.Add(&t0, &t1)     // t2 = t0 + t1
	t0.Sub(&t1, &t0)     // t0 = t1 - t0
	t2.Sqr(&t2)          // t2 = t2^2
	t0.Sqr(&t0)          // t0 = t0^2
	Q.X.Mul(&P.X, &t2)   // X' = X*t2
	Q.Z.Mul(&P.Z, &t0)   // Z' = Z*t0
	return Q
}

func (phi *Isogeny4) GenerateCurve(K *ProjectivePoint) CurveCoefficientsEquiv {
	var cc CurveCoefficientsEquiv
	K1, K2, K3 := &phi.K1, &phi.K2, &phi.K3

	K2.Sub(&K.X, &K.Z)     // K2 = X - Z
	K3.Add(&K.X, &K.Z)     // K3 = X + Z
	K1.Sqr(&K.Z)           // K1 = Z^2
	K1.Add(K1, K1)         // K1 = 2*Z^2
	cc.C.Sqr(K1)           // C24 = 4*Z^4
	K1.Add(K1, K1)         // K1 = 4*Z^2
	cc.A.Sqr(&K.X)         // A24 = X^2
	cc.A.Add(&cc.A, &cc.A) // A24 = 2*X^2
	cc.A.Sqr(&cc.A)        // A24 = 4*X^4
	return cc
}

func (phi *Isogeny4) EvaluatePoint(P *ProjectivePoint) ProjectivePoint {
	var t0, t1 field.Fp2
	Q := *P
	x, z := &Q.X, &Q.Z

	t0.Add(x, z)
	t1.Sub(x, z)
	x.Mul(&t0, &phi.K2)
	z.Mul(&t1, &phi.K3)
	t0.Mul(&t0, &t1)
	t0.Mul(&t0, &phi.K1)
	t1.Add(x, z)
	z.Sub(x, z)
	t1.Sqr(&t1)
	z.Sqr(z)
	x.Add(&t0, &t1)
	t0.Sub(z, &t0)
	x.Mul(x, &t1)
	z.Mul(z, &t0)
	return Q
}
