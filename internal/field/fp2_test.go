package field

import (
	"bytes"
	"math/big"
	"testing"
)

// Tests for GF(p^2).

// =====================================================================

// Reference multiplication in GF(p^2) with big integers.
func bigFp2Mul(x, y *Fp2) (re, im big.Int) {
	a, b := fpToBig(&x.A), fpToBig(&x.B)
	c, d := fpToBig(&y.A), fpToBig(&y.B)
	var t big.Int
	re.Mul(&a, &c)
	t.Mul(&b, &d)
	re.Sub(&re, &t).Mod(&re, bigP())
	im.Mul(&a, &d)
	t.Mul(&b, &c)
	im.Add(&im, &t).Mod(&im, bigP())
	return
}

func checkFp2(t *testing.T, name string, x *Fp2, re, im *big.Int) {
	t.Helper()
	checkReduced(t, name, &x.A)
	checkReduced(t, name, &x.B)
	zr, zi := fpToBig(&x.A), fpToBig(&x.B)
	if zr.Cmp(re) != 0 || zi.Cmp(im) != 0 {
		t.Fatalf("ERR %s: got %s", name, fp2ToString(x))
	}
}

func TestFp2AddSub(t *testing.T) {
	var rng prng
	rng.init("test add Fp2")
	p := bigP()
	var x, y, z Fp2
	for i := 0; i < 5000; i++ {
		rng.mkfp2(&x)
		rng.mkfp2(&y)
		a, b := fpToBig(&x.A), fpToBig(&x.B)
		c, d := fpToBig(&y.A), fpToBig(&y.B)
		var re, im big.Int

		z.Add(&x, &y)
		re.Add(&a, &c).Mod(&re, p)
		im.Add(&b, &d).Mod(&im, p)
		checkFp2(t, "add", &z, &re, &im)

		z.Sub(&x, &y)
		re.Sub(&a, &c).Mod(&re, p)
		im.Sub(&b, &d).Mod(&im, p)
		checkFp2(t, "sub", &z, &re, &im)

		z.Neg(&x)
		re.Neg(&a).Mod(&re, p)
		im.Neg(&b).Mod(&im, p)
		checkFp2(t, "neg", &z, &re, &im)
	}
}

func TestFp2Mul(t *testing.T) {
	var rng prng
	rng.init("test mul Fp2")
	var x, y, z, w Fp2
	for i := 0; i < 5000; i++ {
		rng.mkfp2(&x)
		rng.mkfp2(&y)
		re, im := bigFp2Mul(&x, &y)
		z.Mul(&x, &y)
		checkFp2(t, "mul", &z, &re, &im)

		// Destination aliasing either operand.
		w = x
		w.Mul(&w, &y)
		if w.Equal(&z) != ^Word(0) {
			t.Fatalf("ERR mul (aliased)")
		}

		re, im = bigFp2Mul(&x, &x)
		z.Sqr(&x)
		checkFp2(t, "sqr", &z, &re, &im)
		w = x
		w.Sqr(&w)
		if w.Equal(&z) != ^Word(0) {
			t.Fatalf("ERR sqr (aliased)")
		}
	}

	// i^2 = -1
	var i2 Fp2
	i2.B = Fp_ONE
	z.Sqr(&i2)
	w.Neg(&Fp2_ONE)
	if z.Equal(&w) != ^Word(0) {
		t.Fatalf("ERR i^2 != -1")
	}
}

func TestFp2Inv(t *testing.T) {
	var rng prng
	rng.init("test inv Fp2")
	var x, y, z Fp2
	for i := 0; i < 200; i++ {
		rng.mkfp2(&x)
		if i == 1 {
			// Purely imaginary and purely real values.
			x.A = Fp_ZERO
		} else if i == 2 {
			x.B = Fp_ZERO
		}
		y.Inv(&x)
		z.Mul(&x, &y)
		if z.Equal(&Fp2_ONE) != ^Word(0) {
			t.Fatalf("ERR inv: x = %s", fp2ToString(&x))
		}
		y.Set(&x)
		y.Inv(&y)
		z.Mul(&x, &y)
		if z.Equal(&Fp2_ONE) != ^Word(0) {
			t.Fatalf("ERR inv (aliased)")
		}
	}
	y.Inv(&Fp2_ZERO)
	if y.IsZero() != ^Word(0) {
		t.Fatalf("ERR inv(0) != 0")
	}
}

func TestFp2SelectSwap(t *testing.T) {
	var rng prng
	rng.init("test select Fp2")
	var x, y, z Fp2
	rng.mkfp2(&x)
	rng.mkfp2(&y)
	z.Select(&x, &y, ^Word(0))
	if z != x {
		t.Fatalf("ERR select(ones)")
	}
	z.Select(&x, &y, 0)
	if z != y {
		t.Fatalf("ERR select(zero)")
	}
	u, v := x, y
	u.CondSwap(&v, 0)
	if u != x || v != y {
		t.Fatalf("ERR condswap(zero)")
	}
	u.CondSwap(&v, ^Word(0))
	if u != y || v != x {
		t.Fatalf("ERR condswap(ones)")
	}
	if x.Equal(&y) != 0 || x.IsZero() != 0 {
		t.Fatalf("ERR equal/iszero")
	}
	z = Fp2{B: Fp_ONE}
	if z.IsZero() != 0 {
		t.Fatalf("ERR iszero with nonzero imaginary part")
	}
}

func TestFp2EncodeDecode(t *testing.T) {
	var rng prng
	rng.init("test encode Fp2")
	var x, y Fp2
	for i := 0; i < 1000; i++ {
		rng.mkfp2(&x)
		buf := x.Encode(nil)
		if len(buf) != Fp2Bytes {
			t.Fatalf("ERR encode: length %d", len(buf))
		}
		if !bytes.Equal(buf[:FieldBytes], x.A.Encode(nil)) || !bytes.Equal(buf[FieldBytes:], x.B.Encode(nil)) {
			t.Fatalf("ERR encode: layout")
		}
		if y.Decode(buf) != ^Word(0) || y.Equal(&x) != ^Word(0) {
			t.Fatalf("ERR decode: x = %s", fp2ToString(&x))
		}
	}

	// A valid real part does not survive an invalid imaginary part.
	buf := Fp2_SIX.Encode(nil)
	copy(buf[FieldBytes:], encodeBigLE(bigP(), FieldBytes))
	if y.Decode(buf) != 0 || y.IsZero() != ^Word(0) {
		t.Fatalf("ERR decode: out of range imaginary part accepted")
	}
	if y.Decode(buf[:Fp2Bytes-1]) != 0 {
		t.Fatalf("ERR decode: short input accepted")
	}
}
