package field

import (
	"github.com/adtrdlvm/c-sike/internal/ct"
)

// This file implements computations on the field of integers modulo
// p = 2^216 * 3^137 - 1 (434 bits). This implementation is portable (no
// assembly) and uses limbs of the native word size, selected at build
// time (see word64.go and word32.go). It is constant-time as long as
// word multiplication is constant-time on the target; all carries and
// borrows go through the branchless primitives of the ct package.

// =======================================================================
// Internal functions
// =======================================================================

// Unless otherwise stated, all functions below accept source and
// destination operands to be the same objects. Parameter order is
// destination first (similar to mathematical notation: "d = a + b").
//
// Storage format: NumWords limbs, little-endian (first limb is least
// significant), for a total of 448 bits. Field elements are kept in
// Montgomery representation (x*R mod p with R = 2^448) and are always
// fully reduced: all functions expect inputs in 0..p-1 and return
// outputs in 0..p-1.

// Number of bytes in an encoded field element: ceil(434/8).
const FieldBytes = 55

const wordBytes = WordBits / 8

// Fp is an element of GF(p), in Montgomery representation.
type Fp [NumWords]Word

// FpX2 is a double-width integer, used as the product of two field
// elements before Montgomery reduction.
type FpX2 [2 * NumWords]Word

// FpFromWords64 returns the element with the given raw limbs, provided
// as seven 64-bit words (least significant first) whatever the native
// limb size. No conversion to Montgomery representation is applied.
func FpFromWords64(src *[7]uint64) Fp {
	var d Fp
	fromU64(&d, src)
	return d
}

// The modulus p = 2^216 * 3^137 - 1 (not in Montgomery representation).
var P434 = FpFromWords64(&[7]uint64{
	0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
	0xFDC1767AE2FFFFFF, 0x7BC65C783158AEA3, 0x6CFC5FD681C52056,
	0x0002341F27177344})

// p + 1, used by the Montgomery reduction.
var P434p1 = FpFromWords64(&[7]uint64{
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
	0xFDC1767AE3000000, 0x7BC65C783158AEA3, 0x6CFC5FD681C52056,
	0x0002341F27177344})

// 2*p
var P434x2 = FpFromWords64(&[7]uint64{
	0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
	0xFB82ECF5C5FFFFFF, 0xF78CB8F062B15D47, 0xD9F8BFAD038A40AC,
	0x0004683E4E2EE688})

// R^2 mod p = 2^896 mod p, used for conversions into Montgomery
// representation.
var MontR2 = FpFromWords64(&[7]uint64{
	0x28E55B65DCD69B30, 0xACEC7367768798C2, 0xAB27973F8311688D,
	0x175CC6AF8D6C7C0B, 0xABCD92BF2DDE347E, 0x69E16A61C7686D9A,
	0x000025A89BCDD12A})

// Exponent p - 2, for inversion. This is public and identical for all
// limb sizes, hence kept as 64-bit words.
var p434m2 = [7]uint64{
	0xFFFFFFFFFFFFFFFD, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
	0xFDC1767AE2FFFFFF, 0x7BC65C783158AEA3, 0x6CFC5FD681C52056,
	0x0002341F27177344}

// Internal function for field addition.
// Parameters:
//   d    destination
//   a    first operand
//   b    second operand
func fp_add(d, a, b *Fp) {
	// a + b < 2*p < 2^448: there is no carry out of the top limb.
	var cc Word
	for i := 0; i < NumWords; i++ {
		cc, d[i] = ct.AddC(cc, a[i], b[i])
	}
	fp_rdcp(d)
}

// Internal function for field subtraction.
// Parameters:
//   d    destination
//   a    first operand
//   b    second operand
func fp_sub(d, a, b *Fp) {
	var bw Word
	for i := 0; i < NumWords; i++ {
		bw, d[i] = ct.SubC(bw, a[i], b[i])
	}

	// On borrow, the result is a - b + 2^448; adding p wraps it
	// back into 0..p-1.
	m := -bw
	var cc Word
	for i := 0; i < NumWords; i++ {
		cc, d[i] = ct.AddC(cc, d[i], P434[i]&m)
	}
}

// Internal function for field negation.
//   d    destination
//   a    operand
func fp_neg(d, a *Fp) {
	var z Fp
	fp_sub(d, &z, a)
}

// Internal function for constant-time selection: d is set to a if
// mask is all-ones, to b if mask is zero.
func fp_select(d, a, b *Fp, mask Word) {
	for i := 0; i < NumWords; i++ {
		d[i] = ct.Select(mask, a[i], b[i])
	}
}

// Swap a and b if mask is all-ones; leave them untouched if mask is zero.
// a and b MUST be distinct.
func fp_cswap(a, b *Fp, mask Word) {
	for i := 0; i < NumWords; i++ {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// (t, u, v) <- (t, u, v) + a*b
func mulAcc(t, u, v, a, b Word) (Word, Word, Word) {
	hi, lo := mulWord(a, b)
	cc, v := ct.AddC(0, v, lo)
	cc, u = ct.AddC(cc, u, hi)
	return t + cc, u, v
}

// Internal function for integer multiplication (product scanning).
// The destination is a double-width integer; no reduction is applied.
//   c    destination (distinct from a and b)
//   a    first operand
//   b    second operand
func mp_mul(c *FpX2, a, b *Fp) {
	// (t, u, v) is a three-word column accumulator.
	var t, u, v Word
	for i := 0; i < NumWords; i++ {
		for j := 0; j <= i; j++ {
			t, u, v = mulAcc(t, u, v, a[j], b[i-j])
		}
		c[i] = v
		v, u, t = u, t, 0
	}
	for i := NumWords; i < 2*NumWords-1; i++ {
		for j := i - NumWords + 1; j < NumWords; j++ {
			t, u, v = mulAcc(t, u, v, a[j], b[i-j])
		}
		c[i] = v
		v, u, t = u, t, 0
	}
	c[2*NumWords-1] = v
}

// Internal function for Montgomery reduction: mc <- ma / R mod p, with
// output in 0..2p-1. Input ma MUST be lower than p*R.
//
// The reduction is done one limb at a time, so it only needs -1/p mod
// 2^WordBits, which is 1 (p = -1 mod 2^216). Each quotient limb is thus
// the current low limb of the running sum, and the sum is accumulated
// with p + 1 instead of p.
// The low zeroWords limbs of p + 1 are zero and the corresponding
// products are skipped; this only depends on the loop indices.
func rdc_mont(mc *Fp, ma *FpX2) {
	var t, u, v, cc Word
	for i := 0; i < NumWords; i++ {
		for j := 0; j <= i-zeroWords; j++ {
			t, u, v = mulAcc(t, u, v, mc[j], P434p1[i-j])
		}
		cc, v = ct.AddC(0, v, ma[i])
		cc, u = ct.AddC(cc, u, 0)
		t += cc
		mc[i] = v
		v, u, t = u, t, 0
	}
	// mc[j] holds a quotient limb until it is overwritten with output
	// limb j; each quotient limb is used for the last time before that.
	for i := NumWords; i < 2*NumWords-1; i++ {
		for j := i - NumWords + 1; j < NumWords && j <= i-zeroWords; j++ {
			t, u, v = mulAcc(t, u, v, mc[j], P434p1[i-j])
		}
		cc, v = ct.AddC(0, v, ma[i])
		cc, u = ct.AddC(cc, u, 0)
		t += cc
		mc[i-NumWords] = v
		v, u, t = u, t, 0
	}
	_, mc[NumWords-1] = ct.AddC(0, v, ma[2*NumWords-1])
}

// Internal function for the correction of a value in 0..2p-1 into
// 0..p-1: p is subtracted, then added back if that borrowed.
func fp_rdcp(d *Fp) {
	var bw Word
	for i := 0; i < NumWords; i++ {
		bw, d[i] = ct.SubC(bw, d[i], P434[i])
	}
	m := -bw
	var cc Word
	for i := 0; i < NumWords; i++ {
		cc, d[i] = ct.AddC(cc, d[i], P434[i]&m)
	}
}

// Internal function for field multiplication (Montgomery).
//   d    destination
//   a    first operand
//   b    second operand
func fp_mul(d, a, b *Fp) {
	var t FpX2
	mp_mul(&t, a, b)
	rdc_mont(d, &t)
	fp_rdcp(d)
}

// Internal function for field squaring.
func fp_sqr(d, a *Fp) {
	fp_mul(d, a, a)
}

// Internal function for field inversion: d <- 1/a, computed as a^(p-2)
// with a fixed 4-bit window. The sequence of operations depends only on
// the modulus. If a is zero, then d is set to zero.
func fp_inv(d, a *Fp) {
	var win [16]Fp
	win[0] = Fp_ONE
	win[1] = *a
	for i := 2; i < 16; i++ {
		fp_mul(&win[i], &win[i-1], a)
	}

	r := Fp_ONE
	for i := len(p434m2) - 1; i >= 0; i-- {
		e := p434m2[i]
		for k := 60; k >= 0; k -= 4 {
			fp_sqr(&r, &r)
			fp_sqr(&r, &r)
			fp_sqr(&r, &r)
			fp_sqr(&r, &r)
			fp_mul(&r, &r, &win[(e>>uint(k))&15])
		}
	}
	*d = r
}

// Internal function for comparing a value with zero. This function
// returns an all-ones mask if the value is zero, zero otherwise.
func fp_iszero(a *Fp) Word {
	var t Word
	for i := 0; i < NumWords; i++ {
		t |= a[i]
	}
	return ct.Eq(t, 0)
}

// Internal function for comparing two values (all-ones mask on equality).
func fp_eq(a, b *Fp) Word {
	var t Word
	for i := 0; i < NumWords; i++ {
		t |= a[i] ^ b[i]
	}
	return ct.Eq(t, 0)
}

// Convert a (0..p-1) into Montgomery representation.
func fp_tomont(d, a *Fp) {
	fp_mul(d, a, &MontR2)
}

// Convert a out of Montgomery representation.
func fp_frommont(d, a *Fp) {
	var t FpX2
	copy(t[:NumWords], a[:])
	rdc_mont(d, &t)
	fp_rdcp(d)
}

// Internal function for encoding a field element into FieldBytes bytes
// (unsigned little-endian, normal representation). The encoded element
// is appended to the specified slice; the new slice is returned.
func fp_encode(b []byte, a *Fp) []byte {
	len1 := len(b)
	len2 := len1 + FieldBytes
	var b2 []byte
	if cap(b) >= len2 {
		b2 = b[:len2]
	} else {
		b2 = make([]byte, len2)
		copy(b2, b)
	}
	dst := b2[len1:]
	var t Fp
	fp_frommont(&t, a)
	for i := 0; i < FieldBytes; i++ {
		dst[i] = byte(t[i/wordBytes] >> (8 * uint(i%wordBytes)))
	}
	return b2
}

// Internal function for decoding a field element from exactly FieldBytes
// bytes. If the source is not in the valid range (0..p-1), then the
// destination is set to zero and 0 is returned; otherwise, an all-ones
// mask is returned.
func fp_decode(d *Fp, src []byte) Word {
	var t Fp
	for i := 0; i < FieldBytes; i++ {
		t[i/wordBytes] |= Word(src[i]) << (8 * uint(i%wordBytes))
	}

	// A borrow out of t - p means that t < p.
	var bw Word
	for i := 0; i < NumWords; i++ {
		bw, _ = ct.SubC(bw, t[i], P434[i])
	}
	m := -bw
	for i := 0; i < NumWords; i++ {
		t[i] &= m
	}
	fp_tomont(d, &t)
	return m
}
