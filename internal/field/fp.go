package field

// This file implements the exported GF(p) type on top of the internal
// functions of field.go.

// Field element of value 0.
var Fp_ZERO = Fp{}

// Field element of value 1 (Montgomery representation of 1 is R mod p).
var Fp_ONE = FpFromWords64(&[7]uint64{
	0x000000000000742C, 0x0000000000000000, 0x0000000000000000,
	0xB90FF404FC000000, 0xD801A4FB559FACD4, 0xE93254545F77410C,
	0x0000ECEEA7BD2EDA})

// d <- a
func (d *Fp) Set(a *Fp) *Fp {
	copy(d[:], a[:])
	return d
}

// d <- x (small integer)
func (d *Fp) SetUint64(x uint64) *Fp {
	var t Fp
	fromU64(&t, &[7]uint64{x})
	// x < 2^64 < p, it is already reduced.
	fp_tomont(d, &t)
	return d
}

// d <- a + b
func (d *Fp) Add(a, b *Fp) *Fp {
	fp_add(d, a, b)
	return d
}

// d <- a - b
func (d *Fp) Sub(a, b *Fp) *Fp {
	fp_sub(d, a, b)
	return d
}

// d <- -a
func (d *Fp) Neg(a *Fp) *Fp {
	fp_neg(d, a)
	return d
}

// d <- a*b
func (d *Fp) Mul(a, b *Fp) *Fp {
	fp_mul(d, a, b)
	return d
}

// d <- a^2
func (d *Fp) Sqr(a *Fp) *Fp {
	fp_sqr(d, a)
	return d
}

// d <- 1/a
// If a == 0, then this sets d to zero.
func (d *Fp) Inv(a *Fp) *Fp {
	fp_inv(d, a)
	return d
}

// If mask is all-ones:  d <- a
// If mask is zero:      d <- b
// mask MUST be all-ones or zero
func (d *Fp) Select(a, b *Fp, mask Word) *Fp {
	fp_select(d, a, b, mask)
	return d
}

// Returns an all-ones mask if d == 0, zero otherwise.
func (d *Fp) IsZero() Word {
	return fp_iszero(d)
}

// Returns an all-ones mask if d == a, zero otherwise.
func (d *Fp) Equal(a *Fp) Word {
	return fp_eq(d, a)
}

// d <- a*R mod p
// Input a is a plain integer in 0..p-1.
func (d *Fp) ToMont(a *Fp) *Fp {
	fp_tomont(d, a)
	return d
}

// d <- a/R mod p
// Output d holds the plain integer value of a.
func (d *Fp) FromMont(a *Fp) *Fp {
	fp_frommont(d, a)
	return d
}

// Encode element into exactly FieldBytes bytes. The encoded bytes are
// appended to the provided slice; the new slice is returned. The extension
// is done in place if the provided slice has enough capacity.
func (a *Fp) Encode(dst []byte) []byte {
	return fp_encode(dst, a)
}

// Decode element from bytes. The source slice MUST have length exactly
// FieldBytes, and the value MUST be lower than p. On success, d is set
// to the decoded value and an all-ones mask is returned. On error, d is
// set to zero and zero is returned.
func (d *Fp) Decode(src []byte) Word {
	if len(src) != FieldBytes {
		*d = Fp_ZERO
		return 0
	}
	return fp_decode(d, src)
}
