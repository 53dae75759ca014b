package field

// =======================================================================
// GF(p^2) = GF(p)[i]/(i^2 + 1)
//
// An element is A + B*i. Since p = 3 mod 4, -1 is not a square in GF(p)
// and the extension is well-defined. Both coordinates follow the same
// invariants as Fp (Montgomery representation, fully reduced).

// Number of bytes in an encoded GF(p^2) element.
const Fp2Bytes = 2 * FieldBytes

// Fp2 is an element of GF(p^2).
type Fp2 struct {
	A Fp
	B Fp
}

// Field element of value 0.
var Fp2_ZERO = Fp2{}

// Field element of value 1.
var Fp2_ONE = Fp2{A: Fp_ONE}

// Field element of value 6.
var Fp2_SIX = Fp2{A: FpFromWords64(&[7]uint64{
	0x000000000002B90A, 0x0000000000000000, 0x0000000000000000,
	0x5ADCCB2822000000, 0x187D24F39F0CAFB4, 0x9D353A4D394145A0,
	0x00012559A0403298})}

// Field element of value 1/2.
var Fp2_HALF = Fp2{A: FpFromWords64(&[7]uint64{
	0x0000000000003A16, 0x0000000000000000, 0x0000000000000000,
	0x5C87FA027E000000, 0x6C00D27DAACFD66A, 0x74992A2A2FBBA086,
	0x0000767753DE976D})}

// d <- x
func (d *Fp2) Set(x *Fp2) *Fp2 {
	*d = *x
	return d
}

// d <- x + y
func (d *Fp2) Add(x, y *Fp2) *Fp2 {
	fp_add(&d.A, &x.A, &y.A)
	fp_add(&d.B, &x.B, &y.B)
	return d
}

// d <- x - y
func (d *Fp2) Sub(x, y *Fp2) *Fp2 {
	fp_sub(&d.A, &x.A, &y.A)
	fp_sub(&d.B, &x.B, &y.B)
	return d
}

// d <- -x
func (d *Fp2) Neg(x *Fp2) *Fp2 {
	fp_neg(&d.A, &x.A)
	fp_neg(&d.B, &x.B)
	return d
}

// d <- x*y
func (d *Fp2) Mul(x, y *Fp2) *Fp2 {
	// (a + b*i)*(c + d*i) = (ac - bd) + ((a + b)*(c + d) - ac - bd)*i
	var t0, t1, ac, bd Fp
	fp_add(&t0, &x.A, &x.B)
	fp_add(&t1, &y.A, &y.B)
	fp_mul(&ac, &x.A, &y.A)
	fp_mul(&bd, &x.B, &y.B)
	fp_mul(&t0, &t0, &t1)
	fp_sub(&d.A, &ac, &bd)
	fp_sub(&t0, &t0, &ac)
	fp_sub(&d.B, &t0, &bd)
	return d
}

// d <- x^2
func (d *Fp2) Sqr(x *Fp2) *Fp2 {
	// (a + b*i)^2 = (a + b)*(a - b) + 2ab*i
	var t0, t1, t2 Fp
	fp_add(&t0, &x.A, &x.B)
	fp_sub(&t1, &x.A, &x.B)
	fp_mul(&t2, &x.A, &x.B)
	fp_mul(&d.A, &t0, &t1)
	fp_add(&d.B, &t2, &t2)
	return d
}

// d <- 1/x
// If x == 0, then this sets d to zero.
func (d *Fp2) Inv(x *Fp2) *Fp2 {
	// 1/(a + b*i) = (a - b*i)/(a^2 + b^2)
	// a^2 + b^2 = 0 only for a = b = 0, since -1 is not a square.
	var t0, t1 Fp
	fp_sqr(&t0, &x.A)
	fp_sqr(&t1, &x.B)
	fp_add(&t0, &t0, &t1)
	fp_inv(&t0, &t0)
	fp_neg(&t1, &x.B)
	fp_mul(&d.A, &x.A, &t0)
	fp_mul(&d.B, &t1, &t0)
	return d
}

// If mask is all-ones:  d <- x
// If mask is zero:      d <- y
// mask MUST be all-ones or zero
func (d *Fp2) Select(x, y *Fp2, mask Word) *Fp2 {
	fp_select(&d.A, &x.A, &y.A, mask)
	fp_select(&d.B, &x.B, &y.B, mask)
	return d
}

// Exchange the values of d and x if mask is all-ones; leave both
// unchanged if mask is zero. d and x MUST be distinct.
func (d *Fp2) CondSwap(x *Fp2, mask Word) {
	fp_cswap(&d.A, &x.A, mask)
	fp_cswap(&d.B, &x.B, mask)
}

// Returns an all-ones mask if d == 0, zero otherwise.
func (d *Fp2) IsZero() Word {
	return fp_iszero(&d.A) & fp_iszero(&d.B)
}

// Returns an all-ones mask if d == x, zero otherwise.
func (d *Fp2) Equal(x *Fp2) Word {
	return fp_eq(&d.A, &x.A) & fp_eq(&d.B, &x.B)
}

// Encode element into exactly Fp2Bytes bytes (A then B, each as FieldBytes
// little-endian bytes), appended to dst.
func (d *Fp2) Encode(dst []byte) []byte {
	dst = fp_encode(dst, &d.A)
	return fp_encode(dst, &d.B)
}

// Decode element from exactly Fp2Bytes bytes. Both coordinates MUST be
// lower than p. On success, an all-ones mask is returned; otherwise, d
// is set to zero and zero is returned. Both halves are always decoded.
func (d *Fp2) Decode(src []byte) Word {
	if len(src) != Fp2Bytes {
		*d = Fp2_ZERO
		return 0
	}
	m := fp_decode(&d.A, src[:FieldBytes])
	m &= fp_decode(&d.B, src[FieldBytes:])
	fp_select(&d.A, &d.A, &Fp_ZERO, m)
	fp_select(&d.B, &d.B, &Fp_ZERO, m)
	return m
}
