package field

import (
	"crypto/sha512"
	"fmt"
	"math/big"
	"strings"
)

// =====================================================================
// Custom PRNG (based on SHA-512) for reproducible tests.

type prng struct {
	buf [64]byte
	ptr int
}

// Initialize the PRNG with an explicit seed.
func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

// Fill the provided slice with pseudorandom bytes from the PRNG.
func (p *prng) generate(d []byte) {
	n := len(d)
	for n > 0 {
		c := 32 - p.ptr
		if c == 0 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
			c = 32
		}
		if c > n {
			c = n
		}
		copy(d, p.buf[p.ptr:p.ptr+c])
		d = d[c:]
		n -= c
		p.ptr += c
	}
}

// Make a new random field element from the PRNG. The raw limbs are a
// uniform-ish value modulo p; any such value is a valid Montgomery
// representation.
func (p *prng) mkfp(d *Fp) {
	var bb [64]byte
	p.generate(bb[:])
	x := decodeToBigLE(bb[:])
	x.Mod(&x, bigP())
	*d = bigToRaw(&x)
}

func (p *prng) mkfp2(d *Fp2) {
	p.mkfp(&d.A)
	p.mkfp(&d.B)
}

// Field modulus as a big integer.
func bigP() *big.Int {
	var p, t big.Int
	p.SetUint64(1).Lsh(&p, 216)
	t.Exp(big.NewInt(3), big.NewInt(137), nil)
	p.Mul(&p, &t).Sub(&p, big.NewInt(1))
	return &p
}

// Montgomery factor R = 2^448.
func bigR() *big.Int {
	var r big.Int
	r.SetUint64(1).Lsh(&r, 448)
	return &r
}

// Convert the raw limbs of an element (Montgomery form included) into
// a big integer, with no reduction.
func rawToBig(a *Fp) big.Int {
	var x, y big.Int
	for i := NumWords - 1; i >= 0; i-- {
		y.SetUint64(uint64(a[i]))
		x.Lsh(&x, WordBits).Add(&x, &y)
	}
	return x
}

// Set the raw limbs of an element from a non-negative big integer
// lower than 2^448.
func bigToRaw(x *big.Int) Fp {
	var d Fp
	var t, m big.Int
	t.Set(x)
	m.SetUint64(1).Lsh(&m, WordBits).Sub(&m, big.NewInt(1))
	for i := 0; i < NumWords; i++ {
		var w big.Int
		w.And(&t, &m)
		d[i] = Word(w.Uint64())
		t.Rsh(&t, WordBits)
	}
	return d
}

// Convert an (internal) field element representation to the big integer
// value it stands for, i.e. the raw value divided by R modulo p.
func fpToBig(a *Fp) big.Int {
	x := rawToBig(a)
	var ri big.Int
	ri.ModInverse(bigR(), bigP())
	x.Mul(&x, &ri).Mod(&x, bigP())
	return x
}

// Montgomery representation of a big integer (reduced modulo p).
func bigToFp(x *big.Int) Fp {
	var t big.Int
	t.Mul(x, bigR()).Mod(&t, bigP())
	return bigToRaw(&t)
}

// Get the string representation of an element (hexadecimal, with '0x'
// prefix, plain value).
func fpToString(a *Fp) string {
	x := fpToBig(a)
	return "0x" + strings.ToUpper(x.Text(16))
}

// Convert a GF(p^2) element to a string which can be copy-pasted into
// Sage for easier verifications (provided that 'K' was defined in Sage as
// GF(p^2) with i^2 = -1).
func fp2ToString(a *Fp2) string {
	return fmt.Sprintf("K(%s + %s*i)", fpToString(&a.A), fpToString(&a.B))
}

// Decode a sequence of bytes into a big integer, with unsigned little-endian
// convention.
func decodeToBigLE(src []byte) big.Int {
	n := len(src)
	tt := make([]byte, n)
	for i := 0; i < n; i++ {
		tt[i] = src[n-1-i]
	}
	var x big.Int
	x.SetBytes(tt)
	return x
}

// Encode a non-negative big integer into exactly n little-endian bytes.
func encodeBigLE(x *big.Int, n int) []byte {
	be := x.Bytes()
	out := make([]byte, n)
	for i := 0; i < len(be) && i < n; i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}
