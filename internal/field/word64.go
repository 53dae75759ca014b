//go:build !((386 || arm || mips || mipsle || wasm || force32bit) && !force64bit)

package field

import (
	"math/bits"
)

// Word is a single limb of a field element.
type Word = uint64

const (
	WordBits = 64

	// Number of limbs in an Fp element (448 bits).
	NumWords = 7

	// p + 1 = 2^216 * 3^137 has this many zero low limbs.
	zeroWords = 3
)

// (hi, lo) <- a * b
func mulWord(a, b Word) (hi, lo Word) {
	return bits.Mul64(a, b)
}

// Fill d with the field value given as 64-bit limbs.
func fromU64(d *Fp, src *[7]uint64) {
	copy(d[:], src[:])
}
