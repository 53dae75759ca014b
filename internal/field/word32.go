//go:build (386 || arm || mips || mipsle || wasm || force32bit) && !force64bit

package field

// Word is a single limb of a field element.
type Word = uint32

const (
	WordBits = 32

	// Number of limbs in an Fp element (448 bits).
	NumWords = 14

	// p + 1 = 2^216 * 3^137 has this many zero low limbs.
	zeroWords = 6
)

// (hi, lo) <- a * b
func mulWord(a, b Word) (hi, lo Word) {
	t := uint64(a) * uint64(b)
	return Word(t >> 32), Word(t)
}

// Fill d with the field value given as 64-bit limbs.
func fromU64(d *Fp, src *[7]uint64) {
	for i := 0; i < 7; i++ {
		d[2*i] = Word(src[i])
		d[2*i+1] = Word(src[i] >> 32)
	}
}
