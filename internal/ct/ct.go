package ct

import (
	"math/bits"
)

// This file implements the constant-time word primitives on top of which
// all multi-limb arithmetic is built. None of the functions below contain
// a branch or a memory access that depends on the value of its operands;
// only the width of the word type (a compile-time property) is used.
//
// Comparison results are masks: all-ones for "true", all-zeros for "false".
// Carries and borrows are plain 0/1 values so that they can be chained
// into the next limb directly.

// Word is the set of unsigned integer types the primitives operate on.
// Small widths exist so that the primitives can be verified exhaustively.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Shift count that brings the top bit of a W down to bit 0.
func msb[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0)))) - 1
}

// M2B converts a mask (or any value) into its top bit: 1 for an all-ones
// mask, 0 for an all-zeros mask.
func M2B[W Word](x W) W {
	return x >> msb[W]()
}

// Spread the top bit of x over the whole word.
func spread[W Word](x W) W {
	return -(x >> msb[W]())
}

// Eq returns an all-ones mask if x == y, zero otherwise.
func Eq[W Word](x, y W) W {
	t := x ^ y
	// For t != 0, (t >> 1) < t so that the subtraction wraps around
	// and sets the top bit. For t == 0 the result is 0.
	t = (t >> 1) - t
	return spread(^t)
}

// Lt returns an all-ones mask if x < y (unsigned), zero otherwise.
//
// If the top bits of x and y are the same, then x - y does not change
// the top bit unless x < y, and the expression reduces to the top bit
// of x - y (i.e. the borrow). If they differ, then x ^ y has its top bit
// set, and the expression reduces to the top bit of x ^ 1, i.e. the top
// bit of y.
func Lt[W Word](x, y W) W {
	return spread(x ^ ((x ^ y) | ((x - y) ^ x)))
}

// Select returns a if mask is all-ones, b if mask is zero. mask MUST be
// all-ones or all-zeros.
func Select[W Word](mask, a, b W) W {
	return (a & mask) | (b &^ mask)
}

// AddC adds a and b with an incoming carry (0 or 1); it returns the
// outgoing carry (0 or 1) and the low word of the sum.
func AddC[W Word](carryIn, a, b W) (carryOut, sum W) {
	t := a + carryIn
	sum = b + t
	carryOut = M2B(Lt(t, carryIn) | Lt(sum, t))
	return
}

// SubC subtracts b from a with an incoming borrow (0 or 1); it returns
// the outgoing borrow (0 or 1) and the low word of the difference.
func SubC[W Word](borrowIn, a, b W) (borrowOut, diff W) {
	t := a - b
	borrowOut = M2B(Lt(a, b))
	// a - b == 0 with an incoming borrow wraps around.
	borrowOut |= borrowIn & Eq(t, 0)
	diff = t - borrowIn
	return
}

// MemEq compares two buffers. It returns 1 if they have the same length
// and contents, 0 otherwise. All bytes are read regardless of where the
// first difference lies; only the (public) lengths affect the timing.
func MemEq(p, q []byte) int {
	if len(p) != len(q) {
		return 0
	}
	var a byte
	for i := range p {
		a |= p[i] ^ q[i]
	}
	return int(M2B(Eq(a, 0)))
}
