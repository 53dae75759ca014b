package field

import (
	"bytes"
	"math/big"
	"testing"

	go_fuzz_utils "github.com/trailofbits/go-fuzz-utils"
)

func FuzzFpArith(f *testing.F) {
	var rng prng
	rng.init("fuzz seed Fp")
	for i := 0; i < 4; i++ {
		seed := make([]byte, 2*FieldBytes+8)
		rng.generate(seed)
		f.Add(seed)
	}
	f.Add(make([]byte, 2*FieldBytes+8))

	f.Fuzz(func(t *testing.T, input []byte) {
		tp, err := go_fuzz_utils.NewTypeProvider(input)
		if err != nil {
			return
		}
		ea, err := tp.GetNBytes(FieldBytes)
		if err != nil {
			return
		}
		eb, err := tp.GetNBytes(FieldBytes)
		if err != nil {
			return
		}

		var a, b, c Fp
		za := decodeToBigLE(ea)
		zb := decodeToBigLE(eb)
		okA := a.Decode(ea)
		okB := b.Decode(eb)
		if (okA == ^Word(0)) != (za.Cmp(bigP()) < 0) || (okB == ^Word(0)) != (zb.Cmp(bigP()) < 0) {
			t.Fatalf("decode range check disagrees with big.Int")
		}
		if okA&okB == 0 {
			return
		}
		if !bytes.Equal(a.Encode(nil), ea) {
			t.Fatalf("encode(decode(x)) != x")
		}

		p := bigP()
		var zc big.Int
		c.Mul(&a, &b)
		zc.Mul(&za, &zb).Mod(&zc, p)
		if got := c.Encode(nil); !bytes.Equal(got, encodeBigLE(&zc, FieldBytes)) {
			t.Fatalf("mul mismatch")
		}
		c.Sub(&a, &b)
		zc.Sub(&za, &zb).Mod(&zc, p)
		if got := c.Encode(nil); !bytes.Equal(got, encodeBigLE(&zc, FieldBytes)) {
			t.Fatalf("sub mismatch")
		}
		c.Add(&c, &b)
		if c.Equal(&a) != ^Word(0) {
			t.Fatalf("(a - b) + b != a")
		}
		if b.IsZero() == 0 {
			var bi Fp
			bi.Inv(&b)
			c.Mul(&a, &b).Mul(&c, &bi)
			if c.Equal(&a) != ^Word(0) {
				t.Fatalf("(a*b)/b != a")
			}
		}
	})
}
