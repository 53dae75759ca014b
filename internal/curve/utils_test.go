package curve

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/adtrdlvm/c-sike/internal/field"
)

// Custom PRNG (based on SHA-512) for reproducible tests.
type prng struct {
	buf [64]byte
	ptr int
}

func (p *prng) init(seed string) {
	p.buf = sha512.Sum512([]byte(seed))
	p.ptr = 0
}

func (p *prng) generate(d []byte) {
	for len(d) > 0 {
		if p.ptr == len(p.buf) {
			p.buf = sha512.Sum512(p.buf[:])
			p.ptr = 0
		}
		n := copy(d, p.buf[p.ptr:])
		d = d[n:]
		p.ptr += n
	}
}

// Random non-zero scaling factor (both halves are small integers, the
// first one non-zero).
func (p *prng) mkscale() field.Fp2 {
	var b [16]byte
	p.generate(b[:])
	var l field.Fp2
	l.A.SetUint64(binary.LittleEndian.Uint64(b[:8]) | 1)
	l.B.SetUint64(binary.LittleEndian.Uint64(b[8:]))
	return l
}
