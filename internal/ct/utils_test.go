package ct

import (
	"crypto/sha512"
	"encoding/binary"
)

// Deterministic source of test words.
type prng struct {
	buf [64]byte
	ptr int
}

func (p *prng) init(seed string) {
	p.buf = sha512.Sum512([]byte(seed))
	p.ptr = 0
}

func (p *prng) next64() uint64 {
	if p.ptr+8 > len(p.buf) {
		p.buf = sha512.Sum512(p.buf[:])
		p.ptr = 0
	}
	x := binary.LittleEndian.Uint64(p.buf[p.ptr:])
	p.ptr += 8
	return x
}
