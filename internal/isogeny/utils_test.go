package isogeny

import (
	"crypto/sha512"
	"encoding/binary"
)

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

func (p *prng) next64() uint64 {
	var b [8]byte
	p.generate(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
