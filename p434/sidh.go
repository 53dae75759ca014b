package p434

import (
	"crypto"
	cryptorand "crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/adtrdlvm/c-sike/internal/ct"
	"github.com/adtrdlvm/c-sike/internal/curve"
	"github.com/adtrdlvm/c-sike/internal/field"
	"github.com/adtrdlvm/c-sike/internal/isogeny"
	"github.com/adtrdlvm/c-sike/internal/params"
)

// This file implements SIDH key agreement over p434:
//
//   - Key pair generation (random or from a seed)
//   - Encoding and decoding of private and public keys
//   - Shared secret computation
//
// A private key of party A is a scalar s < 2^216, and defines the
// kernel P_A + [s]Q_A of a 2^216-isogeny from the starting curve; for
// party B, s < 2^217 and the kernel is P_B + [s]Q_B, of order 3^137. The
// public key is the image of the other party's basis through that
// isogeny. The shared secret is the j-invariant of the curve reached by
// applying one's own kernel to the peer's image curve.
//
// A key pair MUST NOT be used for more than one exchange with untrusted
// peers: SIDH public keys do not come with a validation procedure that
// would prevent key recovery attacks over repeated exchanges.

// Party identifies which side of the exchange a key belongs to.
type Party = params.Party

const (
	PartyA = params.PartyA
	PartyB = params.PartyB
)

const (
	// P434PublicKeySize is the length of an encoded public key: three
	// GF(p^2) elements.
	P434PublicKeySize = 3 * field.Fp2Bytes

	// P434SharedSecretSize is the length of a shared secret.
	P434SharedSecretSize = field.Fp2Bytes

	maxScalarBytes = 28
)

// ErrInvalidKey is returned for any invalid key or key combination. The
// reason for the failure is not disclosed.
var ErrInvalidKey = errors.New("Invalid key")

// Isogeny walkers for both parties.
var walkers = [2]*isogeny.Walker{
	isogeny.NewWalker(params.Get().Domain(params.PartyA)),
	isogeny.NewWalker(params.Get().Domain(params.PartyB)),
}

// A private key contains the secret scalar of one party. For efficiency
// reasons, it internally caches a copy of the public key as well.
type P434PrivateKey struct {
	party  Party
	scalar [maxScalarBytes]byte
	pub    P434PublicKey
}

// A public key contains the affine x-coordinates of the images of the
// other party's basis points P, Q and P - Q.
type P434PublicKey struct {
	party      Party
	xP, xQ, xR field.Fp2
	epub       [P434PublicKeySize]byte
}

// P434PrivateKeySize returns the length of an encoded private key for
// the given party (27 bytes for A, 28 for B).
func P434PrivateKeySize(party Party) int {
	return params.Get().Domain(party).SecretByteLen
}

// Party returns the party the key belongs to.
func (sk *P434PrivateKey) Party() Party {
	return sk.party
}

// Party returns the party the key belongs to.
func (pk *P434PublicKey) Party() Party {
	return pk.party
}

// Test whether a public key is equal to another.
func (pk *P434PublicKey) Equal(other crypto.PublicKey) bool {
	pk2, ok := other.(*P434PublicKey)
	if !ok || pk2 == nil || pk.party != pk2.party {
		return false
	}
	return ct.MemEq(pk.epub[:], pk2.epub[:]) == 1
}

func checkParty(party Party) error {
	if party != PartyA && party != PartyB {
		return params.ErrUnknownParty
	}
	return nil
}

// Clear the bits of the scalar above the secret size of the party.
func maskScalar(dp *params.DomainParams, s []byte) {
	if r := dp.SecretBitLen % 8; r != 0 {
		s[dp.SecretByteLen-1] &= byte(1)<<r - 1
	}
}

// Build a private key from a scalar (already reduced to the secret
// size) and compute its public key.
func newPrivateKey(party Party, scalar []byte) (*P434PrivateKey, error) {
	sk := new(P434PrivateKey)
	sk.party = party
	copy(sk.scalar[:], scalar)
	if err := sk.computePublic(); err != nil {
		return nil, err
	}
	return sk, nil
}

// Decode a private key from bytes. This function expects exactly
// P434PrivateKeySize(party) bytes, holding the scalar in unsigned
// little-endian convention. If the length is wrong, or if the scalar
// does not fit in the secret size of the party (216 bits for A, 217
// for B), then this function returns nil and an error.
func P434DecodePrivateKey(party Party, src []byte) (*P434PrivateKey, error) {
	if err := checkParty(party); err != nil {
		return nil, err
	}
	dp := params.Get().Domain(party)
	if len(src) != dp.SecretByteLen {
		return nil, ErrInvalidKey
	}
	var t [maxScalarBytes]byte
	copy(t[:], src)
	maskScalar(dp, t[:])
	if ct.MemEq(t[:dp.SecretByteLen], src) != 1 {
		return nil, ErrInvalidKey
	}
	return newPrivateKey(party, t[:dp.SecretByteLen])
}

// Encode a private key into bytes. The private key is appended to the
// provided slice. If 'dst' has enough capacity, then it is returned;
// otherwise, a new slice is allocated, and receives the concatenation
// of the current contents of 'dst' and the encoded private key.
func (sk *P434PrivateKey) Encode(dst []byte) []byte {
	return append(dst, sk.scalar[:P434PrivateKeySize(sk.party)]...)
}

// Get the public key corresponding to a given private key.
func (sk *P434PrivateKey) Public() *P434PublicKey {
	pk := new(P434PublicKey)
	*pk = sk.pub
	return pk
}

// Compute the kernel point P + [s]Q on the curve E, from the affine
// x-coordinates of P, Q and P - Q.
func (sk *P434PrivateKey) kernel(E *curve.ProjectiveCurveParameters, xP, xQ, xR *field.Fp2) curve.ProjectivePoint {
	dp := params.Get().Domain(sk.party)
	P := curve.NewAffinePoint(xP)
	Q := curve.NewAffinePoint(xQ)
	R := curve.NewAffinePoint(xR)
	return curve.ScalarMul3Pt(E, &P, &Q, &R, dp.SecretBitLen, sk.scalar[:])
}

func (sk *P434PrivateKey) computePublic() error {
	pp := params.Get()
	dp := pp.Domain(sk.party)
	op := pp.Domain(sk.party.Other())

	E0 := curve.ProjectiveCurveParameters{A: pp.InitA, C: pp.InitC}
	K := sk.kernel(&E0, &dp.XP, &dp.XQ, &dp.XR)
	aux := [3]curve.ProjectivePoint{
		curve.NewAffinePoint(&op.XP),
		curve.NewAffinePoint(&op.XQ),
		curve.NewAffinePoint(&op.XR),
	}
	if _, err := walkers[sk.party].Walk(&E0, &K, aux[:]); err != nil {
		return ErrInvalidKey
	}

	pk := &sk.pub
	pk.party = sk.party
	curve.Batch3Inv(&aux[0].Z, &aux[1].Z, &aux[2].Z, &pk.xP, &pk.xQ, &pk.xR)
	pk.xP.Mul(&pk.xP, &aux[0].X)
	pk.xQ.Mul(&pk.xQ, &aux[1].X)
	pk.xR.Mul(&pk.xR, &aux[2].X)
	b := pk.xP.Encode(pk.epub[:0])
	b = pk.xQ.Encode(b)
	pk.xR.Encode(b)
	return nil
}

// Decode a public key from bytes. This function expects exactly
// P434PublicKeySize bytes: the encodings of x(P), x(Q) and x(P - Q), in
// that order. If the provided slice does not have the right length, if
// any coordinate is not canonical (lower than p), or if any of the
// three values is zero, then this function returns nil and an error.
func P434DecodePublicKey(party Party, src []byte) (*P434PublicKey, error) {
	if err := checkParty(party); err != nil {
		return nil, err
	}
	if len(src) != P434PublicKeySize {
		return nil, ErrInvalidKey
	}
	pk := new(P434PublicKey)
	pk.party = party
	n := field.Fp2Bytes
	ok := pk.xP.Decode(src[:n])
	ok &= pk.xQ.Decode(src[n : 2*n])
	ok &= pk.xR.Decode(src[2*n:])

	// RecoverCoordinateA divides by xP*xQ*xR.
	var t field.Fp2
	t.Mul(&pk.xP, &pk.xQ)
	t.Mul(&t, &pk.xR)
	ok &= ^t.IsZero()
	if ok == 0 {
		return nil, ErrInvalidKey
	}
	copy(pk.epub[:], src)
	return pk, nil
}

// Encode a public key into bytes. The public key (exactly
// P434PublicKeySize bytes) is appended to the provided slice.
func (pk *P434PublicKey) Encode(dst []byte) []byte {
	return append(dst, pk.epub[:]...)
}

// Key pair generation: from a random source 'rand', a private key (a
// scalar of the secret size of the party) and the corresponding public
// key are generated. The random source MUST be cryptographically
// secure. If 'rand' is nil, then crypto/rand.Reader is used (this is
// the recommended way).
func P434GenerateKeyPair(party Party, rand io.Reader) (*P434PrivateKey, error) {
	if err := checkParty(party); err != nil {
		return nil, err
	}
	if rand == nil {
		rand = cryptorand.Reader
	}
	dp := params.Get().Domain(party)
	var bb [maxScalarBytes]byte
	if _, err := io.ReadFull(rand, bb[:dp.SecretByteLen]); err != nil {
		return nil, err
	}
	maskScalar(dp, bb[:])
	return newPrivateKey(party, bb[:dp.SecretByteLen])
}

// Deterministic key pair generation from a seed. The scalar is the
// output of SHAKE256 over a domain separation string (specific to the
// party) followed by the seed. The seed MUST have enough entropy
// (at least 128 bits) for the resulting key to be secure.
func P434DeriveKeyFromSeed(party Party, seed []byte) (*P434PrivateKey, error) {
	if err := checkParty(party); err != nil {
		return nil, err
	}
	dp := params.Get().Domain(party)
	sh := sha3.NewShake256()
	sh.Write([]byte("sidhp434-keygen-" + party.String() + ":"))
	sh.Write(seed)
	var bb [maxScalarBytes]byte
	sh.Read(bb[:dp.SecretByteLen])
	maskScalar(dp, bb[:])
	return newPrivateKey(party, bb[:dp.SecretByteLen])
}

// Key exchange: given our private key and the public key of the peer,
// the shared secret (P434SharedSecretSize bytes, the encoded
// j-invariant of the final curve) is computed. The two keys MUST belong
// to different parties. On failure, nil and ErrInvalidKey are returned.
//
// The computation is constant-time with regard to the private key and
// the peer public key, except for the final success indication.
func P434KeyExchange(sk *P434PrivateKey, pk *P434PublicKey) ([]byte, error) {
	if sk == nil || pk == nil || sk.party == pk.party {
		return nil, ErrInvalidKey
	}

	E := curve.RecoverCoordinateA(&pk.xP, &pk.xQ, &pk.xR)
	K := sk.kernel(&E, &pk.xP, &pk.xQ, &pk.xR)
	E1, err := walkers[sk.party].Walk(&E, &K, nil)
	if err != nil {
		return nil, ErrInvalidKey
	}
	j := curve.Jinvariant(&E1)
	return j.Encode(make([]byte, 0, P434SharedSecretSize)), nil
}
