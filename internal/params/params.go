package params

import (
	"errors"
	"strings"

	"github.com/adtrdlvm/c-sike/internal/field"
)

// This file holds the p434 instance parameters: the field constants, the
// starting curve, and for each party the torsion basis and the isogeny
// tree strategy. The table is built once at package initialization and
// is read-only afterwards.

// Party identifies one of the two roles of the key exchange.
type Party int

const (
	// PartyA works in the 2^216-torsion, with a chain of 4-isogenies.
	PartyA Party = iota
	// PartyB works in the 3^137-torsion, with a chain of 3-isogenies.
	PartyB
)

var ErrUnknownParty = errors.New("unknown party")

func (p Party) String() string {
	switch p {
	case PartyA:
		return "A"
	case PartyB:
		return "B"
	}
	return "?"
}

// Other returns the opposite party.
func (p Party) Other() Party {
	return 1 - p
}

// ParseParty accepts "A" or "B" (case-insensitive).
func ParseParty(s string) (Party, error) {
	switch strings.ToUpper(s) {
	case "A":
		return PartyA, nil
	case "B":
		return PartyB, nil
	}
	return 0, ErrUnknownParty
}

// DomainParams describes the torsion subgroup used by one party.
type DomainParams struct {
	// Affine x-coordinates of the basis points P, Q and of R = P - Q,
	// in Montgomery representation.
	XP, XQ, XR field.Fp2

	// Degree of each isogeny in the chain (4 or 3).
	Degree uint

	// Number of isogenies in the chain.
	Height int

	// Traversal strategy of the isogeny tree (Height - 1 entries).
	// Do not modify.
	Strategy []uint32

	// Number of bits and bytes of a secret scalar.
	SecretBitLen  uint
	SecretByteLen int
}

// Params is the parameter table of an SIDH instance.
type Params struct {
	// Prime, prime + 1 and 2*prime (plain integers).
	Prime, PrimeP1, PrimeX2 field.Fp

	// R^2 mod p, and Montgomery representations of 1 and 6.
	MontR2, MontOne, MontSix field.Fp

	// 1/2 in GF(p^2).
	Half field.Fp2

	// Starting curve E0: y^2 = x^3 + (A/C)*x^2 + x.
	InitA, InitC field.Fp2

	// Encoded lengths.
	FieldBytes       int
	PublicKeySize    int
	SharedSecretSize int

	A, B DomainParams
}

// Domain returns the domain parameters of a party.
func (p *Params) Domain(party Party) *DomainParams {
	if party == PartyA {
		return &p.A
	}
	return &p.B
}

var p434 = Params{
	Prime:   field.P434,
	PrimeP1: field.P434p1,
	PrimeX2: field.P434x2,
	MontR2:  field.MontR2,
	MontOne: field.Fp_ONE,
	MontSix: field.Fp2_SIX.A,
	Half:    field.Fp2_HALF,
	InitA:   field.Fp2_SIX,
	InitC:   field.Fp2_ONE,

	FieldBytes:       field.FieldBytes,
	PublicKeySize:    3 * field.Fp2Bytes,
	SharedSecretSize: field.Fp2Bytes,

	A: DomainParams{
		XP: mkFp2(
			[7]uint64{
				0x05ADF455C5C345BF, 0x91935C5CC767AC2B, 0xAFE4E879951F0257,
				0x70E792DC89FA27B1, 0xF797F526BB48C8CD, 0x2181DB6131AF621F,
				0x00000A1C08B1ECC4},
			[7]uint64{
				0x74840EB87CDA7788, 0x2971AA0ECF9F9D0B, 0xCB5732BDF41715D5,
				0x8CD8E51F7AACFFAA, 0xA7F424730D7E419F, 0xD671EB919A179E8C,
				0x0000FFA26C5A924A}),
		XQ: mkFp2(
			[7]uint64{
				0xFEC6E64588B7273B, 0xD2A626D74CBBF1C6, 0xF8F58F07A78098C7,
				0xE23941F470841B03, 0x1B63EDA2045538DD, 0x735CFEB0FFD49215,
				0x0001C4CB77542876},
			[7]uint64{
				0xADB0F733C17FFDD6, 0x6AFFBD037DA0A050, 0x680EC43DB144E02F,
				0x1E2E5D5FF524E374, 0xE2DDA115260E2995, 0xA6E4B552E2EDE508,
				0x00018ECCDDF4B53E}),
		XR: mkFp2(
			[7]uint64{
				0x01BA4DB518CD6C7D, 0x2CB0251FE3CC0611, 0x259B0C6949A9121B,
				0x60E17AC16D2F82AD, 0x3AA41F1CE175D92D, 0x413FBE6A9B9BC4F3,
				0x00022A81D8D55643},
			[7]uint64{
				0xB8ADBC70FC82E54A, 0xEF9CDDB0D5FADDED, 0x5820C734C80096A0,
				0x7799994BAA96E0E4, 0x044961599E379AF8, 0xDB2B94FBF09F27E2,
				0x0000B87FC716C0C6}),
		Degree:        4,
		Height:        108,
		SecretBitLen:  216,
		SecretByteLen: 27,
		Strategy: []uint32{
			0x30, 0x1C, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
			0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08, 0x04,
			0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01,
			0x02, 0x01, 0x01, 0x0D, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02,
			0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x04,
			0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01,
			0x15, 0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
			0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03, 0x02, 0x01,
			0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x09, 0x05, 0x03,
			0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x04,
			0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01},
	},

	B: DomainParams{
		XP: mkFp2(
			[7]uint64{
				0x6E5497556EDD48A3, 0x2A61B501546F1C05, 0xEB919446D049887D,
				0x5864A4A69D450C4F, 0xB883F276A6490D2B, 0x22CC287022D5F5B9,
				0x0001BED4772E551F},
			[7]uint64{}),
		XQ: mkFp2(
			[7]uint64{
				0xFAE2A3F93D8B6B8E, 0x494871F51700FE1C, 0xEF1A94228413C27C,
				0x498FF4A4AF60BD62, 0xB00AD2A708267E8A, 0xF4328294E017837F,
				0x000034080181D8AE},
			[7]uint64{}),
		XR: mkFp2(
			[7]uint64{
				0x283B34FAFEFDC8E4, 0x9208F44977C3E647, 0x7DEAE962816F4E9A,
				0x68A2BA8AA262EC9D, 0x8176F112EA43F45B, 0x02106D022634F504,
				0x00007E8A50F02E37},
			[7]uint64{
				0xB378B7C1DA22CCB1, 0x6D089C99AD1D9230, 0xEBE15711813E2369,
				0x2B35A68239D48A53, 0x445F6FD138407C93, 0xBEF93B29A3F6B54B,
				0x000173FA910377D3}),
		Degree:        3,
		Height:        137,
		SecretBitLen:  217,
		SecretByteLen: 28,
		Strategy: []uint32{
			0x42, 0x21, 0x11, 0x09, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01,
			0x01, 0x02, 0x01, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x01,
			0x02, 0x01, 0x01, 0x08, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02,
			0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x10,
			0x08, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04,
			0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08, 0x04, 0x02, 0x01,
			0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
			0x01, 0x20, 0x10, 0x08, 0x04, 0x03, 0x01, 0x01, 0x01, 0x01,
			0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
			0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02,
			0x01, 0x01, 0x02, 0x01, 0x01, 0x10, 0x08, 0x04, 0x02, 0x01,
			0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
			0x01, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04,
			0x02, 0x01, 0x01, 0x02, 0x01, 0x01},
	},
}

// Get returns the p434 parameter table. The returned value is shared
// and MUST NOT be modified.
func Get() *Params {
	return &p434
}

func mkFp2(a, b [7]uint64) field.Fp2 {
	return field.Fp2{A: field.FpFromWords64(&a), B: field.FpFromWords64(&b)}
}
