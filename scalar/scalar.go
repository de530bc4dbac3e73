// Package scalar implements arithmetic modulo L, the prime order of
// the edwards25519 base point subgroup:
//
//	L = 2^252 + 27742317777372353535851937790883648493
//
// Scalars are kept as a separate type from field elements so that a
// value can never accidentally be reduced against the wrong modulus:
// coordinates live in package field (mod 2^255-19), exponents and
// signature components live here (mod L).
package scalar

import (
	"errors"
	"math/big"

	"github.com/athanorlabs/go-25519/codec"
)

// ErrInvalidScalar is returned when a 32-byte encoding is not the
// canonical encoding of a scalar, i.e. decodes to a value >= L.
var ErrInvalidScalar = errors.New("scalar: encoding is non-canonical")

// l = 2^252 + 27742317777372353535851937790883648493
var l = func() *big.Int {
	delta, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("scalar: failed to parse group order")
	}
	return delta.Add(delta, new(big.Int).Lsh(big.NewInt(1), 252))
}()

// Scalar is an integer modulo L, kept in [0, L). The zero value is the
// zero scalar. Operations return new Scalars and never mutate the
// receiver.
type Scalar struct {
	n *big.Int
}

var bigZero = big.NewInt(0)

func (s Scalar) ref() *big.Int {
	if s.n == nil {
		return bigZero
	}
	return s.n
}

// Reduce returns the scalar congruent to x modulo L.
func Reduce(x *big.Int) Scalar {
	return Scalar{n: new(big.Int).Mod(x, l)}
}

// FromCanonicalBytes decodes a 32-byte little-endian scalar. It
// returns ErrInvalidScalar if the value is not fully reduced;
// non-canonical encodings are rejected, never silently reduced.
func FromCanonicalBytes(b [32]byte) (Scalar, error) {
	x := codec.DecodeLE(b[:])
	if x.Cmp(l) >= 0 {
		return Scalar{}, ErrInvalidScalar
	}
	return Scalar{n: x}, nil
}

// FromUniformBytes interprets a 64-byte string (typically a SHA-512
// digest) as a little-endian integer and reduces it modulo L.
func FromUniformBytes(b [64]byte) Scalar {
	return Reduce(codec.DecodeLE(b[:]))
}

// Clamp applies the RFC 7748 clamping to 32 raw bytes: the three low
// bits and bit 255 are cleared and bit 254 is set. The result is the
// little-endian integer used as a ladder or signing exponent.
//
// Clamped exponents are deliberately not reduced modulo L; they are
// raw multipliers, distinct from the mod-L Scalar type.
func Clamp(b [32]byte) *big.Int {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
	return codec.DecodeLE(b[:])
}

// Add returns s + t mod L.
func (s Scalar) Add(t Scalar) Scalar {
	r := new(big.Int).Add(s.ref(), t.ref())
	return Scalar{n: r.Mod(r, l)}
}

// Mul returns s * t mod L.
func (s Scalar) Mul(t Scalar) Scalar {
	r := new(big.Int).Mul(s.ref(), t.ref())
	return Scalar{n: r.Mod(r, l)}
}

// Equal reports whether s and t are the same scalar.
func (s Scalar) Equal(t Scalar) bool {
	return s.ref().Cmp(t.ref()) == 0
}

// IsZero reports whether s is zero.
func (s Scalar) IsZero() bool {
	return s.ref().Sign() == 0
}

// BigInt returns a copy of the canonical representative of s.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.ref())
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [32]byte {
	return codec.Encode32(s.ref())
}

// Order returns a copy of the group order L.
func Order() *big.Int {
	return new(big.Int).Set(l)
}
