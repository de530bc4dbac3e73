// Package field implements arithmetic over GF(2^255-19), the prime
// field underlying both curve25519 and edwards25519.
//
// Elements are immutable: every operation returns a new Element and
// the receiver is never modified. Every result is reduced into the
// canonical range [0, p) before it is returned.
package field

import (
	"errors"
	"math/big"

	"github.com/athanorlabs/go-25519/codec"
)

// ErrInvalidInverse is returned when inverting the zero element, which
// has no multiplicative inverse.
var ErrInvalidInverse = errors.New("field: zero has no multiplicative inverse")

var (
	// p = 2^255 - 19
	p = new(big.Int).Sub(
		new(big.Int).Lsh(big.NewInt(1), 255),
		big.NewInt(19),
	)
	pMinus2 = new(big.Int).Sub(p, big.NewInt(2))

	bigZero = big.NewInt(0)
)

// Element is an integer modulo 2^255-19, kept in [0, p).
// The zero value is the additive identity.
type Element struct {
	n *big.Int
}

// New returns the element congruent to x. Negative inputs are reduced
// into the canonical range.
func New(x *big.Int) Element {
	return Element{n: new(big.Int).Mod(x, p)}
}

// NewInt returns the element congruent to x.
func NewInt(x int64) Element {
	return New(big.NewInt(x))
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{n: big.NewInt(1)}
}

// Prime returns a copy of the field modulus 2^255 - 19.
func Prime() *big.Int {
	return new(big.Int).Set(p)
}

// ref returns the underlying value, treating the zero Element as 0.
// Callers must not mutate the result.
func (e Element) ref() *big.Int {
	if e.n == nil {
		return bigZero
	}
	return e.n
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	r := new(big.Int).Add(e.ref(), o.ref())
	return Element{n: r.Mod(r, p)}
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	r := new(big.Int).Sub(e.ref(), o.ref())
	return Element{n: r.Mod(r, p)}
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	r := new(big.Int).Mul(e.ref(), o.ref())
	return Element{n: r.Mod(r, p)}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Negate returns -e.
func (e Element) Negate() Element {
	r := new(big.Int).Neg(e.ref())
	return Element{n: r.Mod(r, p)}
}

// Pow returns e raised to the given non-negative exponent.
func (e Element) Pow(exp *big.Int) Element {
	return Element{n: new(big.Int).Exp(e.ref(), exp, p)}
}

// Invert returns the multiplicative inverse of e, computed as e^(p-2)
// per Fermat's little theorem. It returns ErrInvalidInverse if e is
// zero.
func (e Element) Invert() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrInvalidInverse
	}
	return e.Pow(pMinus2), nil
}

// Equal reports whether e and o are the same element.
func (e Element) Equal(o Element) bool {
	return e.ref().Cmp(o.ref()) == 0
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.ref().Sign() == 0
}

// IsOdd reports whether the canonical representative of e is odd. This
// is the "sign" used by the edwards25519 point encoding.
func (e Element) IsOdd() bool {
	return e.ref().Bit(0) == 1
}

// BigInt returns a copy of the canonical representative of e.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.ref())
}

// Bytes returns the 32-byte little-endian encoding of e.
func (e Element) Bytes() [32]byte {
	return codec.Encode32(e.ref())
}

// Select returns a when bit is 0 and b when bit is 1. The result is
// computed as a + bit*(b-a), so the same arithmetic runs in both
// cases and control flow does not depend on bit.
func Select(bit uint, a, b Element) Element {
	m := big.NewInt(int64(bit & 1))
	r := new(big.Int).Sub(b.ref(), a.ref())
	r.Mul(r, m)
	r.Add(r, a.ref())
	return Element{n: r.Mod(r, p)}
}

// Swap returns (a, b) when swap is 0 and (b, a) when swap is 1, using
// the dummy-value arithmetic of the Montgomery ladder's conditional
// swap: dummy = swap*(a-b), then a-dummy and b+dummy.
func Swap(swap uint, a, b Element) (Element, Element) {
	m := big.NewInt(int64(swap & 1))
	dummy := new(big.Int).Sub(a.ref(), b.ref())
	dummy.Mul(dummy, m)

	x := new(big.Int).Sub(a.ref(), dummy)
	y := new(big.Int).Add(b.ref(), dummy)
	return Element{n: x.Mod(x, p)}, Element{n: y.Mod(y, p)}
}
