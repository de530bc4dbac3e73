// Package montgomery implements X25519 scalar multiplication on
// curve25519, the Montgomery curve
//
//	v^2 = u^3 + 486662*u^2 + u  over GF(2^255-19)
//
// The ladder works on u-coordinates alone, which makes it total: every
// 32-byte string decodes to a valid input, whether the underlying
// point lies on the curve or on its quadratic twist, so no point
// validation is needed or performed.
package montgomery

import (
	"math/big"

	"github.com/athanorlabs/go-25519/codec"
	"github.com/athanorlabs/go-25519/field"
	"github.com/athanorlabs/go-25519/scalar"
)

var (
	// a24 = (486662 - 2) / 4
	a24 = field.NewInt(121665)

	// BaseU is the u-coordinate of the curve's base point.
	BaseU = field.NewInt(9)

	pMinus2 = new(big.Int).Sub(field.Prime(), big.NewInt(2))
)

// DecodeU parses a 32-byte string as a u-coordinate: bit 255 is masked
// off per RFC 7748 and the value reduced modulo p. Every input is
// accepted.
func DecodeU(b [32]byte) field.Element {
	b[31] &= 0x7f
	return field.New(codec.DecodeLE(b[:]))
}

// Ladder computes the u-coordinate of k*P, where P is a point with
// u-coordinate u and k is an already-clamped exponent.
//
// It runs the RFC 7748 Montgomery ladder over bits 254..0, maintaining
// (x2:z2) and (x3:z3) and swapping them with the branch-free
// field.Swap keyed on each bit. The loop has no early exits and a
// fixed iteration count.
//
// The final projective-to-affine division is computed as x2 * z2^(p-2)
// rather than through field.Invert, so a zero denominator (which
// happens exactly when the input has small order) propagates to an
// all-zero result instead of an error; the x25519 package turns that
// into ErrLowOrderResult.
func Ladder(k *big.Int, u field.Element) field.Element {
	x1 := u
	x2, z2 := field.One(), field.Zero()
	x3, z3 := u, field.One()
	swap := uint(0)

	for t := 254; t >= 0; t-- {
		kt := uint(k.Bit(t))
		swap ^= kt
		x2, x3 = field.Swap(swap, x2, x3)
		z2, z3 = field.Swap(swap, z2, z3)
		swap = kt

		a := x2.Add(z2)
		aa := a.Square()
		b := x2.Sub(z2)
		bb := b.Square()
		e := aa.Sub(bb)
		c := x3.Add(z3)
		d := x3.Sub(z3)
		da := d.Mul(a)
		cb := c.Mul(b)

		x3 = da.Add(cb).Square()
		z3 = x1.Mul(da.Sub(cb).Square())
		x2 = aa.Mul(bb)
		z2 = e.Mul(aa.Add(a24.Mul(e)))
	}

	x2, x3 = field.Swap(swap, x2, x3)
	z2, z3 = field.Swap(swap, z2, z3)

	return x2.Mul(z2.Pow(pMinus2))
}

// ScalarMult is the X25519 function from RFC 7748 section 5: it clamps
// k, decodes u, runs the ladder and encodes the resulting
// u-coordinate.
func ScalarMult(k, u [32]byte) [32]byte {
	return Ladder(scalar.Clamp(k), DecodeU(u)).Bytes()
}
