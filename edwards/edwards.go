// Package edwards implements the edwards25519 group: points on the
// twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2  over GF(2^255-19)
//
// with d = -121665/121666. This is the curve underlying Ed25519; it is
// birationally equivalent to the Montgomery curve used by X25519.
//
// Points are held in extended homogeneous coordinates (X:Y:Z:T) with
// x = X/Z, y = Y/Z and x*y = T/Z, which makes addition and doubling
// inversion-free.
package edwards

import (
	"errors"
	"math/big"

	"github.com/athanorlabs/go-25519/codec"
	"github.com/athanorlabs/go-25519/field"
)

// ErrInvalidEncoding is returned when a 32-byte string is not the
// encoding of a curve point: the y-coordinate is out of range, the
// recovered x^2 has no square root, or the sign bit demands an odd x
// when x is zero.
var ErrInvalidEncoding = errors.New("edwards: invalid point encoding")

var (
	// d = -121665/121666 mod p
	d = func() field.Element {
		inv, err := field.NewInt(121666).Invert()
		if err != nil {
			panic(err)
		}
		return field.NewInt(-121665).Mul(inv)
	}()
	d2 = d.Add(d)

	base = func() Point {
		x, okX := new(big.Int).SetString(
			"15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
		y, okY := new(big.Int).SetString(
			"46316835694926478169428394003475163141307993866256225615783033603165251855960", 10)
		if !okX || !okY {
			panic("edwards: failed to parse base point")
		}
		return fromAffine(field.New(x), field.New(y))
	}()
)

// Point is a point on the curve. The zero value is not a valid Point;
// use Identity, Base, Decode or the arithmetic methods.
type Point struct {
	x, y, z, t field.Element
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{
		x: field.Zero(),
		y: field.One(),
		z: field.One(),
		t: field.Zero(),
	}
}

// Base returns the RFC 8032 base point B.
func Base() Point {
	return base
}

// D returns the curve constant d = -121665/121666.
func D() field.Element {
	return d
}

func fromAffine(x, y field.Element) Point {
	return Point{
		x: x,
		y: y,
		z: field.One(),
		t: x.Mul(y),
	}
}

// Add returns p + q using the extended-coordinate addition formulas.
// The formulas are complete for this curve: they are correct for every
// pair of inputs, including doublings and the identity.
func (p Point) Add(q Point) Point {
	a := p.y.Sub(p.x).Mul(q.y.Sub(q.x))
	b := p.y.Add(p.x).Mul(q.y.Add(q.x))
	c := d2.Mul(p.t).Mul(q.t)
	dd := p.z.Mul(q.z)
	dd = dd.Add(dd)

	e := b.Sub(a)
	f := dd.Sub(c)
	g := dd.Add(c)
	h := b.Add(a)

	return Point{
		x: e.Mul(f),
		y: g.Mul(h),
		z: f.Mul(g),
		t: e.Mul(h),
	}
}

// Double returns p + p using the dedicated doubling formulas, which
// save a few multiplications over Add(p, p).
func (p Point) Double() Point {
	a := p.x.Square()
	b := p.y.Square()
	c := p.z.Square()
	c = c.Add(c)
	// a = -1 on this curve, so a*A is -A.
	dd := a.Negate()
	e := p.x.Add(p.y).Square().Sub(a).Sub(b)
	g := dd.Add(b)
	f := g.Sub(c)
	h := dd.Sub(b)

	return Point{
		x: e.Mul(f),
		y: g.Mul(h),
		z: f.Mul(g),
		t: e.Mul(h),
	}
}

// ScalarMult returns k*p for a non-negative k, by double-and-add over
// the bits of k from most significant to least, starting from the
// identity.
func (p Point) ScalarMult(k *big.Int) Point {
	q := Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		q = q.Double()
		if k.Bit(i) == 1 {
			q = q.Add(p)
		}
	}
	return q
}

// ScalarBaseMult returns k*B where B is the base point.
func ScalarBaseMult(k *big.Int) Point {
	return base.ScalarMult(k)
}

// Affine returns the affine coordinates (x, y) of p.
func (p Point) Affine() (field.Element, field.Element) {
	zInv, err := p.z.Invert()
	if err != nil {
		// Z is nonzero for every point produced by this package.
		panic("edwards: point with zero Z coordinate")
	}
	return p.x.Mul(zInv), p.y.Mul(zInv)
}

// Encode compresses p into 32 bytes: the y-coordinate little-endian,
// with the top bit of the last byte carrying the parity of x.
func (p Point) Encode() [32]byte {
	x, y := p.Affine()
	out := y.Bytes()
	if x.IsOdd() {
		out[31] |= 0x80
	}
	return out
}

// Decode parses a 32-byte compressed point. It recovers x from the
// curve equation as x^2 = (y^2-1)/(d*y^2+1), takes a square root, and
// picks the root whose parity matches the encoded sign bit. The
// reconstructed point is checked against the curve equation before it
// is returned.
func Decode(b [32]byte) (Point, error) {
	sign := b[31] >> 7
	b[31] &= 0x7f

	yInt := codec.DecodeLE(b[:])
	if yInt.Cmp(field.Prime()) >= 0 {
		return Point{}, ErrInvalidEncoding
	}
	y := field.New(yInt)

	// x^2 = (y^2 - 1) / (d*y^2 + 1). The denominator is never zero:
	// -1/d is a non-residue, so d*y^2 = -1 has no solution.
	y2 := y.Square()
	u := y2.Sub(field.One())
	v := d.Mul(y2).Add(field.One())
	vInv, err := v.Invert()
	if err != nil {
		return Point{}, ErrInvalidEncoding
	}

	x, err := field.Sqrt(u.Mul(vInv))
	if err != nil {
		return Point{}, ErrInvalidEncoding
	}

	if x.IsZero() && sign == 1 {
		// Only -0 would have odd parity, and -0 = 0.
		return Point{}, ErrInvalidEncoding
	}
	if x.IsOdd() != (sign == 1) {
		x = x.Negate()
	}

	p := fromAffine(x, y)
	if !p.IsOnCurve() {
		return Point{}, ErrInvalidEncoding
	}
	return p, nil
}

// Equal reports whether p and q are the same point, comparing by
// cross-multiplication so no inversion is needed.
func (p Point) Equal(q Point) bool {
	return p.x.Mul(q.z).Equal(q.x.Mul(p.z)) &&
		p.y.Mul(q.z).Equal(q.y.Mul(p.z))
}

// IsIdentity reports whether p is the neutral element.
func (p Point) IsIdentity() bool {
	return p.Equal(Identity())
}

// IsOnCurve reports whether p satisfies -x^2 + y^2 = 1 + d*x^2*y^2.
func (p Point) IsOnCurve() bool {
	x, y := p.Affine()
	x2 := x.Square()
	y2 := y.Square()
	lhs := y2.Sub(x2)
	rhs := field.One().Add(d.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}
