package montgomery

import (
	"math/big"

	"github.com/athanorlabs/go-25519/field"
)

// curveA is the Montgomery coefficient in v^2 = u^3 + A*u^2 + u.
var curveA = field.NewInt(486662)

// AffinePoint is a point on the Montgomery curve in full affine (u, v)
// coordinates, with the point at infinity represented explicitly.
//
// This is the textbook chord-and-tangent group law. It is variable
// time and needs a square root to even construct a point, so the
// ladder never touches it; it exists as an independent reference that
// the ladder is checked against.
type AffinePoint struct {
	u, v field.Element
	inf  bool
}

// Infinity returns the group's neutral element.
func Infinity() AffinePoint {
	return AffinePoint{inf: true}
}

// NewAffinePoint returns the point (u, v). The coordinates are not
// checked against the curve equation; use IsOnCurve.
func NewAffinePoint(u, v field.Element) AffinePoint {
	return AffinePoint{u: u, v: v}
}

// RecoverPoint lifts a u-coordinate to a full point by solving
// v^2 = u^3 + A*u^2 + u. Of the two roots it returns the numerically
// smaller one. field.ErrNoSquareRoot is returned when no point on the
// curve has this u-coordinate (i.e. u belongs to the twist).
func RecoverPoint(u field.Element) (AffinePoint, error) {
	rhs := u.Square().Mul(u).Add(curveA.Mul(u.Square())).Add(u)
	v, err := field.Sqrt(rhs)
	if err != nil {
		return AffinePoint{}, err
	}

	neg := v.Negate()
	if neg.BigInt().Cmp(v.BigInt()) < 0 {
		v = neg
	}
	return AffinePoint{u: u, v: v}, nil
}

// IsInfinity reports whether p is the neutral element.
func (p AffinePoint) IsInfinity() bool {
	return p.inf
}

// U returns the u-coordinate of p. Only valid for finite points.
func (p AffinePoint) U() field.Element {
	return p.u
}

// V returns the v-coordinate of p. Only valid for finite points.
func (p AffinePoint) V() field.Element {
	return p.v
}

// Equal reports whether p and q are the same point.
func (p AffinePoint) Equal(q AffinePoint) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.u.Equal(q.u) && p.v.Equal(q.v)
}

// IsOnCurve reports whether p satisfies v^2 = u^3 + A*u^2 + u.
func (p AffinePoint) IsOnCurve() bool {
	if p.inf {
		return true
	}
	lhs := p.v.Square()
	rhs := p.u.Square().Mul(p.u).Add(curveA.Mul(p.u.Square())).Add(p.u)
	return lhs.Equal(rhs)
}

// Add returns p + q under the chord-and-tangent law:
//
//	λ  = (v2 - v1) / (u2 - u1)
//	u3 = λ^2 - A - u1 - u2
//	v3 = λ*(u1 - u3) - v1
//
// with doubling when p == q and infinity when q = -p.
func (p AffinePoint) Add(q AffinePoint) AffinePoint {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}

	if p.u.Equal(q.u) {
		if p.v.Add(q.v).IsZero() {
			return Infinity()
		}
		return p.Double()
	}

	num := q.v.Sub(p.v)
	den, err := q.u.Sub(p.u).Invert()
	if err != nil {
		// Unreachable: u1 != u2 was checked above.
		panic(err)
	}
	lam := num.Mul(den)

	u3 := lam.Square().Sub(curveA).Sub(p.u).Sub(q.u)
	v3 := lam.Mul(p.u.Sub(u3)).Sub(p.v)
	return AffinePoint{u: u3, v: v3}
}

// Double returns p + p using the tangent line at p:
//
//	λ  = (3*u^2 + 2*A*u + 1) / (2*v)
//	u3 = λ^2 - A - 2*u
//	v3 = λ*(u - u3) - v
//
// Points with v == 0 have order two, so doubling them gives infinity.
func (p AffinePoint) Double() AffinePoint {
	if p.inf || p.v.IsZero() {
		return Infinity()
	}

	u2 := p.u.Square()
	num := u2.Add(u2).Add(u2).
		Add(curveA.Mul(p.u).Add(curveA.Mul(p.u))).
		Add(field.One())
	den, err := p.v.Add(p.v).Invert()
	if err != nil {
		// Unreachable: v != 0 was checked above.
		panic(err)
	}
	lam := num.Mul(den)

	u3 := lam.Square().Sub(curveA).Sub(p.u).Sub(p.u)
	v3 := lam.Mul(p.u.Sub(u3)).Sub(p.v)
	return AffinePoint{u: u3, v: v3}
}

// ScalarMult returns k*p for a non-negative k by plain double-and-add.
func (p AffinePoint) ScalarMult(k *big.Int) AffinePoint {
	q := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		q = q.Double()
		if k.Bit(i) == 1 {
			q = q.Add(p)
		}
	}
	return q
}
