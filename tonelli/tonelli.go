// Package tonelli implements the general Tonelli-Shanks modular square
// root algorithm for arbitrary odd primes.
//
// The field package uses a closed-form square root that is only valid
// because 2^255-19 ≡ 5 (mod 8); this package is the independent,
// general-purpose reference that the specialized routine is checked
// against. It is imported only by tests and never invoked at runtime.
package tonelli

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Decompose factors n as q * 2^s with q odd.
func Decompose(n *big.Int) (*big.Int, int) {
	q := new(big.Int).Set(n)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	return q, s
}

// Legendre computes the Legendre symbol (a/p): 1 if a is a quadratic
// residue modulo p, -1 if it is a non-residue, 0 if p divides a.
func Legendre(a, p *big.Int) int {
	// a^((p-1)/2) mod p by Euler's criterion.
	e := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)
	ls := new(big.Int).Exp(a, e, p)

	switch {
	case ls.Sign() == 0:
		return 0
	case ls.Cmp(new(big.Int).Sub(p, one)) == 0:
		return -1
	default:
		return 1
	}
}

// IsQuadraticResidue reports whether n is a square modulo p.
func IsQuadraticResidue(n, p *big.Int) bool {
	if new(big.Int).Mod(n, p).Sign() == 0 || p.Cmp(two) == 0 {
		return true
	}
	return Legendre(n, p) == 1
}

// FindNonResidue returns the smallest quadratic non-residue modulo the
// odd prime p.
func FindNonResidue(p *big.Int) *big.Int {
	for z := big.NewInt(2); z.Cmp(p) < 0; z = new(big.Int).Add(z, one) {
		if Legendre(z, p) == -1 {
			return z
		}
	}
	panic("tonelli: no quadratic non-residue found, p is not an odd prime")
}

// Sqrt solves r^2 ≡ n (mod p) for an odd prime p (p == 2 is also
// accepted). It returns one of the two roots and true, or nil and
// false when n is a quadratic non-residue.
func Sqrt(n, p *big.Int) (*big.Int, bool) {
	n = new(big.Int).Mod(n, p)

	if p.Cmp(two) == 0 {
		return new(big.Int).Mod(n, two), true
	}
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	if !IsQuadraticResidue(n, p) {
		return nil, false
	}

	// For p ≡ 3 (mod 4) the root is n^((p+1)/4) directly.
	if p.Bit(0) == 1 && p.Bit(1) == 1 {
		e := new(big.Int).Rsh(new(big.Int).Add(p, one), 2)
		return new(big.Int).Exp(n, e, p), true
	}

	q, s := Decompose(new(big.Int).Sub(p, one))
	z := FindNonResidue(p)

	c := new(big.Int).Exp(z, q, p)
	r := new(big.Int).Exp(n, new(big.Int).Rsh(new(big.Int).Add(q, one), 1), p)
	t := new(big.Int).Exp(n, q, p)
	m := s

	for t.Cmp(one) != 0 {
		// Smallest i with t^(2^i) ≡ 1 (mod p).
		i := 0
		temp := new(big.Int).Set(t)
		for temp.Cmp(one) != 0 {
			temp.Exp(temp, two, p)
			i++
			if i == m {
				panic("tonelli: t^(2^i) never reached 1")
			}
		}

		// b = c^(2^(m-i-1)) mod p
		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, uint(m-i-1)), p)

		r.Mod(r.Mul(r, b), p)
		c.Mod(new(big.Int).Mul(b, b), p)
		t.Mod(t.Mul(t, c), p)
		m = i
	}

	return r, true
}
