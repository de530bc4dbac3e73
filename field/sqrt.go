package field

import (
	"errors"
	"math/big"
)

// ErrNoSquareRoot is returned when the input is a quadratic
// non-residue.
var ErrNoSquareRoot = errors.New("field: element is not a square")

var (
	// (p + 3) / 8
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(3)), 3)

	// sqrt(-1) = 2^((p-1)/4) mod p
	sqrtM1 = Element{n: new(big.Int).Exp(
		big.NewInt(2),
		new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 2),
		p,
	)}
)

// Sqrt returns an r with r*r == a.
//
// Because p ≡ 5 (mod 8) the general Tonelli-Shanks algorithm collapses
// to a closed form: r = a^((p+3)/8) is a root of either a or -a. In
// the latter case multiplying by sqrt(-1) fixes it up. If neither
// candidate squares to a, a is a non-residue and ErrNoSquareRoot is
// returned.
//
// Both roots r and p-r satisfy the equation; no particular one is
// promised.
func Sqrt(a Element) (Element, error) {
	r := a.Pow(sqrtExp)
	if r.Square().Equal(a) {
		return r, nil
	}

	r = r.Mul(sqrtM1)
	if r.Square().Equal(a) {
		return r, nil
	}

	return Element{}, ErrNoSquareRoot
}

// SqrtMinusOne returns the fixed square root of -1 used by Sqrt.
func SqrtMinusOne() Element {
	return sqrtM1
}
