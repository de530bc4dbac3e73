package tonelli

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	q, s := Decompose(big.NewInt(40)) // 40 = 5 * 2^3
	require.Equal(t, int64(5), q.Int64())
	require.Equal(t, 3, s)

	q, s = Decompose(big.NewInt(7))
	require.Equal(t, int64(7), q.Int64())
	require.Equal(t, 0, s)
}

func TestLegendre(t *testing.T) {
	p := big.NewInt(13)
	// Squares mod 13: 1, 3, 4, 9, 10, 12.
	require.Equal(t, 1, Legendre(big.NewInt(10), p))
	require.Equal(t, -1, Legendre(big.NewInt(2), p))
	require.Equal(t, 0, Legendre(big.NewInt(13), p))
}

func TestFindNonResidue(t *testing.T) {
	require.Equal(t, int64(2), FindNonResidue(big.NewInt(13)).Int64())
	require.Equal(t, int64(2), FindNonResidue(big.NewInt(5)).Int64())
}

func TestSqrtKnownValues(t *testing.T) {
	cases := []struct {
		n, p int64
		ok   bool
	}{
		{10, 13, true},
		{56, 101, true},
		{1030, 10009, true},
		{1032, 10009, false}, // non-residue
		{44402, 100049, true},
		{4, 7, true}, // p ≡ 3 (mod 4) shortcut
		{0, 13, true},
	}

	for _, tc := range cases {
		n := big.NewInt(tc.n)
		p := big.NewInt(tc.p)

		r, ok := Sqrt(n, p)
		require.Equal(t, tc.ok, ok, "n=%d p=%d", tc.n, tc.p)
		if !ok {
			continue
		}

		rr := new(big.Int).Exp(r, big.NewInt(2), p)
		require.Zero(t, rr.Cmp(new(big.Int).Mod(n, p)), "n=%d p=%d", tc.n, tc.p)
	}
}

// TestSqrtMatchesModSqrt compares against math/big's built-in modular
// square root over the curve25519 prime.
func TestSqrtMatchesModSqrt(t *testing.T) {
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	for i := 0; i < 16; i++ {
		b := make([]byte, 32)
		_, err := rand.Read(b)
		require.NoError(t, err)
		n := new(big.Int).Mod(new(big.Int).SetBytes(b), p)

		r, ok := Sqrt(n, p)
		ref := new(big.Int).ModSqrt(n, p)

		require.Equal(t, ref != nil, ok)
		if !ok {
			continue
		}

		rr := new(big.Int).Exp(r, big.NewInt(2), p)
		require.Zero(t, rr.Cmp(n))
	}
}
