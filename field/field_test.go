package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-25519/codec"
)

func randomElement(t *testing.T) Element {
	t.Helper()
	b := make([]byte, 32)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return New(codec.DecodeLE(b))
}

func TestNewReducesIntoCanonicalRange(t *testing.T) {
	require.True(t, New(Prime()).IsZero())

	// -1 ≡ p - 1
	pm1 := new(big.Int).Sub(Prime(), big.NewInt(1))
	require.True(t, NewInt(-1).Equal(New(pm1)))
}

func TestAddSubRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := randomElement(t)
		b := randomElement(t)
		require.True(t, a.Add(b).Sub(b).Equal(a))
	}
}

func TestAddMulCommutative(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := randomElement(t)
		b := randomElement(t)
		require.True(t, a.Add(b).Equal(b.Add(a)))
		require.True(t, a.Mul(b).Equal(b.Mul(a)))
	}
}

func TestAddMulAssociative(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := randomElement(t)
		b := randomElement(t)
		c := randomElement(t)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
		require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
	}
}

func TestMulInverse(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := randomElement(t)
		if a.IsZero() {
			continue
		}

		inv, err := a.Invert()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(One()))
	}
}

func TestInvertZero(t *testing.T) {
	_, err := Zero().Invert()
	require.ErrorIs(t, err, ErrInvalidInverse)
}

func TestNegate(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randomElement(t)
		require.True(t, a.Add(a.Negate()).IsZero())
	}
	require.True(t, Zero().Negate().IsZero())
}

func TestPow(t *testing.T) {
	a := randomElement(t)
	require.True(t, a.Pow(big.NewInt(0)).Equal(One()))
	require.True(t, a.Pow(big.NewInt(1)).Equal(a))
	require.True(t, a.Pow(big.NewInt(2)).Equal(a.Square()))
	require.True(t, a.Pow(big.NewInt(5)).Equal(a.Square().Square().Mul(a)))
}

func TestSelect(t *testing.T) {
	a := randomElement(t)
	b := randomElement(t)
	require.True(t, Select(0, a, b).Equal(a))
	require.True(t, Select(1, a, b).Equal(b))
}

func TestSwap(t *testing.T) {
	a := randomElement(t)
	b := randomElement(t)

	x, y := Swap(0, a, b)
	require.True(t, x.Equal(a))
	require.True(t, y.Equal(b))

	x, y = Swap(1, a, b)
	require.True(t, x.Equal(b))
	require.True(t, y.Equal(a))
}

func TestBytesRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randomElement(t)
		enc := a.Bytes()
		require.True(t, New(codec.DecodeLE(enc[:])).Equal(a))
	}
}

func TestZeroValueIsZero(t *testing.T) {
	var e Element
	require.True(t, e.IsZero())
	require.True(t, e.Equal(Zero()))
	require.True(t, e.Add(One()).Equal(One()))
}
