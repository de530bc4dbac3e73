package edwards

import (
	"crypto/rand"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-25519/codec"
)

// randomScalarBytes returns the canonical encoding of a uniform mod-L
// scalar, using the oracle's reduction.
func randomScalarBytes(t *testing.T) [32]byte {
	t.Helper()
	var wide [64]byte
	_, err := rand.Read(wide[:])
	require.NoError(t, err)

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	require.NoError(t, err)

	var out [32]byte
	copy(out[:], s.Bytes())
	return out
}

func randomPoint(t *testing.T) Point {
	t.Helper()
	b := randomScalarBytes(t)
	return ScalarBaseMult(codec.DecodeLE(b[:]))
}

func TestBasePointOnCurve(t *testing.T) {
	require.True(t, Base().IsOnCurve())
	require.False(t, Base().IsIdentity())
}

func TestIdentity(t *testing.T) {
	id := Identity()
	require.True(t, id.IsOnCurve())
	require.True(t, id.IsIdentity())

	var expected [32]byte
	expected[0] = 1
	require.Equal(t, expected, id.Encode())

	decoded, err := Decode(id.Encode())
	require.NoError(t, err)
	require.True(t, decoded.IsIdentity())
}

func TestAddIdentity(t *testing.T) {
	p := randomPoint(t)
	require.True(t, p.Add(Identity()).Equal(p))
	require.True(t, Identity().Add(p).Equal(p))
}

func TestAddDoubleConsistency(t *testing.T) {
	for i := 0; i < 16; i++ {
		p := randomPoint(t)
		require.True(t, p.Add(p).Equal(p.Double()))
		require.True(t, p.Double().IsOnCurve())
	}
	require.True(t, Identity().Double().IsIdentity())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		p := randomPoint(t)
		decoded, err := Decode(p.Encode())
		require.NoError(t, err)
		require.True(t, decoded.Equal(p))
	}
}

func TestEqualAcrossRepresentations(t *testing.T) {
	// Adding the identity changes the projective representation but
	// not the point.
	p := randomPoint(t)
	q := p.Add(Identity()).Add(Identity())
	require.True(t, p.Equal(q))
}

func TestScalarMultSmall(t *testing.T) {
	p := Base()
	acc := Identity()
	for k := int64(0); k <= 20; k++ {
		require.True(t, p.ScalarMult(big.NewInt(k)).Equal(acc))
		acc = acc.Add(p)
	}
}

func TestScalarBaseMultMatchesOracle(t *testing.T) {
	for i := 0; i < 16; i++ {
		sb := randomScalarBytes(t)

		ref, err := edwards25519.NewScalar().SetCanonicalBytes(sb[:])
		require.NoError(t, err)
		expected := new(edwards25519.Point).ScalarBaseMult(ref).Bytes()

		got := ScalarBaseMult(codec.DecodeLE(sb[:])).Encode()
		require.Equal(t, expected, got[:])
	}
}

func TestScalarMultMatchesOracle(t *testing.T) {
	p := randomPoint(t)
	enc := p.Encode()
	refP, err := new(edwards25519.Point).SetBytes(enc[:])
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		sb := randomScalarBytes(t)

		ref, err := edwards25519.NewScalar().SetCanonicalBytes(sb[:])
		require.NoError(t, err)
		expected := new(edwards25519.Point).ScalarMult(ref, refP).Bytes()

		got := p.ScalarMult(codec.DecodeLE(sb[:])).Encode()
		require.Equal(t, expected, got[:])
	}
}

func TestDecodeRejectsOutOfRangeY(t *testing.T) {
	// The field prime itself: canonical range is [0, p).
	pEnc := codec.Encode32(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19)))
	_, err := Decode(pEnc)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	var ones [32]byte
	for i := range ones {
		ones[i] = 0xff
	}
	// Masking the sign bit still leaves y = 2^255 - 1 >= p.
	_, err = Decode(ones)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeRejectsNonSquare(t *testing.T) {
	// y = 2 gives x^2 with no square root.
	var b [32]byte
	b[0] = 2
	_, err := Decode(b)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeRejectsZeroXWithSignBit(t *testing.T) {
	// y = 1 forces x = 0; the sign bit demands an odd x.
	var b [32]byte
	b[0] = 1
	b[31] = 0x80
	_, err := Decode(b)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

// TestDecodeMatchesOracle checks accept/reject agreement with the
// reference implementation across a sweep of encodings.
func TestDecodeMatchesOracle(t *testing.T) {
	for y := 0; y < 64; y++ {
		for _, sign := range []byte{0x00, 0x80} {
			var b [32]byte
			b[0] = byte(y)
			b[31] = sign

			_, refErr := new(edwards25519.Point).SetBytes(b[:])
			p, err := Decode(b)

			require.Equal(t, refErr == nil, err == nil, "y=%d sign=%x", y, sign)
			if err == nil {
				require.Equal(t, b, p.Encode())
			}
		}
	}
}
