// Package codec implements the fixed-size little-endian byte encodings
// shared by the X25519 and Ed25519 protocols. Field elements, scalars,
// u-coordinates and signature components are all 32-byte little-endian
// strings on the wire.
package codec

import (
	"math/big"
)

// Size is the encoded length of a field element or scalar.
const Size = 32

// DecodeLE interprets b as a little-endian unsigned integer.
func DecodeLE(b []byte) *big.Int {
	buf := make([]byte, len(b))
	for i, c := range b {
		buf[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(buf)
}

// Encode32 encodes x as 32 little-endian bytes. x must be non-negative
// and fit in 256 bits.
func Encode32(x *big.Int) [Size]byte {
	var be [Size]byte
	x.FillBytes(be[:])

	var out [Size]byte
	for i, c := range be {
		out[Size-1-i] = c
	}
	return out
}
