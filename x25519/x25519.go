// Package x25519 implements the X25519 Diffie-Hellman function from
// RFC 7748 on top of the montgomery ladder.
package x25519

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/athanorlabs/go-25519/montgomery"
)

// KeySize is the size of private keys, public keys and shared secrets.
const KeySize = 32

// ErrLowOrderResult is returned when the shared secret is the all-zero
// string, meaning the peer supplied a small-order point. The exchange
// must be treated as failed; the zero output is never a usable secret.
var ErrLowOrderResult = errors.New("x25519: shared secret is the all-zero point")

// KeyPair holds a 32-byte private scalar and the matching public key.
// The private scalar is stored raw; clamping happens on use.
type KeyPair struct {
	Private [KeySize]byte
	Public  [KeySize]byte
}

// GenerateKeyPair reads 32 bytes from rng (crypto/rand.Reader when rng
// is nil) and derives the corresponding public key. Exactly one read
// is performed.
func GenerateKeyPair(rng io.Reader) (*KeyPair, error) {
	if rng == nil {
		rng = rand.Reader
	}

	kp := &KeyPair{}
	if _, err := io.ReadFull(rng, kp.Private[:]); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	kp.Public = PublicKey(kp.Private)
	return kp, nil
}

// PublicKey derives the public key for a private scalar: the clamped
// scalar multiplied against the base point u = 9.
func PublicKey(private [KeySize]byte) [KeySize]byte {
	return montgomery.ScalarMult(private, montgomery.BaseU.Bytes())
}

// SharedSecret computes the X25519 shared secret between a private
// scalar and a peer's public key. The peer bytes are decoded as a raw
// u-coordinate with no validation, per the X25519 contract; the one
// recognized failure is an all-zero result, reported as
// ErrLowOrderResult.
func SharedSecret(private, peerPublic [KeySize]byte) ([KeySize]byte, error) {
	out := montgomery.ScalarMult(private, peerPublic)

	var acc byte
	for _, c := range out {
		acc |= c
	}
	if acc == 0 {
		return [KeySize]byte{}, ErrLowOrderResult
	}
	return out, nil
}
