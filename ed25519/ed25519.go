// Package ed25519 implements the Ed25519 signature scheme from RFC
// 8032 on top of the edwards group, with SHA-512 consumed as a
// black-box primitive.
//
// Signing is deterministic: the nonce is derived by hashing the second
// half of the expanded seed together with the message, so no
// randomness is needed after key generation.
package ed25519

import (
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/athanorlabs/go-25519/edwards"
	"github.com/athanorlabs/go-25519/scalar"
)

const (
	// SeedSize is the size of a private seed.
	SeedSize = 32
	// PublicKeySize is the size of an encoded public key.
	PublicKeySize = 32
	// SignatureSize is the size of a signature: the encoded point R
	// followed by the little-endian scalar S.
	SignatureSize = 64
)

var (
	// ErrSignatureMismatch is returned when a well-formed signature
	// fails the verification equation.
	ErrSignatureMismatch = errors.New("ed25519: signature verification failed")

	// ErrInvalidSignatureLength is returned before any decoding when
	// the signature is not exactly 64 bytes.
	ErrInvalidSignatureLength = errors.New("ed25519: signature must be 64 bytes")
)

// KeyPair holds a 32-byte private seed and the matching encoded public
// key. The signing scalar is re-derived from the seed on every use and
// never stored.
type KeyPair struct {
	Seed   [SeedSize]byte
	Public [PublicKeySize]byte
}

// GenerateKeyPair reads a 32-byte seed from rng (crypto/rand.Reader
// when rng is nil) and derives the corresponding public key. Exactly
// one read is performed.
func GenerateKeyPair(rng io.Reader) (*KeyPair, error) {
	if rng == nil {
		rng = rand.Reader
	}

	var seed [SeedSize]byte
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return NewKeyPairFromSeed(seed), nil
}

// NewKeyPairFromSeed derives the key pair for a seed: the seed is
// hashed with SHA-512, the first half clamped into the signing scalar
// a, and the public key is the encoding of a*B.
func NewKeyPairFromSeed(seed [SeedSize]byte) *KeyPair {
	a, _ := expandSeed(seed)
	return &KeyPair{
		Seed:   seed,
		Public: edwards.ScalarBaseMult(a).Encode(),
	}
}

// expandSeed hashes the seed and splits the digest into the clamped
// signing exponent a and the 32-byte nonce prefix.
func expandSeed(seed [SeedSize]byte) (*big.Int, [32]byte) {
	h := sha512.Sum512(seed[:])

	var sb, prefix [32]byte
	copy(sb[:], h[:32])
	copy(prefix[:], h[32:])
	return scalar.Clamp(sb), prefix
}

// Sign produces the deterministic Ed25519 signature of message under
// the given seed:
//
//	r = SHA-512(prefix ‖ message) mod L
//	R = r*B
//	k = SHA-512(enc(R) ‖ publicKey ‖ message) mod L
//	S = r + k*a mod L
//
// and returns enc(R) ‖ LE(S).
func Sign(seed [SeedSize]byte, message []byte) [SignatureSize]byte {
	a, prefix := expandSeed(seed)
	public := edwards.ScalarBaseMult(a).Encode()

	h := sha512.New()
	h.Write(prefix[:])
	h.Write(message)
	var rDigest [64]byte
	copy(rDigest[:], h.Sum(nil))
	r := scalar.FromUniformBytes(rDigest)

	R := edwards.ScalarBaseMult(r.BigInt()).Encode()
	k := challenge(R, public, message)
	S := r.Add(k.Mul(scalar.Reduce(a)))

	var sig [SignatureSize]byte
	copy(sig[:32], R[:])
	sBytes := S.Bytes()
	copy(sig[32:], sBytes[:])
	return sig
}

// challenge computes k = SHA-512(enc(R) ‖ publicKey ‖ message) mod L,
// identically in signing and verification.
func challenge(R, public [32]byte, message []byte) scalar.Scalar {
	h := sha512.New()
	h.Write(R[:])
	h.Write(public[:])
	h.Write(message)

	var digest [64]byte
	copy(digest[:], h.Sum(nil))
	return scalar.FromUniformBytes(digest)
}

// Verify checks a signature over message under publicKey. It returns
// nil only when the signature is valid. Failure modes, all checked
// before the verification equation is evaluated:
//
//   - ErrInvalidSignatureLength when sig is not 64 bytes
//   - edwards.ErrInvalidEncoding when R or the public key is malformed
//   - scalar.ErrInvalidScalar when S >= L (non-canonical encodings are
//     rejected, never reduced)
//
// A well-formed signature that fails the equation
// [S]B == R + [k]A yields ErrSignatureMismatch.
func Verify(publicKey [PublicKeySize]byte, message, sig []byte) error {
	if len(sig) != SignatureSize {
		return ErrInvalidSignatureLength
	}

	var rBytes, sBytes [32]byte
	copy(rBytes[:], sig[:32])
	copy(sBytes[:], sig[32:])

	R, err := edwards.Decode(rBytes)
	if err != nil {
		return err
	}

	S, err := scalar.FromCanonicalBytes(sBytes)
	if err != nil {
		return err
	}

	A, err := edwards.Decode(publicKey)
	if err != nil {
		return err
	}

	k := challenge(rBytes, publicKey, message)

	lhs := edwards.ScalarBaseMult(S.BigInt())
	rhs := R.Add(A.ScalarMult(k.BigInt()))
	if !lhs.Equal(rhs) {
		return ErrSignatureMismatch
	}
	return nil
}
