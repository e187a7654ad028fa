package participation

import (
	"crypto/sha512"

	"github.com/obexchain/obex-core/primitives"
)

// EcVrfVerifier is the pluggable VRF capability the participation
// engine depends on. The core never assumes a concrete VRF suite: it
// only requires that Verify deterministically recompute the 64-byte VRF
// output from (vrfPk, alpha, proof), returning ok=false on any proof
// that doesn't verify. Production deployments inject an
// ECVRF-EDWARDS25519-SHA512-TAI (RFC 9381) implementation; this package
// never ships one itself.
type EcVrfVerifier interface {
	Verify(vrfPk VrfPk32, alpha primitives.Hash256, proof []byte) (output []byte, ok bool)
}

// ReferenceVRF is a self-consistent stand-in VRF used by tests and
// fixtures: its 80-byte "proof" is the expected 64-byte output followed
// by 16 zero bytes, and Verify accepts iff the proof's first 64 bytes
// equal SHA-512(vrfPk || alpha). It is
// deliberately not a real VRF (the output is computable by anyone, not
// just the holder of a VRF secret key) — it exists only so that
// conformance fixtures and the end-to-end harness can exercise the
// α-I record pipeline without linking a real RFC 9381 implementation.
type ReferenceVRF struct{}

// Prove computes the deterministic stand-in VRF proof/output pair for
// vrfPk over alpha, for use by fixture/prover code.
func (ReferenceVRF) Prove(vrfPk VrfPk32, alpha primitives.Hash256) ([]byte, []byte) {
	sum := sha512.Sum512(append(append([]byte{}, vrfPk[:]...), alpha[:]...))
	out := make([]byte, VrfYBytes)
	copy(out, sum[:])
	proof := make([]byte, VrfPiBytes)
	copy(proof, out)
	return proof, out
}

// Verify implements EcVrfVerifier.
func (ReferenceVRF) Verify(vrfPk VrfPk32, alpha primitives.Hash256, proof []byte) ([]byte, bool) {
	if len(proof) != VrfPiBytes {
		return nil, false
	}
	sum := sha512.Sum512(append(append([]byte{}, vrfPk[:]...), alpha[:]...))
	out := make([]byte, VrfYBytes)
	copy(out, sum[:])
	for i := 0; i < VrfYBytes; i++ {
		if proof[i] != out[i] {
			return nil, false
		}
	}
	return out, true
}
