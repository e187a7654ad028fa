// Package participation implements the OBEX.α-I participation engine:
// the RAM-hard label dataset, the per-slot challenge-response record
// signed by each participant, and the aggregation of verified records
// into a single slot-level participation commitment.
package participation

import "github.com/obexchain/obex-core/primitives"

// Protocol constants. These mirror config.DefaultConfig's α-I fields;
// they're repeated here as compile-time constants because they also gate
// fixed-size array/slice shapes (ChallengeOpen counts, label-dataset
// sizing) that can't flex per-deployment without changing the wire
// format itself.
const (
	Version         uint32 = 1
	MemMiB                 = 512
	LabelBytes             = 32
	NLabels         uint64 = (MemMiB * 1 << 20) / LabelBytes
	Passes                 = 3
	ChallengesQ            = 96
	MaxPartRecSize         = 600_000

	VrfPkBytes = 32
	VrfPiBytes = 80
	VrfYBytes  = 64
)

// VrfPk32 is a 32-byte VRF public key. It is an alias of Pk32 (the
// Ed25519 signing key type), so the compiler does not tell the two
// apart; the name only marks the VRF role at call sites.
type VrfPk32 = primitives.Pk32

// MerklePathLite is a bare sibling list without the redundant leaf
// index carried by primitives.MerklePath: ChallengeOpen states Idx, and
// the verifier derives the other openings' indices (Idx-1, J, K) from
// it, so the path only needs to carry the siblings to walk from that
// known index to Root.
type MerklePathLite struct {
	Siblings []primitives.Hash256
}

// ChallengeOpen is one of the Q succinct openings proving a single step
// of the label recurrence at index Idx: the label at Idx, at Idx-1, and
// at its two pseudo-random dependencies J and K, each authenticated
// against Root.
type ChallengeOpen struct {
	Idx  uint64
	Li   primitives.Hash256
	Pi   MerklePathLite
	Lim1 primitives.Hash256
	Pim1 MerklePathLite
	Lj   primitives.Hash256
	Pj   MerklePathLite
	Lk   primitives.Hash256
	Pk   MerklePathLite
}

// Record is a single participant's per-slot participation record: the
// VRF-derived alpha/seed binding them to the slot, the Merkle root of
// their label dataset, Q challenge openings proving the dataset was
// actually computed, and a signature over the whole transcript.
type Record struct {
	Version     uint32
	Slot        uint64
	PkEd25519   primitives.Pk32
	VrfPk       VrfPk32
	YEdgePrev   primitives.Hash256
	Alpha       primitives.Hash256
	VrfY        []byte // VrfYBytes
	VrfPi       []byte // VrfPiBytes
	Seed        primitives.Hash256
	Root        primitives.Hash256
	Challenges  []ChallengeOpen // len == ChallengesQ
	Sig         primitives.Sig64
}
