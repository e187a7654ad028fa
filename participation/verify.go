package participation

import (
	"github.com/obexchain/obex-core/primitives"
	"github.com/spacemeshos/ed25519"
)

// VerifyErr enumerates every way a Record can fail verification, in the
// exact order Check tests them. The order is itself part of the
// protocol: two implementations that test conditions in a different
// order could disagree about which error a multiply-invalid record
// produces, which would be an observable divergence even if both
// correctly reject the record.
type VerifyErr int

const (
	ErrNone VerifyErr = iota
	ErrVersionMismatch
	ErrSlotMismatch
	ErrChallengesLen
	ErrAlphaMismatch
	ErrVrfVerifyFailed
	ErrVrfOutputMismatch
	ErrSeedMismatch
	ErrSigInvalid
	ErrChalIndexMismatch
	ErrChalIndexBounds
	ErrJOrKOutOfRange
	ErrMerkleLiInvalid
	ErrMerkleLim1Invalid
	ErrMerkleLjInvalid
	ErrMerkleLkInvalid
	ErrLabelEquationMismatch
)

func (e VerifyErr) String() string {
	switch e {
	case ErrNone:
		return "none"
	case ErrVersionMismatch:
		return "version mismatch"
	case ErrSlotMismatch:
		return "slot mismatch"
	case ErrChallengesLen:
		return "wrong challenge count"
	case ErrAlphaMismatch:
		return "alpha mismatch"
	case ErrVrfVerifyFailed:
		return "vrf proof failed to verify"
	case ErrVrfOutputMismatch:
		return "vrf output mismatch"
	case ErrSeedMismatch:
		return "seed mismatch"
	case ErrSigInvalid:
		return "signature invalid"
	case ErrChalIndexMismatch:
		return "challenge index mismatch"
	case ErrChalIndexBounds:
		return "challenge index out of bounds"
	case ErrJOrKOutOfRange:
		return "dependency index out of range"
	case ErrMerkleLiInvalid:
		return "label i merkle path invalid"
	case ErrMerkleLim1Invalid:
		return "label i-1 merkle path invalid"
	case ErrMerkleLjInvalid:
		return "label j merkle path invalid"
	case ErrMerkleLkInvalid:
		return "label k merkle path invalid"
	case ErrLabelEquationMismatch:
		return "label recurrence equation mismatch"
	default:
		return "unknown"
	}
}

func (e VerifyErr) Error() string { return "participation: " + e.String() }

const lastPass = Passes - 1

// Check verifies rec against the expected slot and parent header id,
// using vrf to check the VRF proof. It tests conditions in the fixed
// order documented on VerifyErr and returns the first one that fails.
func Check(rec *Record, slot uint64, parentID primitives.Hash256, vrf EcVrfVerifier) VerifyErr {
	if rec.Version != Version {
		return ErrVersionMismatch
	}
	if rec.Slot != slot {
		return ErrSlotMismatch
	}
	if len(rec.Challenges) != ChallengesQ {
		return ErrChallengesLen
	}

	wantAlpha := Alpha(parentID, slot, rec.YEdgePrev, rec.VrfPk)
	if !primitives.CtEqual(wantAlpha, rec.Alpha) {
		return ErrAlphaMismatch
	}

	vrfOut, ok := vrf.Verify(rec.VrfPk, rec.Alpha, rec.VrfPi)
	if !ok {
		return ErrVrfVerifyFailed
	}
	if len(vrfOut) != len(rec.VrfY) || !bytesEqual(vrfOut, rec.VrfY) {
		return ErrVrfOutputMismatch
	}

	wantSeed := Seed(rec.YEdgePrev, rec.PkEd25519, rec.VrfY)
	if !primitives.CtEqual(wantSeed, rec.Seed) {
		return ErrSeedMismatch
	}

	msg := PartRecTranscript(rec.Version, rec.PkEd25519, rec.VrfPk, rec.Slot, rec.YEdgePrev, rec.Alpha, rec.VrfY, rec.Root)
	if !ed25519.Verify(ed25519.PublicKey(rec.PkEd25519[:]), msg[:], rec.Sig[:]) {
		return ErrSigInvalid
	}

	for t, c := range rec.Challenges {
		wantIdx := ChalIndex(rec.YEdgePrev, rec.Root, rec.VrfY, uint32(t))
		if c.Idx != wantIdx {
			return ErrChalIndexMismatch
		}
		if c.Idx == 0 || c.Idx >= NLabels {
			return ErrChalIndexBounds
		}

		j := IdxJ(rec.Seed, c.Idx, uint32(lastPass))
		k := IdxK(rec.Seed, c.Idx, uint32(lastPass))
		if j >= c.Idx || k >= c.Idx {
			return ErrJOrKOutOfRange
		}

		if !leafOKAt(rec.Root, c.Li, c.Idx, c.Pi) {
			return ErrMerkleLiInvalid
		}
		if !leafOKAt(rec.Root, c.Lim1, c.Idx-1, c.Pim1) {
			return ErrMerkleLim1Invalid
		}
		if !leafOKAt(rec.Root, c.Lj, j, c.Pj) {
			return ErrMerkleLjInvalid
		}
		if !leafOKAt(rec.Root, c.Lk, k, c.Pk) {
			return ErrMerkleLkInvalid
		}

		wantLi := LabelUpdate(rec.Seed, c.Idx, c.Lim1, c.Lj, c.Lk)
		if !primitives.CtEqual(wantLi, c.Li) {
			return ErrLabelEquationMismatch
		}
	}

	return ErrNone
}

func leafOKAt(root primitives.Hash256, label primitives.Hash256, idx uint64, path MerklePathLite) bool {
	full := primitives.MerklePath{Siblings: path.Siblings, Index: idx}
	return primitives.VerifyLeaf(root, primitives.MerkleLeaf(label[:]), full)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// VerifyBytes is the DoS-gated entry point: it rejects oversized wire
// records before paying the cost of decoding them, then decodes and
// runs Check.
func VerifyBytes(data []byte, slot uint64, parentID primitives.Hash256, vrf EcVrfVerifier) bool {
	if len(data) > MaxPartRecSize {
		return false
	}
	rec, err := Decode(data)
	if err != nil {
		return false
	}
	return Check(rec, slot, parentID, vrf) == ErrNone
}
