package participation

import (
	"encoding/binary"

	"github.com/obexchain/obex-core/primitives"
)

// Alpha computes the VRF input binding a participant to a slot: the
// hash of the parent header id, the slot number, the previous slot's
// VDF edge output, and the participant's VRF public key.
func Alpha(parentID primitives.Hash256, slot uint64, yEdgePrev primitives.Hash256, vrfPk VrfPk32) primitives.Hash256 {
	return primitives.H(primitives.TagAlpha, parentID[:], primitives.LE64(slot), yEdgePrev[:], vrfPk[:])
}

// Seed computes the label-dataset seed from the VRF output, binding it
// to the previous edge value and the participant's signing key so two
// participants never derive the same dataset.
func Seed(yEdgePrev primitives.Hash256, pk primitives.Pk32, vrfY []byte) primitives.Hash256 {
	return primitives.H(primitives.TagSeed, yEdgePrev[:], pk[:], vrfY)
}

// Label0 computes the first label in the dataset from the seed.
func Label0(seed primitives.Hash256) primitives.Hash256 {
	return primitives.H(primitives.TagL0, seed[:])
}

// IdxJ derives the first pseudo-random dependency index for label i in
// pass p, reduced modulo i (the dependency must point strictly
// backward in the dataset being built).
func IdxJ(seed primitives.Hash256, i uint64, pass uint32) uint64 {
	return derivedIndex(seed, i, pass, 0x00)
}

// IdxK derives the second pseudo-random dependency index for label i in
// pass p.
func IdxK(seed primitives.Hash256, i uint64, pass uint32) uint64 {
	return derivedIndex(seed, i, pass, 0x01)
}

func derivedIndex(seed primitives.Hash256, i uint64, pass uint32, which byte) uint64 {
	if i == 0 {
		return 0
	}
	h := primitives.H(primitives.TagIdx, seed[:], primitives.LE64(i), primitives.LE32(pass), []byte{which})
	return binary.LittleEndian.Uint64(h[0:8]) % i
}

// LabelUpdate computes the next label in the recurrence from its
// predecessor and its two pseudo-random dependencies.
func LabelUpdate(seed primitives.Hash256, i uint64, lim1, lj, lk primitives.Hash256) primitives.Hash256 {
	return primitives.H(primitives.TagLbl, seed[:], primitives.LE64(i), lim1[:], lj[:], lk[:])
}

// ChalIndex derives the t-th challenge index for a record, in the range
// [1, NLabels-1] (index 0, the dataset seed label, is never challenged
// since it has no predecessor to check against).
func ChalIndex(yEdgePrev primitives.Hash256, root primitives.Hash256, vrfY []byte, t uint32) uint64 {
	h := primitives.H(primitives.TagChal, yEdgePrev[:], root[:], vrfY, primitives.LE32(t))
	return 1 + binary.LittleEndian.Uint64(h[0:8])%(NLabels-1)
}

// PartRecTranscript computes the message that Sig must verify against:
// every record field except the seed (which Check re-derives from
// fields that are covered), the signature, and the challenge openings
// themselves (which are proven separately via Root).
func PartRecTranscript(version uint32, pk primitives.Pk32, vrfPk VrfPk32, slot uint64, yEdgePrev, alpha primitives.Hash256, vrfY []byte, root primitives.Hash256) primitives.Hash256 {
	return primitives.H(primitives.TagPartRec,
		primitives.LE32(version), pk[:], vrfPk[:], primitives.LE64(slot),
		yEdgePrev[:], alpha[:], vrfY, root[:])
}
