package participation

import (
	"bytes"
	"sort"

	"github.com/obexchain/obex-core/primitives"
)

// BuildParticipationSet verifies every submitted record against slot
// and parentID, keeps at most one record per signer (the first one
// that verifies, by iteration order of submissions), discards records
// that don't verify, and returns the sorted list of participating signer
// keys plus the Merkle root committing to them.
func BuildParticipationSet(slot uint64, parentID primitives.Hash256, submissions []*Record, vrf EcVrfVerifier) ([]primitives.Pk32, primitives.Hash256) {
	seen := make(map[primitives.Pk32]bool)
	var pks []primitives.Pk32

	for _, rec := range submissions {
		if rec.Slot != slot {
			continue
		}
		if seen[rec.PkEd25519] {
			continue
		}
		if Check(rec, slot, parentID, vrf) != ErrNone {
			continue
		}
		seen[rec.PkEd25519] = true
		pks = append(pks, rec.PkEd25519)
	}

	sort.Slice(pks, func(i, j int) bool {
		return bytes.Compare(pks[i][:], pks[j][:]) < 0
	})

	partLeafPrefix := primitives.H(primitives.TagPartLeaf)
	leaves := make([]primitives.Hash256, len(pks))
	for i, pk := range pks {
		payload := make([]byte, 0, 64)
		payload = append(payload, partLeafPrefix[:]...)
		payload = append(payload, pk[:]...)
		leaves[i] = primitives.MerkleLeaf(payload)
	}
	root := primitives.MerkleRoot(leaves)
	return pks, root
}
