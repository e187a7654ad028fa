package participation

import "github.com/obexchain/obex-core/primitives"

// Dataset is a fully materialized label array for one seed. Building it
// is RAM-hard by design (NLabels * 32 bytes, currently 512 MiB) and is
// never on the verification hot path: verifiers only ever consume the
// Q succinct openings in a Record, never the dataset itself.
type Dataset struct {
	Seed   primitives.Hash256
	Labels []primitives.Hash256
}

// BuildDataset runs the full Passes-pass label recurrence from seed and
// returns the finished dataset along with its Merkle root. It exists
// for fixture/prover tooling and the smoke-test harness; production
// verification never calls it.
func BuildDataset(seed primitives.Hash256) (*Dataset, primitives.Hash256) {
	labels := buildLabels(seed, NLabels, Passes)
	leaves := leafHashes(labels)
	root := primitives.MerkleRoot(leaves)
	return &Dataset{Seed: seed, Labels: labels}, root
}

// buildLabels runs the n-label, passes-pass recurrence from seed. Pass 0
// bootstraps the array sequentially: since no prior pass exists, each
// label's j/k dependencies (always < i) are read from values this same
// pass already wrote. Every later pass double-buffers: it reads i-1, j,
// and k entirely from the complete, immutable array the previous pass
// finished, and writes into a fresh array, so each pass genuinely
// depends on the full state of the one before it instead of collapsing
// into a single effective pass. n and passes are parameters (rather
// than always NLabels/Passes) so tests can exercise the recurrence at a
// size far smaller than the production 512 MiB dataset.
func buildLabels(seed primitives.Hash256, n uint64, passes int) []primitives.Hash256 {
	cur := make([]primitives.Hash256, n)
	cur[0] = Label0(seed)
	for i := uint64(1); i < n; i++ {
		j := IdxJ(seed, i, 0)
		k := IdxK(seed, i, 0)
		cur[i] = LabelUpdate(seed, i, cur[i-1], cur[j], cur[k])
	}
	for p := 1; p < passes; p++ {
		prev := cur
		next := make([]primitives.Hash256, n)
		next[0] = prev[0]
		for i := uint64(1); i < n; i++ {
			j := IdxJ(seed, i, uint32(p))
			k := IdxK(seed, i, uint32(p))
			next[i] = LabelUpdate(seed, i, prev[i-1], prev[j], prev[k])
		}
		cur = next
	}
	return cur
}

// leafHashes wraps each label in the merkle.leaf domain tag, matching
// how Check re-derives the leaf a Merkle path authenticates.
func leafHashes(labels []primitives.Hash256) []primitives.Hash256 {
	out := make([]primitives.Hash256, len(labels))
	for i, l := range labels {
		out[i] = primitives.MerkleLeaf(l[:])
	}
	return out
}

// MerkleLevels builds the full leaf-hashed Merkle tree over ds.Labels,
// for provers that need to extract authentication paths via
// OpenChallenge.
func MerkleLevels(ds *Dataset) [][]primitives.Hash256 {
	return primitives.BuildMerkleTree(leafHashes(ds.Labels))
}

// OpenChallenge produces the ChallengeOpen for label index idx against
// a fully-built Merkle tree of ds.Labels (as returned by
// MerkleLevels), using the final pass's dependency indices (mirroring
// what Check re-derives).
func OpenChallenge(ds *Dataset, levels [][]primitives.Hash256, idx uint64) ChallengeOpen {
	j := IdxJ(ds.Seed, idx, uint32(lastPass))
	k := IdxK(ds.Seed, idx, uint32(lastPass))
	return ChallengeOpen{
		Idx:  idx,
		Li:   ds.Labels[idx],
		Pi:   MerklePathLite{Siblings: primitives.PathForIndex(levels, idx).Siblings},
		Lim1: ds.Labels[idx-1],
		Pim1: MerklePathLite{Siblings: primitives.PathForIndex(levels, idx-1).Siblings},
		Lj:   ds.Labels[j],
		Pj:   MerklePathLite{Siblings: primitives.PathForIndex(levels, j).Siblings},
		Lk:   ds.Labels[k],
		Pk:   MerklePathLite{Siblings: primitives.PathForIndex(levels, k).Siblings},
	}
}
