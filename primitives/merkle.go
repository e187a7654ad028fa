package primitives

// MerkleLeaf hashes a single leaf payload under the merkle.leaf domain
// tag. Callers that need a sub-tagged leaf (e.g. "obex.part.leaf")
// prepend the 32-byte digest H(their tag) to payload before calling
// this, matching
// the convention used throughout the protocol's per-subsystem leaf
// encodings.
func MerkleLeaf(payload []byte) Hash256 {
	return H(TagMerkleLeaf, payload)
}

// MerkleNode hashes two child digests into their parent.
func MerkleNode(left, right Hash256) Hash256 {
	return H(TagMerkleNode, left[:], right[:])
}

// MerkleRoot computes the root of a binary Merkle tree over leaves,
// duplicating the last node at each level when the level's width is
// odd. An empty leaf set hashes to the fixed empty-tree root.
func MerkleRoot(leaves []Hash256) Hash256 {
	if len(leaves) == 0 {
		return H(TagMerkleEmpty)
	}
	level := make([]Hash256, len(leaves))
	copy(level, leaves)
	for len(level) > 1 {
		next := make([]Hash256, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, MerkleNode(level[i], level[i+1]))
			} else {
				next = append(next, MerkleNode(level[i], level[i]))
			}
		}
		level = next
	}
	return level[0]
}

// MerklePath is an authentication path from a leaf to the root: the
// sibling digest at each level, plus the leaf's index, whose bits
// select left (0) or right (1) at each level from the leaf upward.
type MerklePath struct {
	Siblings []Hash256
	Index    uint64
}

// VerifyLeaf recomputes the root obtained by walking path from leaf and
// compares it against root using a constant-time comparison.
func VerifyLeaf(root Hash256, leaf Hash256, path MerklePath) bool {
	cur := leaf
	idx := path.Index
	for _, sib := range path.Siblings {
		if idx&1 == 0 {
			cur = MerkleNode(cur, sib)
		} else {
			cur = MerkleNode(sib, cur)
		}
		idx >>= 1
	}
	return CtEqual(cur, root)
}

// BuildMerkleTree materializes every level of the tree over leaves and
// returns it as a slice of levels, level 0 being the leaves themselves
// and the last level holding only the root. It is used by provers that
// need to extract authentication paths for arbitrary leaf indices; the
// verification hot path never calls this, only VerifyLeaf.
func BuildMerkleTree(leaves []Hash256) [][]Hash256 {
	if len(leaves) == 0 {
		return [][]Hash256{{H(TagMerkleEmpty)}}
	}
	levels := [][]Hash256{append([]Hash256(nil), leaves...)}
	level := levels[0]
	for len(level) > 1 {
		next := make([]Hash256, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, MerkleNode(level[i], level[i+1]))
			} else {
				next = append(next, MerkleNode(level[i], level[i]))
			}
		}
		levels = append(levels, next)
		level = next
	}
	return levels
}

// PathForIndex extracts the authentication path for leaf index idx from
// a tree built by BuildMerkleTree.
func PathForIndex(levels [][]Hash256, idx uint64) MerklePath {
	path := MerklePath{Index: idx}
	cur := idx
	for lvl := 0; lvl < len(levels)-1; lvl++ {
		level := levels[lvl]
		var sibIdx uint64
		if cur&1 == 0 {
			sibIdx = cur + 1
		} else {
			sibIdx = cur - 1
		}
		if sibIdx >= uint64(len(level)) {
			sibIdx = cur
		}
		path.Siblings = append(path.Siblings, level[sibIdx])
		cur >>= 1
	}
	return path
}
