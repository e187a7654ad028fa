package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leafOf(s string) Hash256 { return MerkleLeaf([]byte(s)) }

func TestMerkleRoot_Empty(t *testing.T) {
	require.Equal(t, H(TagMerkleEmpty), MerkleRoot(nil))
}

func TestMerkleRoot_Single(t *testing.T) {
	l := leafOf("only")
	require.Equal(t, l, MerkleRoot([]Hash256{l}))
}

func TestMerkleRoot_OddDuplicatesLast(t *testing.T) {
	a, b, c := leafOf("a"), leafOf("b"), leafOf("c")
	got := MerkleRoot([]Hash256{a, b, c})
	want := MerkleNode(MerkleNode(a, b), MerkleNode(c, c))
	require.Equal(t, want, got)
}

func TestVerifyLeaf_RoundTrip(t *testing.T) {
	leaves := []Hash256{leafOf("a"), leafOf("b"), leafOf("c"), leafOf("d"), leafOf("e")}
	levels := BuildMerkleTree(leaves)
	root := levels[len(levels)-1][0]
	require.Equal(t, MerkleRoot(leaves), root)

	for i, l := range leaves {
		path := PathForIndex(levels, uint64(i))
		require.True(t, VerifyLeaf(root, l, path), "index %d", i)
	}
}

func TestVerifyLeaf_RejectsWrongLeaf(t *testing.T) {
	leaves := []Hash256{leafOf("a"), leafOf("b"), leafOf("c")}
	levels := BuildMerkleTree(leaves)
	root := levels[len(levels)-1][0]
	path := PathForIndex(levels, 0)
	require.False(t, VerifyLeaf(root, leafOf("not-a"), path))
}
