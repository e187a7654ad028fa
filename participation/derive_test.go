package participation

import (
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/stretchr/testify/require"
)

func TestIdxJK_BoundedBelowI(t *testing.T) {
	var seed primitives.Hash256
	seed[0] = 7
	for i := uint64(1); i < 1000; i++ {
		j := IdxJ(seed, i, 2)
		k := IdxK(seed, i, 2)
		require.Less(t, j, i)
		require.Less(t, k, i)
	}
}

func TestIdxJK_ZeroAtZero(t *testing.T) {
	var seed primitives.Hash256
	require.Equal(t, uint64(0), IdxJ(seed, 0, 0))
	require.Equal(t, uint64(0), IdxK(seed, 0, 0))
}

func TestChalIndex_InBounds(t *testing.T) {
	var yPrev, root primitives.Hash256
	vrfY := make([]byte, VrfYBytes)
	for t32 := uint32(0); t32 < 200; t32++ {
		idx := ChalIndex(yPrev, root, vrfY, t32)
		require.GreaterOrEqual(t, idx, uint64(1))
		require.Less(t, idx, NLabels)
	}
}

func TestChalIndex_Deterministic(t *testing.T) {
	var yPrev, root primitives.Hash256
	vrfY := make([]byte, VrfYBytes)
	a := ChalIndex(yPrev, root, vrfY, 5)
	b := ChalIndex(yPrev, root, vrfY, 5)
	require.Equal(t, a, b)
}

func TestLabelUpdate_Deterministic(t *testing.T) {
	var seed, a, b, c primitives.Hash256
	l1 := LabelUpdate(seed, 3, a, b, c)
	l2 := LabelUpdate(seed, 3, a, b, c)
	require.Equal(t, l1, l2)
}
