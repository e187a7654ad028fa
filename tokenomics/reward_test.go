package tokenomics

import (
	"math/big"
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/stretchr/testify/require"
)

func mkPk(b byte) primitives.Pk32 {
	var pk primitives.Pk32
	pk[0] = b
	return pk
}

func TestPickKUniqueIndices_Deterministic(t *testing.T) {
	ys := primitives.H("test.ys", []byte("x"))
	a := PickKUniqueIndices(ys, 42, 10)
	b := PickKUniqueIndices(ys, 42, 10)
	require.Equal(t, a, b)
}

func TestPickKUniqueIndices_UniqueAndBounded(t *testing.T) {
	ys := primitives.H("test.ys", []byte("y"))
	idxs := PickKUniqueIndices(ys, 7, 5)
	require.Len(t, idxs, 5)
	seen := map[int]bool{}
	for _, idx := range idxs {
		require.False(t, seen[idx])
		require.True(t, idx >= 0 && idx < 5)
		seen[idx] = true
	}
}

func TestPickKUniqueIndices_CapsAtMaxWinners(t *testing.T) {
	ys := primitives.H("test.ys", []byte("z"))
	idxs := PickKUniqueIndices(ys, 1, 1000)
	require.Len(t, idxs, MaxDrpWinners)
}

func TestPickKUniqueIndices_EmptySet(t *testing.T) {
	ys := primitives.H("test.ys", []byte("w"))
	require.Nil(t, PickKUniqueIndices(ys, 1, 0))
}

func TestDistributeDRPForSlot_ConservesOrBurnsPool(t *testing.T) {
	ys := primitives.H("test.ys", []byte("pool"))
	participants := []primitives.Pk32{mkPk(1), mkPk(2), mkPk(3), mkPk(4), mkPk(5)}
	pool := big.NewInt(1000)

	payouts, burned := DistributeDRPForSlot(ys, 3, pool, participants)
	require.NotEmpty(t, payouts)

	sum := new(big.Int).Set(burned)
	for _, p := range payouts {
		sum.Add(sum, p.Amount)
	}
	require.Equal(t, pool.String(), sum.String())
}

func TestDistributeDRPForSlot_SortedByRewardRank(t *testing.T) {
	ys := primitives.H("test.ys", []byte("sort"))
	participants := []primitives.Pk32{mkPk(1), mkPk(2), mkPk(3), mkPk(4), mkPk(5), mkPk(6)}
	payouts, _ := DistributeDRPForSlot(ys, 11, big.NewInt(10_000), participants)

	for i := 1; i < len(payouts); i++ {
		prev := RewardRank(ys, payouts[i-1].Pk)
		cur := RewardRank(ys, payouts[i].Pk)
		require.True(t, string(prev[:]) <= string(cur[:]))
	}
}

func TestDistributeDRPForSlot_EmptyParticipants(t *testing.T) {
	ys := primitives.H("test.ys", []byte("empty"))
	payouts, burned := DistributeDRPForSlot(ys, 0, big.NewInt(500), nil)
	require.Nil(t, payouts)
	require.Equal(t, "500", burned.String())
}
