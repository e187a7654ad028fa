package tokenomics

import (
	"math/big"
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/stretchr/testify/require"
)

func TestCanonicalOrder_ByKindAscending(t *testing.T) {
	txs := []*SysTx{
		{Kind: KindBurn, Amount: big.NewInt(1)},
		{Kind: KindEscrowCredit, Amount: big.NewInt(1)},
		{Kind: KindTreasuryCredit, Amount: big.NewInt(1)},
		{Kind: KindEmissionCredit, Amount: big.NewInt(1)},
		{Kind: KindVerifierCredit, Amount: big.NewInt(1)},
	}
	out := CanonicalOrder(txs)
	for i := 1; i < len(out); i++ {
		require.True(t, out[i-1].Kind <= out[i].Kind)
	}
	require.Equal(t, KindEscrowCredit, out[0].Kind)
}

func TestCanonicalOrder_RewardPayoutsSubSortedByRank(t *testing.T) {
	rankA := primitives.H("t", []byte("a"))
	rankB := primitives.H("t", []byte("b"))
	rankC := primitives.H("t", []byte("c"))

	txs := []*SysTx{
		{Kind: KindRewardPayout, RewardRankKey: rankC, Amount: big.NewInt(1)},
		{Kind: KindBurn, Amount: big.NewInt(1)},
		{Kind: KindRewardPayout, RewardRankKey: rankA, Amount: big.NewInt(1)},
		{Kind: KindRewardPayout, RewardRankKey: rankB, Amount: big.NewInt(1)},
	}
	out := CanonicalOrder(txs)

	require.Equal(t, KindBurn, out[0].Kind)
	var rewardKeys []primitives.Hash256
	for _, tx := range out {
		if tx.Kind == KindRewardPayout {
			rewardKeys = append(rewardKeys, tx.RewardRankKey)
		}
	}
	require.Len(t, rewardKeys, 3)
	for i := 1; i < len(rewardKeys); i++ {
		require.True(t, string(rewardKeys[i-1][:]) <= string(rewardKeys[i][:]))
	}
}

func TestCanonicalOrder_StableWithinEqualKeys(t *testing.T) {
	txs := []*SysTx{
		{Kind: KindBurn, Amount: big.NewInt(1)},
		{Kind: KindBurn, Amount: big.NewInt(2)},
		{Kind: KindBurn, Amount: big.NewInt(3)},
	}
	out := CanonicalOrder(txs)
	require.Equal(t, "1", out[0].Amount.String())
	require.Equal(t, "2", out[1].Amount.String())
	require.Equal(t, "3", out[2].Amount.String())
}

func TestEncode_FieldOrderAndLength(t *testing.T) {
	var pk primitives.Pk32
	pk[0] = 0xAB
	tx := &SysTx{Kind: KindVerifierCredit, Slot: 7, Pk: pk, Amount: big.NewInt(42)}
	enc := Encode(tx)

	require.Equal(t, 32+1+8+32+16, len(enc))
	require.Equal(t, byte(KindVerifierCredit), enc[32])
}
