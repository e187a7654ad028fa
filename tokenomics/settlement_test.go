package tokenomics

import (
	"math/big"
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/stretchr/testify/require"
)

func TestSettleSlot_EmissionAlwaysPresentAtGenesis(t *testing.T) {
	emission := NewEmissionState()
	nlb := NewNlbEpochState(big.NewInt(0))
	ys := primitives.H("test.settle", []byte("genesis"))

	txs := SettleSlot(0, ys, emission, nlb, big.NewInt(0), big.NewInt(0), nil, big.NewInt(0))
	require.Len(t, txs, 1)
	require.Equal(t, KindEmissionCredit, txs[0].Kind)
}

func TestSettleSlot_FeesRouteThroughEscrowAndNlb(t *testing.T) {
	emission := NewEmissionState()
	supply := new(big.Int).Mul(big.NewInt(600_000), obx)
	nlb := NewNlbEpochState(supply)
	ys := primitives.H("test.settle", []byte("fees"))

	txs := SettleSlot(1, ys, emission, nlb, big.NewInt(100_000), big.NewInt(0), nil, supply)

	var kinds []SysTxKind
	for _, tx := range txs {
		kinds = append(kinds, tx.Kind)
	}
	require.Contains(t, kinds, KindEscrowCredit)
	for i := 1; i < len(txs); i++ {
		require.True(t, txs[i-1].Kind <= txs[i].Kind)
	}
}

func TestSettleSlot_DrpPoolProducesRewardPayouts(t *testing.T) {
	emission := NewEmissionState()
	nlb := NewNlbEpochState(big.NewInt(0))
	ys := primitives.H("test.settle", []byte("drp"))

	participants := make([]primitives.Pk32, 4)
	for i := range participants {
		participants[i][0] = byte(i + 1)
	}

	txs := SettleSlot(2, ys, emission, nlb, big.NewInt(0), big.NewInt(4000), participants, big.NewInt(0))

	found := false
	var zero primitives.Hash256
	for _, tx := range txs {
		if tx.Kind == KindRewardPayout {
			found = true
			require.NotEqual(t, zero, tx.RewardRankKey)
		}
	}
	require.True(t, found)
}

func TestSettleSlot_NoFeesNoDrpOnlyEmission(t *testing.T) {
	emission := NewEmissionState()
	nlb := NewNlbEpochState(big.NewInt(0))
	ys := primitives.H("test.settle", []byte("bare"))

	txs := SettleSlot(5, ys, emission, nlb, nil, nil, nil, big.NewInt(0))
	require.Len(t, txs, 1)
	require.Equal(t, KindEmissionCredit, txs[0].Kind)
}
