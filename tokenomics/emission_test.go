package tokenomics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnSlotEmission_MonotoneAndBounded(t *testing.T) {
	es := NewEmissionState()
	prev := es.Emitted.Clone()
	for slot := uint64(0); slot < 1000; slot++ {
		es.OnSlotEmission(slot)
		require.True(t, es.Emitted.Cmp(prev) >= 0, "emission must never decrease")
		require.True(t, es.Emitted.Cmp(TotalSupplyUobx) <= 0, "emission must never exceed total supply")
		prev = es.Emitted.Clone()
	}
}

func TestOnSlotEmission_TerminalFlush(t *testing.T) {
	es := NewEmissionState()
	// Emitting directly at the terminal slot from a fresh state must
	// flush the entire remaining supply in one shot.
	payout := es.OnSlotEmission(LastEmissionSlot)
	require.Equal(t, TotalSupplyUobx.String(), payout.String())
	require.Equal(t, TotalSupplyUobx.String(), es.Emitted.String())
	require.True(t, es.Acc.IsZero())
}

func TestOnSlotEmission_ZeroAfterExhausted(t *testing.T) {
	es := NewEmissionState()
	es.OnSlotEmission(LastEmissionSlot)
	payout := es.OnSlotEmission(LastEmissionSlot + 1)
	require.True(t, payout.IsZero())
}
