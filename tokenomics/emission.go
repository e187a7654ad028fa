// Package tokenomics implements the OBEX.α-T engine: the slot-by-slot
// emission schedule, NLB epoch-based fee routing, the deterministic
// reward lottery, and the canonical system-transaction encoding and
// ordering that a header's tx root ultimately commits to.
package tokenomics

import "github.com/holiman/uint256"

// TotalSupplyUobx is the fixed total emission cap: 1,000,000 OBX at
// 10^8 μOBX/OBX.
var TotalSupplyUobx = uint256.NewInt(100_000_000_000_000) // 10^14

// SlotSeconds, SecondsPerYear, and the derived slot/halving constants
// fix the emission clock. A deployment that runs a different slot
// duration must recompute SlotsPerYear accordingly; the emission
// algorithm itself is independent of the concrete value.
const (
	SlotSeconds    = 6
	SecondsPerYear = 365 * 24 * 3600
	SlotsPerYear   = SecondsPerYear / SlotSeconds // 5,256,000

	NHalvings       = 20
	SlotsPerHalving = 5 * SlotsPerYear // 26,280,000

	LastEmissionSlot = SlotsPerYear * 100 // 525,600,000
)

// EmissionState is the per-chain singleton tracking cumulative emission
// and the fractional remainder accumulator between slots. The
// accumulator needs 256-bit arithmetic because R0_NUM (TotalSupply ·
// 2^(N-1)) overflows 64 bits.
type EmissionState struct {
	Emitted *uint256.Int
	Acc     *uint256.Int
}

// NewEmissionState returns the zero emission state.
func NewEmissionState() *EmissionState {
	return &EmissionState{Emitted: uint256.NewInt(0), Acc: uint256.NewInt(0)}
}

// r0Num returns TOTAL_SUPPLY * 2^(N-1).
func r0Num() *uint256.Int {
	n := new(uint256.Int).Set(TotalSupplyUobx)
	return n.Lsh(n, NHalvings-1)
}

// r0Den returns SLOTS_PER_HALVING * (2^N - 1) * 2^p for halving period p.
func r0Den(p uint64) *uint256.Int {
	twoN := new(uint256.Int).Lsh(uint256.NewInt(1), NHalvings)
	twoNm1 := new(uint256.Int).Sub(twoN, uint256.NewInt(1))
	den := new(uint256.Int).Mul(uint256.NewInt(SlotsPerHalving), twoNm1)
	return den.Lsh(den, uint(p))
}

// OnSlotEmission advances the emission schedule by one slot and returns
// the integer payout minted this slot. It caps the payout at the
// remaining unminted supply and, at the terminal emission slot, flushes
// any residual remaining supply so cumulative emission lands exactly on
// TotalSupplyUobx.
func (s *EmissionState) OnSlotEmission(slot uint64) *uint256.Int {
	remaining := new(uint256.Int).Sub(TotalSupplyUobx, s.Emitted)
	if remaining.IsZero() {
		return uint256.NewInt(0)
	}

	if slot >= LastEmissionSlot {
		s.Emitted.Add(s.Emitted, remaining)
		s.Acc.Clear()
		return remaining
	}

	p := slot / SlotsPerHalving
	if p >= NHalvings {
		p = NHalvings - 1
	}
	den := r0Den(p)

	s.Acc.Add(s.Acc, r0Num())
	payout := new(uint256.Int).Div(s.Acc, den)
	used := new(uint256.Int).Mul(payout, den)
	s.Acc.Sub(s.Acc, used)

	if payout.Gt(remaining) {
		payout.Set(remaining)
	}
	s.Emitted.Add(s.Emitted, payout)
	return payout
}
