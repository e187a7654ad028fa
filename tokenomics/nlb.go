package tokenomics

import "math/big"

// NlbEpochSlots is the length of one Net Liquidity Band epoch.
const NlbEpochSlots uint64 = 10_000

const feeRouteDen uint64 = 10_000

var (
	obx = big.NewInt(100_000_000) // 1 OBX in μOBX

	threshold500k = new(big.Int).Mul(big.NewInt(500_000), obx)
	threshold400k = new(big.Int).Mul(big.NewInt(400_000), obx)
	threshold300k = new(big.Int).Mul(big.NewInt(300_000), obx)
	threshold200k = new(big.Int).Mul(big.NewInt(200_000), obx)
)

// BurnPercent is the step function mapping effective supply (in μOBX)
// to the epoch's burn percentage.
func BurnPercent(effectiveSupply *big.Int) uint64 {
	switch {
	case effectiveSupply.Cmp(threshold500k) >= 0:
		return 20
	case effectiveSupply.Cmp(threshold400k) >= 0:
		return 15
	case effectiveSupply.Cmp(threshold300k) >= 0:
		return 10
	case effectiveSupply.Cmp(threshold200k) >= 0:
		return 5
	default:
		return 1
	}
}

// Splits is one epoch's stable (verifier, treasury, burn) percentage
// split; v+t+b always equals 100.
type Splits struct {
	VerifierPct uint64
	TreasuryPct uint64
	BurnPct     uint64
}

// SplitsFor computes the epoch split for effectiveSupply: treasury is
// fixed at 40%, burn is the step function, and the unused portion of
// the nominal 20% initial burn allowance is folded into the verifier
// share.
func SplitsFor(effectiveSupply *big.Int) Splits {
	b := BurnPercent(effectiveSupply)
	return Splits{VerifierPct: 60 - b, TreasuryPct: 40, BurnPct: b}
}

// NlbEpochState is the per-chain fee-routing ledger: the current
// epoch's stable split, the fractional accumulators for each share, the
// fee escrow they draw from, and the running total burned.
type NlbEpochState struct {
	EpochStart  uint64
	Splits      Splits
	AccV        *big.Int
	AccT        *big.Int
	AccB        *big.Int
	Escrow      *big.Int
	TotalBurned *big.Int
}

// NewNlbEpochState returns a fresh ledger starting its first epoch at
// slot 0 against effectiveSupply.
func NewNlbEpochState(effectiveSupply *big.Int) *NlbEpochState {
	return &NlbEpochState{
		Splits:      SplitsFor(effectiveSupply),
		AccV:        big.NewInt(0),
		AccT:        big.NewInt(0),
		AccB:        big.NewInt(0),
		Escrow:      big.NewInt(0),
		TotalBurned: big.NewInt(0),
	}
}

// CreditEscrow adds amount (a fee collected by the admission engine) to
// the fee escrow pool that ProcessTransfer releases from.
func (st *NlbEpochState) CreditEscrow(amount *big.Int) {
	st.Escrow.Add(st.Escrow, amount)
}

// RollEpochIfNeeded re-snapshots the split whenever slot crosses into a
// new NLB epoch.
func (st *NlbEpochState) RollEpochIfNeeded(slot uint64, effectiveSupply *big.Int) {
	epoch := slot / NlbEpochSlots
	if epoch == st.EpochStart && !st.Splits.isZero() {
		return
	}
	st.EpochStart = epoch
	st.Splits = SplitsFor(effectiveSupply)
}

func (s Splits) isZero() bool { return s.VerifierPct == 0 && s.TreasuryPct == 0 && s.BurnPct == 0 }

// feeNumDen computes the (fee_num, fee_den) pair for a transfer of
// amount, normalized to denominator 100. A nil amount is treated as
// zero.
func feeNumDen(amount *big.Int) (*big.Int, uint64) {
	if amount == nil {
		amount = big.NewInt(0)
	}
	threshold := big.NewInt(1000)
	if amount.Cmp(threshold) <= 0 {
		return new(big.Int).Mul(big.NewInt(10), big.NewInt(100)), 100
	}
	return new(big.Int).Set(amount), 100
}

// Release is the integer amount released to each of the three shares
// in one ProcessTransfer call.
type Release struct {
	Verifier *big.Int
	Treasury *big.Int
	Burn     *big.Int
}

// ProcessTransfer accumulates amount's fee contribution into the three
// share accumulators, releases their integer quotients (reduced, in
// order burn/treasury/verifier, if their sum would exceed escrow), and
// applies the releases against escrow in the order verifier → treasury
// → burn. A nil amount (no fees collected this slot) is treated as zero.
func (st *NlbEpochState) ProcessTransfer(amount *big.Int) Release {
	feeNum, _ := feeNumDen(amount)

	st.AccV.Add(st.AccV, new(big.Int).Mul(feeNum, big.NewInt(int64(st.Splits.VerifierPct))))
	st.AccT.Add(st.AccT, new(big.Int).Mul(feeNum, big.NewInt(int64(st.Splits.TreasuryPct))))
	st.AccB.Add(st.AccB, new(big.Int).Mul(feeNum, big.NewInt(int64(st.Splits.BurnPct))))

	den := big.NewInt(int64(feeRouteDen))
	relV := new(big.Int).Div(st.AccV, den)
	relT := new(big.Int).Div(st.AccT, den)
	relB := new(big.Int).Div(st.AccB, den)

	total := new(big.Int).Add(relV, new(big.Int).Add(relT, relB))
	if total.Cmp(st.Escrow) > 0 {
		over := new(big.Int).Sub(total, st.Escrow)
		over = reduceBy(&relB, over)
		over = reduceBy(&relT, over)
		reduceBy(&relV, over)
	}

	applied := new(big.Int).Add(relV, new(big.Int).Add(relT, relB))
	st.Escrow.Sub(st.Escrow, applied)
	st.TotalBurned.Add(st.TotalBurned, relB)

	st.AccV.Mod(st.AccV, den)
	st.AccT.Mod(st.AccT, den)
	st.AccB.Mod(st.AccB, den)

	return Release{Verifier: relV, Treasury: relT, Burn: relB}
}

// reduceBy subtracts up to `over` from *x (floored at zero) and returns
// the remaining unabsorbed excess.
func reduceBy(x **big.Int, over *big.Int) *big.Int {
	if over.Sign() <= 0 {
		return big.NewInt(0)
	}
	v := *x
	if v.Cmp(over) >= 0 {
		*x = new(big.Int).Sub(v, over)
		return big.NewInt(0)
	}
	rem := new(big.Int).Sub(over, v)
	*x = big.NewInt(0)
	return rem
}
