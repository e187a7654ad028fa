package tokenomics

import (
	"math/big"

	"github.com/obexchain/obex-core/primitives"
)

// SettleSlot runs one slot's full α-T settlement: it mints this slot's
// emission, credits escrow with the fees admission collected, releases
// the NLB-routed shares, distributes the DRP reward pool to
// participants, and returns the resulting system transactions in
// canonical order.
func SettleSlot(
	slot uint64,
	ys primitives.Hash256,
	emission *EmissionState,
	nlb *NlbEpochState,
	feesCollected *big.Int,
	drpPool *big.Int,
	participants []primitives.Pk32,
	effectiveSupply *big.Int,
) []*SysTx {
	var txs []*SysTx

	minted := emission.OnSlotEmission(slot)
	if minted.Sign() > 0 {
		txs = append(txs, &SysTx{Kind: KindEmissionCredit, Slot: slot, Amount: minted.ToBig()})
	}

	if feesCollected != nil && feesCollected.Sign() > 0 {
		nlb.CreditEscrow(feesCollected)
		txs = append(txs, &SysTx{Kind: KindEscrowCredit, Slot: slot, Amount: new(big.Int).Set(feesCollected)})
	}

	nlb.RollEpochIfNeeded(slot, effectiveSupply)
	rel := nlb.ProcessTransfer(feesCollected)
	if rel.Verifier.Sign() > 0 {
		txs = append(txs, &SysTx{Kind: KindVerifierCredit, Slot: slot, Amount: rel.Verifier})
	}
	if rel.Treasury.Sign() > 0 {
		txs = append(txs, &SysTx{Kind: KindTreasuryCredit, Slot: slot, Amount: rel.Treasury})
	}
	if rel.Burn.Sign() > 0 {
		txs = append(txs, &SysTx{Kind: KindBurn, Slot: slot, Amount: rel.Burn})
	}

	if drpPool != nil && drpPool.Sign() > 0 {
		payouts, burned := DistributeDRPForSlot(ys, slot, drpPool, participants)
		for _, p := range payouts {
			txs = append(txs, &SysTx{
				Kind:          KindRewardPayout,
				Slot:          slot,
				Pk:            p.Pk,
				Amount:        p.Amount,
				RewardRankKey: RewardRank(ys, p.Pk),
			})
		}
		if burned.Sign() > 0 {
			txs = append(txs, &SysTx{Kind: KindBurn, Slot: slot, Amount: burned})
		}
	}

	return CanonicalOrder(txs)
}
