package tokenomics

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"sort"

	"github.com/obexchain/obex-core/primitives"
)

// MaxDrpWinners is the maximum number of lottery winners drawn per
// slot, independent of participation set size.
const MaxDrpWinners = 16

// drawCounter computes the t-th draw counter for slot s with edge ys.
func drawCounter(ys primitives.Hash256, slot uint64, t uint32) primitives.Hash256 {
	return primitives.H(primitives.TagRewardDraw, ys[:], primitives.LE64(slot), primitives.LE32(t))
}

// PickKUniqueIndices draws unique indices into a size-m participation
// set by repeatedly hashing an incrementing counter and reducing its
// first 8 bytes modulo m, skipping repeats, until K = min(MaxDrpWinners, m)
// distinct indices have been chosen.
func PickKUniqueIndices(ys primitives.Hash256, slot uint64, m int) []int {
	if m <= 0 {
		return nil
	}
	k := MaxDrpWinners
	if m < k {
		k = m
	}
	seen := make(map[int]bool, k)
	var out []int
	for t := uint32(0); len(out) < k; t++ {
		h := drawCounter(ys, slot, t)
		idx := int(binary.LittleEndian.Uint64(h[:8]) % uint64(m))
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

// RewardRank computes the sort key used to order a slot's lottery
// winners (and, more generally, any reward payout list) deterministically.
func RewardRank(ys primitives.Hash256, pk primitives.Pk32) primitives.Hash256 {
	return primitives.H(primitives.TagRewardRank, ys[:], pk[:])
}

// Payout is one participant's DRP reward for a slot.
type Payout struct {
	Pk     primitives.Pk32
	Amount *big.Int
}

// DistributeDRPForSlot splits pool between a baseline share paid to
// every participant and a lottery share paid to K winners drawn by
// PickKUniqueIndices, and returns every non-zero payout (baseline and
// lottery combined per participant), sorted by RewardRank, plus the
// amount burned to integer division remainder.
func DistributeDRPForSlot(ys primitives.Hash256, slot uint64, pool *big.Int, participants []primitives.Pk32) ([]Payout, *big.Int) {
	m := len(participants)
	if m == 0 {
		return nil, new(big.Int).Set(pool)
	}

	baseline := new(big.Int).Div(new(big.Int).Mul(pool, big.NewInt(20)), big.NewInt(100))
	lottery := new(big.Int).Sub(pool, baseline)

	baselinePerHead := new(big.Int).Div(baseline, big.NewInt(int64(m)))
	baselineBurn := new(big.Int).Sub(baseline, new(big.Int).Mul(baselinePerHead, big.NewInt(int64(m))))

	idxs := PickKUniqueIndices(ys, slot, m)
	k := len(idxs)
	lotteryPerWinner := big.NewInt(0)
	lotteryBurn := new(big.Int).Set(lottery)
	if k > 0 {
		lotteryPerWinner = new(big.Int).Div(lottery, big.NewInt(int64(k)))
		lotteryBurn = new(big.Int).Sub(lottery, new(big.Int).Mul(lotteryPerWinner, big.NewInt(int64(k))))
	}

	winners := make([]primitives.Pk32, k)
	for i, idx := range idxs {
		winners[i] = participants[idx]
	}

	totals := make(map[primitives.Pk32]*big.Int, m)
	for _, pk := range participants {
		totals[pk] = new(big.Int).Set(baselinePerHead)
	}
	for _, w := range winners {
		totals[w].Add(totals[w], lotteryPerWinner)
	}

	payouts := make([]Payout, 0, m)
	for _, pk := range participants {
		if totals[pk].Sign() > 0 {
			payouts = append(payouts, Payout{Pk: pk, Amount: totals[pk]})
		}
	}
	sort.Slice(payouts, func(i, j int) bool {
		a, b := RewardRank(ys, payouts[i].Pk), RewardRank(ys, payouts[j].Pk)
		return bytes.Compare(a[:], b[:]) < 0
	})

	burned := new(big.Int).Add(baselineBurn, lotteryBurn)
	return payouts, burned
}
