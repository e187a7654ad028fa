package tokenomics

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/obexchain/obex-core/primitives"
)

// SysTxKind enumerates the system-transaction kinds a slot can emit.
// Values are fixed by the protocol: they double as the canonical
// within-slot sort key, so changing them changes consensus ordering.
type SysTxKind uint8

const (
	KindEscrowCredit   SysTxKind = 0
	KindEmissionCredit SysTxKind = 1
	KindVerifierCredit SysTxKind = 2
	KindTreasuryCredit SysTxKind = 3
	KindBurn           SysTxKind = 4
	KindRewardPayout   SysTxKind = 5
)

// SysTx is one system transaction credited or debited within a slot's
// settlement. RewardRankKey is populated only for KindRewardPayout
// entries; it is what CanonicalOrder sub-sorts them by.
type SysTx struct {
	Kind          SysTxKind
	Slot          uint64
	Pk            primitives.Pk32
	Amount        *big.Int
	RewardRankKey primitives.Hash256
}

// Encode serializes tx to its canonical wire form: the sys.tx domain
// tag's digest, the kind byte, the slot, the target key, and the
// 128-bit amount.
func Encode(tx *SysTx) []byte {
	prefix := primitives.H(primitives.TagSysTx)
	dst := make([]byte, 0, 32+1+8+32+16)
	dst = append(dst, prefix[:]...)
	dst = append(dst, byte(tx.Kind))
	dst = primitives.PutLE64(dst, tx.Slot)
	dst = append(dst, tx.Pk[:]...)
	dst = append(dst, primitives.LE128(tx.Amount)...)
	return dst
}

// CanonicalOrder sorts txs into the protocol's consensus order: by
// Kind ascending, with KindRewardPayout entries further sub-sorted by
// RewardRankKey ascending.
func CanonicalOrder(txs []*SysTx) []*SysTx {
	out := append([]*SysTx(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Kind == KindRewardPayout {
			return bytes.Compare(a.RewardRankKey[:], b.RewardRankKey[:]) < 0
		}
		return false
	})
	return out
}
