package admission

import (
	"math/big"
	"sort"

	"github.com/obexchain/obex-core/primitives"
	"github.com/spacemeshos/ed25519"
)

// AdmitErr enumerates every way AdmitSingle can reject a transaction,
// in the exact order AdmitSingle tests them.
type AdmitErr int

const (
	AdmitErrNone AdmitErr = iota
	ErrBindMismatch
	ErrAmountTooSmall
	ErrFeeMismatch
	ErrBadSig
	ErrNonceMismatch
	ErrInsufficientFunds
)

// MinTransferUobx is the smallest amount a transfer may move.
const MinTransferUobx uint64 = 10

func (e AdmitErr) String() string {
	switch e {
	case AdmitErrNone:
		return "none"
	case ErrBindMismatch:
		return "slot/beacon binding mismatch"
	case ErrAmountTooSmall:
		return "amount too small"
	case ErrFeeMismatch:
		return "fee mismatch"
	case ErrBadSig:
		return "signature invalid"
	case ErrNonceMismatch:
		return "nonce mismatch"
	case ErrInsufficientFunds:
		return "insufficient funds"
	default:
		return "unknown"
	}
}

func (e AdmitErr) Error() string { return "admission: " + e.String() }

// AdmitSingle checks tx/sig against slot and the slot's beacon binding
// yBind, and if it passes, mutates state: debiting sender's balance by
// amount+fee, advancing its nonce, and recording a TicketRecord under
// AdmittedBySlot[slot]. Returns the resulting record on acceptance.
func AdmitSingle(tx *TxBodyV1, sig primitives.Sig64, slot uint64, yBind primitives.Hash256, state *State) (*TicketRecord, AdmitErr) {
	if tx.SBind != slot || !primitives.CtEqual(tx.YBind, yBind) {
		return nil, ErrBindMismatch
	}

	if tx.AmountU == nil || tx.AmountU.Cmp(new(big.Int).SetUint64(MinTransferUobx)) < 0 {
		return nil, ErrAmountTooSmall
	}

	if tx.FeeU == nil {
		return nil, ErrFeeMismatch
	}
	wantFee := FeeIntUobx(tx.AmountU)
	if tx.FeeU.Cmp(wantFee) != 0 {
		return nil, ErrFeeMismatch
	}

	msg := SigMessage(tx)
	if !ed25519.Verify(ed25519.PublicKey(tx.Sender[:]), msg[:], sig[:]) {
		return nil, ErrBadSig
	}

	wantNonce := state.Nonces[tx.Sender]
	if tx.Nonce != wantNonce {
		return nil, ErrNonceMismatch
	}

	total := new(big.Int).Add(tx.AmountU, tx.FeeU)
	if state.balanceOf(tx.Sender).Cmp(total) < 0 {
		return nil, ErrInsufficientFunds
	}

	state.Spendable[tx.Sender] = new(big.Int).Sub(state.balanceOf(tx.Sender), total)
	state.Nonces[tx.Sender] = tx.Nonce + 1

	txid := TxID(tx)
	commit := Commit(tx)
	rec := &TicketRecord{
		TicketID:   primitives.H(primitives.TagTicketID, txid[:], primitives.LE64(slot)),
		TxID:       txid,
		Sender:     tx.Sender,
		Nonce:      tx.Nonce,
		AmountU:    new(big.Int).Set(tx.AmountU),
		FeeU:       new(big.Int).Set(tx.FeeU),
		SAdmit:     slot,
		SExec:      slot,
		CommitHash: commit,
	}
	state.AdmittedBySlot[slot] = append(state.AdmittedBySlot[slot], rec)
	return rec, AdmitErrNone
}

// SignedTx pairs a transaction body with its signature, the unit batch
// AdmitSlotCanonical consumes.
type SignedTx struct {
	Body *TxBodyV1
	Sig  primitives.Sig64
}

// AdmitSlotCanonical admits every transaction in txs against slot and
// yPrev, in the order given, and returns the resulting tickets in
// admission order. Rejected transactions are silently skipped: admission
// is a filter, not a batch that fails atomically.
func AdmitSlotCanonical(slot uint64, yPrev primitives.Hash256, txs []SignedTx, state *State) []*TicketRecord {
	var out []*TicketRecord
	for _, stx := range txs {
		rec, errCode := AdmitSingle(stx.Body, stx.Sig, slot, yPrev, state)
		if errCode == AdmitErrNone {
			out = append(out, rec)
		}
	}
	return out
}

// BuildTicketRootForSlot reads the tickets admitted in AdmittedBySlot
// at slot, sorts them by TxID for a canonical leaf order, and returns
// the sorted leaf list alongside the Merkle root committing to it.
func BuildTicketRootForSlot(slot uint64, state *State) ([]primitives.Hash256, primitives.Hash256) {
	recs := append([]*TicketRecord(nil), state.AdmittedBySlot[slot]...)
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].TxID, recs[j].TxID
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	leaves := make([]primitives.Hash256, len(recs))
	for i, r := range recs {
		leaves[i] = primitives.MerkleLeaf(EncTicketLeaf(r))
	}
	return leaves, primitives.MerkleRoot(leaves)
}

// BuildTxRootForSlot builds the tx root committed as the next header's
// txroot_prev: the Merkle root over the sorted-by-txid set of bare
// transaction IDs admitted at slot, each leaf-encoded via EncTxIDLeaf.
func BuildTxRootForSlot(slot uint64, state *State) ([]primitives.Hash256, primitives.Hash256) {
	recs := append([]*TicketRecord(nil), state.AdmittedBySlot[slot]...)
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].TxID, recs[j].TxID
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	leaves := make([]primitives.Hash256, len(recs))
	for i, r := range recs {
		leaves[i] = primitives.MerkleLeaf(EncTxIDLeaf(r.TxID))
	}
	return leaves, primitives.MerkleRoot(leaves)
}
