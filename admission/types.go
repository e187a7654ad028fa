// Package admission implements the OBEX.α-III admission engine: the
// transaction body format, the per-transaction admission gate, and the
// canonical per-slot batch admission that produces the ticket set a
// header commits to.
package admission

import (
	"math/big"

	"github.com/obexchain/obex-core/primitives"
)

// AccessEntry names one key a transaction declares it touches, and
// whether that touch is a write. The access list exists so that
// execution layers built on top of this admission engine can schedule
// non-conflicting transactions in parallel; the admission engine itself
// never inspects the keys, it only commits to the list.
type AccessEntry struct {
	Key   primitives.Hash256
	Write bool
}

// AccessList is the ordered list of access entries a transaction
// declares.
type AccessList struct {
	Entries []AccessEntry
}

// Encode returns al's canonical byte encoding, embedded inline in a
// transaction body: the tx.access domain tag's digest followed by an
// entry count and each entry's key and write flag.
func (al AccessList) Encode() []byte {
	prefix := primitives.H(primitives.TagTxAccess)
	buf := make([]byte, 0, 32+4+len(al.Entries)*33)
	buf = append(buf, prefix[:]...)
	buf = primitives.PutLE32(buf, uint32(len(al.Entries)))
	for _, e := range al.Entries {
		flag := byte(0)
		if e.Write {
			flag = 1
		}
		buf = append(buf, e.Key[:]...)
		buf = append(buf, flag)
	}
	return buf
}

// TxBodyV1 is the canonical transaction body format admitted by this
// engine: a value transfer from Sender to Recipient, bound to a
// specific slot's beacon output via SBind/YBind so a signed body can
// never be replayed into a different slot than the one it was signed
// for.
type TxBodyV1 struct {
	Sender    primitives.Pk32
	Recipient primitives.Pk32
	Nonce     uint64
	AmountU   *big.Int // micro-OBX, fits in 128 bits
	FeeU      *big.Int // micro-OBX, fits in 128 bits
	SBind     uint64   // slot this body is authorized for
	YBind     primitives.Hash256
	Access    AccessList
	Memo      []byte
}

// BodyBytes returns tx's canonical body encoding: the tx.body.v1
// domain tag's digest followed by the raw concatenation of every field
// except the signature, in wire order. This is both the transport
// encoding of the body and the single input hashed to derive txid,
// tx_commit, and the signing message, so all three agree on exactly
// what bytes a signer committed to.
func BodyBytes(tx *TxBodyV1) []byte {
	prefix := primitives.H(primitives.TagTxBodyV1)
	buf := make([]byte, 0, 256+len(tx.Memo))
	buf = append(buf, prefix[:]...)
	buf = append(buf, tx.Sender[:]...)
	buf = append(buf, tx.Recipient[:]...)
	buf = primitives.PutLE64(buf, tx.Nonce)
	buf = append(buf, primitives.LE128(tx.AmountU)...)
	buf = append(buf, primitives.LE128(tx.FeeU)...)
	buf = primitives.PutLE64(buf, tx.SBind)
	buf = append(buf, tx.YBind[:]...)
	buf = append(buf, tx.Access.Encode()...)
	buf = primitives.PutLE32(buf, uint32(len(tx.Memo)))
	buf = append(buf, tx.Memo...)
	return buf
}

// TxID computes the transaction's content-addressed identifier.
func TxID(tx *TxBodyV1) primitives.Hash256 {
	return primitives.H(primitives.TagTxID, BodyBytes(tx))
}

// SigMessage computes the message a sender's Ed25519 signature must
// cover. Replay across admission attempts is prevented by s_bind/y_bind
// being part of the body itself, not by mixing a slot into this hash.
func SigMessage(tx *TxBodyV1) primitives.Hash256 {
	return primitives.H(primitives.TagTxSig, BodyBytes(tx))
}

// Commit computes the commitment hash recorded on a TicketRecord.
func Commit(tx *TxBodyV1) primitives.Hash256 {
	return primitives.H(primitives.TagTxCommit, BodyBytes(tx))
}

// TicketRecord is the durable record of one admitted transaction: its
// identity, the sender and nonce it consumed, the amount/fee it moved,
// the slot it was admitted in, the slot it is scheduled to execute in,
// and the commitment binding it to the signed body.
type TicketRecord struct {
	TicketID   primitives.Hash256
	TxID       primitives.Hash256
	Sender     primitives.Pk32
	Nonce      uint64
	AmountU    *big.Int
	FeeU       *big.Int
	SAdmit     uint64
	SExec      uint64
	CommitHash primitives.Hash256
}

// EncTicketLeaf returns the Merkle leaf payload for tr: the
// ticket-leaf domain tag's digest followed by the raw concatenation of
// every ticket field in order. The caller wraps this in
// primitives.MerkleLeaf before committing it to a tree; it is not
// itself a leaf digest.
func EncTicketLeaf(tr *TicketRecord) []byte {
	prefix := primitives.H(primitives.TagTicketLeaf)
	buf := make([]byte, 0, 32+32+32+32+8+16+16+8+8+32)
	buf = append(buf, prefix[:]...)
	buf = append(buf, tr.TicketID[:]...)
	buf = append(buf, tr.TxID[:]...)
	buf = append(buf, tr.Sender[:]...)
	buf = append(buf, primitives.LE64(tr.Nonce)...)
	buf = append(buf, primitives.LE128(tr.AmountU)...)
	buf = append(buf, primitives.LE128(tr.FeeU)...)
	buf = append(buf, primitives.LE64(tr.SAdmit)...)
	buf = append(buf, primitives.LE64(tr.SExec)...)
	buf = append(buf, tr.CommitHash[:]...)
	return buf
}

// EncTxIDLeaf returns the Merkle leaf payload for a bare txid, used to
// build the slot's tx root (the txroot_prev a header commits to for
// its child): the txid-leaf domain tag's digest followed by the txid.
func EncTxIDLeaf(txid primitives.Hash256) []byte {
	prefix := primitives.H(primitives.TagTxIDLeaf)
	buf := make([]byte, 0, 64)
	buf = append(buf, prefix[:]...)
	buf = append(buf, txid[:]...)
	return buf
}
