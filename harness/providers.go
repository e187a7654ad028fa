// Package harness wires the admission, header, and tokenomics packages,
// plus a fixed participant set standing in for the participation
// engine's output, into a single multi-slot driver, the way
// an end-to-end pipeline test walks a prover through every stage of a
// proof rather than unit-testing each stage in isolation.
package harness

import (
	"sync"

	"github.com/obexchain/obex-core/admission"
	"github.com/obexchain/obex-core/primitives"
)

// Providers backs all three header root-provider capabilities
// (TicketRootProvider, PartRootProvider, TxRootProvider) from a single
// admission ledger and a fixed participant set, so a Pipeline has one
// object to hand to both header.Build and header.Validate every slot.
type Providers struct {
	PartPks []primitives.Pk32
	State   *admission.State

	mu      sync.Mutex
	txRoots map[uint64]primitives.Hash256
}

// NewProviders returns a Providers over state, committing to partPks
// as the fixed participation set for every slot.
func NewProviders(partPks []primitives.Pk32, state *admission.State) *Providers {
	return &Providers{PartPks: partPks, State: state, txRoots: make(map[uint64]primitives.Hash256)}
}

// TicketRootAt implements header.TicketRootProvider by reading whatever
// was admitted into state at slot.
func (p *Providers) TicketRootAt(slot uint64) primitives.Hash256 {
	_, root := admission.BuildTicketRootForSlot(slot, p.State)
	return root
}

// PartRootAt implements header.PartRootProvider. The harness treats its
// fixed participant set as already-verified for every slot, so it
// builds the commitment directly from the leaf encoding rather than
// running records through the full α-I verifier.
func (p *Providers) PartRootAt(uint64) primitives.Hash256 {
	partLeafPrefix := primitives.H(primitives.TagPartLeaf)
	leaves := make([]primitives.Hash256, len(p.PartPks))
	for i, pk := range p.PartPks {
		payload := make([]byte, 0, 64)
		payload = append(payload, partLeafPrefix[:]...)
		payload = append(payload, pk[:]...)
		leaves[i] = primitives.MerkleLeaf(payload)
	}
	return primitives.MerkleRoot(leaves)
}

// SetTxRoot records the tx root a slot committed, for TxRootAt to
// surface once the following slot's header asks for it.
func (p *Providers) SetTxRoot(slot uint64, root primitives.Hash256) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txRoots[slot] = root
}

// TxRootAt implements header.TxRootProvider. A slot with no recorded
// tx root (genesis, or a slot never settled) commits to the empty root.
func (p *Providers) TxRootAt(slot uint64) primitives.Hash256 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if root, ok := p.txRoots[slot]; ok {
		return root
	}
	return primitives.MerkleRoot(nil)
}
