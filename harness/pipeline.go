package harness

import (
	"fmt"
	"math/big"

	"github.com/obexchain/obex-core/admission"
	"github.com/obexchain/obex-core/header"
	"github.com/obexchain/obex-core/primitives"
	"github.com/obexchain/obex-core/tokenomics"
)

// SlotResult is everything one RunSlot call produced: the new header,
// the tickets admitted into it, and the system transactions α-T
// settlement emitted for the slot.
type SlotResult struct {
	Header  *header.Header
	Tickets []*admission.TicketRecord
	SysTxs  []*tokenomics.SysTx
}

// Pipeline drives the full per-slot sequence — admit, build, validate,
// settle, advance — over one shared admission ledger and tokenomics
// state, the way a chain of slots actually accrues state across the
// network rather than each slot starting from scratch.
type Pipeline struct {
	Providers       *Providers
	State           *admission.State
	Emission        *tokenomics.EmissionState
	Nlb             *tokenomics.NlbEpochState
	Beacon          header.SlotSeedBeacon
	EffectiveSupply *big.Int
	Prev            *header.Header
}

// GenesisHeader returns the fixed genesis-style header every pipeline
// run starts from: slot 0, every root at its empty value.
func GenesisHeader() *header.Header {
	return &header.Header{
		ParentID:    primitives.GenesisParentID,
		Slot:        0,
		ObexVersion: header.Version,
		TicketRoot:  primitives.MerkleRoot(nil),
		PartRoot:    primitives.MerkleRoot(nil),
		TxRootPrev:  primitives.MerkleRoot(nil),
	}
}

// NewPipeline returns a fresh Pipeline over participants, rooted at
// GenesisHeader, with its NLB epoch split snapshotted against
// effectiveSupply.
func NewPipeline(participants []primitives.Pk32, effectiveSupply *big.Int) *Pipeline {
	state := admission.NewState()
	return &Pipeline{
		Providers:       NewProviders(participants, state),
		State:           state,
		Emission:        tokenomics.NewEmissionState(),
		Nlb:             tokenomics.NewNlbEpochState(effectiveSupply),
		EffectiveSupply: effectiveSupply,
		Prev:            GenesisHeader(),
	}
}

// RunSlot admits txs against the slot following p.Prev, builds and
// validates that slot's header, runs α-T settlement for it, and
// advances the pipeline to the new header. feesCollected and drpPool
// are the caller's accounting of this slot's fee escrow credit and
// reward pool; either may be nil for a slot with nothing to settle.
func (p *Pipeline) RunSlot(txs []admission.SignedTx, feesCollected, drpPool *big.Int) (*SlotResult, error) {
	slot := p.Prev.Slot + 1
	yBind := p.Prev.VdfYEdge

	tickets := admission.AdmitSlotCanonical(slot, yBind, txs, p.State)

	parentID := header.ID(p.Prev)
	yCore := header.YCoreFor(parentID, slot)
	beacon := header.BeaconFields{
		SeedCommit: header.SeedCommitFor(parentID, slot),
		VdfYCore:   yCore,
		VdfYEdge:   header.YEdgeFor(yCore),
	}

	h := header.Build(p.Prev, beacon, p.Providers, p.Providers, p.Providers, header.Version)

	if errCode := header.Validate(h, p.Prev, p.Beacon, p.Providers, p.Providers, p.Providers, header.Version); errCode != header.ValidateErrNone {
		return nil, fmt.Errorf("harness: slot %d header failed validation: %s", slot, errCode)
	}

	_, txRoot := admission.BuildTxRootForSlot(slot, p.State)
	p.Providers.SetTxRoot(slot, txRoot)

	sysTxs := tokenomics.SettleSlot(slot, yBind, p.Emission, p.Nlb, feesCollected, drpPool, p.Providers.PartPks, p.EffectiveSupply)

	p.Prev = h
	return &SlotResult{Header: h, Tickets: tickets, SysTxs: sysTxs}, nil
}
