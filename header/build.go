package header

import "github.com/obexchain/obex-core/primitives"

// BeaconFields is the set of VDF-derived values a beacon produces for
// the slot being built; Build binds them into the new header alongside
// the roots fetched from the three provider capabilities.
type BeaconFields struct {
	SeedCommit primitives.Hash256
	VdfYCore   primitives.Hash256
	VdfYEdge   primitives.Hash256
	VdfPi      []byte
	VdfEll     []byte
}

// Build constructs the header for the slot following parent, using
// beacon for the VDF fields and the three providers for the roots. The
// ticket and participation roots are read at the new slot; the
// transaction root carried forward is read at the parent's slot.
func Build(parent *Header, beacon BeaconFields, tickets TicketRootProvider, parts PartRootProvider, txs TxRootProvider, obexVersion uint32) *Header {
	slot := parent.Slot + 1
	return &Header{
		ParentID:    ID(parent),
		Slot:        slot,
		ObexVersion: obexVersion,
		SeedCommit:  beacon.SeedCommit,
		VdfYCore:    beacon.VdfYCore,
		VdfYEdge:    beacon.VdfYEdge,
		VdfPi:       beacon.VdfPi,
		VdfEll:      beacon.VdfEll,
		TicketRoot:  tickets.TicketRootAt(slot),
		PartRoot:    parts.PartRootAt(slot),
		TxRootPrev:  txs.TxRootAt(parent.Slot),
	}
}
