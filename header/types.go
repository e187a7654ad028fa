// Package header implements the OBEX.α-II header engine: the header
// identity hash, the canonical header codec, and the ordered header
// validator that chains a child header to its parent via a beacon and
// a set of root-provider capabilities.
package header

import "github.com/obexchain/obex-core/primitives"

// Version is the header format version this package produces and
// validates.
const Version uint32 = 2

// MaxPiLen and MaxEllLen bound the VDF proof/auxiliary fields so that a
// header can never force an unbounded-size beacon verification.
const (
	MaxPiLen  = 1 << 20
	MaxEllLen = 1 << 16
)

// Header is one slot's consensus header: the parent link, the VDF-based
// slot beacon output, and the three roots (tickets admitted this slot,
// participants this slot, and the transaction root carried over from
// the previous slot).
type Header struct {
	ParentID    primitives.Hash256
	Slot        uint64
	ObexVersion uint32

	SeedCommit primitives.Hash256
	VdfYCore   primitives.Hash256
	VdfYEdge   primitives.Hash256
	VdfPi      []byte
	VdfEll     []byte

	TicketRoot  primitives.Hash256
	PartRoot    primitives.Hash256
	TxRootPrev  primitives.Hash256
}

// ID computes the header's identity hash over its field values (never
// over its transport bytes — Serialize/Deserialize is a separate,
// unrelated encoding used only for wire transfer).
func ID(h *Header) primitives.Hash256 {
	return primitives.H(primitives.TagHeaderID,
		h.ParentID[:],
		primitives.LE64(h.Slot),
		primitives.LE32(h.ObexVersion),
		h.SeedCommit[:],
		h.VdfYCore[:],
		h.VdfYEdge[:],
		primitives.LE32(uint32(len(h.VdfPi))), h.VdfPi,
		primitives.LE32(uint32(len(h.VdfEll))), h.VdfEll,
		h.TicketRoot[:],
		h.PartRoot[:],
		h.TxRootPrev[:],
	)
}

// BeaconInputs is the set of fields a BeaconVerifier checks against a
// slot's VDF output.
type BeaconInputs struct {
	ParentID   primitives.Hash256
	Slot       uint64
	SeedCommit primitives.Hash256
	VdfYCore   primitives.Hash256
	VdfYEdge   primitives.Hash256
	VdfPi      []byte
	VdfEll     []byte
}

// BeaconVerifier checks that a slot's VDF-derived beacon fields are
// self-consistent. It is a capability injected from outside this
// package: the header engine has no opinion about which VDF
// construction backs it.
type BeaconVerifier interface {
	Verify(in BeaconInputs) bool
}

// TicketRootProvider answers what the admission engine's ticket root
// was for a given slot.
type TicketRootProvider interface {
	TicketRootAt(slot uint64) primitives.Hash256
}

// PartRootProvider answers what the participation engine's commitment
// root was for a given slot.
type PartRootProvider interface {
	PartRootAt(slot uint64) primitives.Hash256
}

// TxRootProvider answers what the transaction root was at the end of a
// given slot (consumed as "previous slot's" root by the next header).
type TxRootProvider interface {
	TxRootAt(slot uint64) primitives.Hash256
}
