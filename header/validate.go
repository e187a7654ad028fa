package header

import "github.com/obexchain/obex-core/primitives"

// ValidateErr enumerates every way a header can fail validation, in the
// exact order Validate tests them.
type ValidateErr int

const (
	ValidateErrNone ValidateErr = iota
	ErrBadParentLink
	ErrBadSlot
	ErrBeaconInvalid
	ErrTicketRootMismatch
	ErrPartRootMismatch
	ErrTxRootPrevMismatch
	ErrVersionMismatch
)

func (e ValidateErr) String() string {
	switch e {
	case ValidateErrNone:
		return "none"
	case ErrBadParentLink:
		return "bad parent link"
	case ErrBadSlot:
		return "bad slot"
	case ErrBeaconInvalid:
		return "beacon invalid"
	case ErrTicketRootMismatch:
		return "ticket root mismatch"
	case ErrPartRootMismatch:
		return "part root mismatch"
	case ErrTxRootPrevMismatch:
		return "tx root prev mismatch"
	case ErrVersionMismatch:
		return "version mismatch"
	default:
		return "unknown"
	}
}

func (e ValidateErr) Error() string { return "header: " + e.String() }

// Validate checks h against parent, the beacon, and the three root
// providers, testing conditions in the fixed order documented on
// ValidateErr and returning the first one that fails.
func Validate(h, parent *Header, beacon BeaconVerifier, tickets TicketRootProvider, parts PartRootProvider, txs TxRootProvider, expectedVersion uint32) ValidateErr {
	wantParentID := ID(parent)
	if !primitives.CtEqual(wantParentID, h.ParentID) {
		return ErrBadParentLink
	}

	if h.Slot != parent.Slot+1 {
		return ErrBadSlot
	}

	if len(h.VdfPi) > MaxPiLen || len(h.VdfEll) > MaxEllLen {
		return ErrBeaconInvalid
	}
	ok := beacon.Verify(BeaconInputs{
		ParentID:   h.ParentID,
		Slot:       h.Slot,
		SeedCommit: h.SeedCommit,
		VdfYCore:   h.VdfYCore,
		VdfYEdge:   h.VdfYEdge,
		VdfPi:      h.VdfPi,
		VdfEll:     h.VdfEll,
	})
	if !ok {
		return ErrBeaconInvalid
	}

	if !primitives.CtEqual(tickets.TicketRootAt(h.Slot), h.TicketRoot) {
		return ErrTicketRootMismatch
	}
	if !primitives.CtEqual(parts.PartRootAt(h.Slot), h.PartRoot) {
		return ErrPartRootMismatch
	}
	if !primitives.CtEqual(txs.TxRootAt(parent.Slot), h.TxRootPrev) {
		return ErrTxRootPrevMismatch
	}

	if h.ObexVersion != expectedVersion {
		return ErrVersionMismatch
	}

	return ValidateErrNone
}
