package header

import (
	"errors"

	"github.com/obexchain/obex-core/primitives"
)

// Codec errors.
var (
	ErrShort    = errors.New("header: short buffer")
	ErrTrailing = errors.New("header: trailing bytes")
)

// Serialize encodes h to its transport wire form. This is distinct from
// ID: Serialize carries the same field values but in a layout meant for
// byte transfer, never for hashing.
func Serialize(h *Header) []byte {
	var dst []byte
	dst = append(dst, h.ParentID[:]...)
	dst = primitives.PutLE64(dst, h.Slot)
	dst = primitives.PutLE32(dst, h.ObexVersion)
	dst = append(dst, h.SeedCommit[:]...)
	dst = append(dst, h.VdfYCore[:]...)
	dst = append(dst, h.VdfYEdge[:]...)
	dst = primitives.PutLE32(dst, uint32(len(h.VdfPi)))
	dst = append(dst, h.VdfPi...)
	dst = primitives.PutLE32(dst, uint32(len(h.VdfEll)))
	dst = append(dst, h.VdfEll...)
	dst = append(dst, h.TicketRoot[:]...)
	dst = append(dst, h.PartRoot[:]...)
	dst = append(dst, h.TxRootPrev[:]...)
	return dst
}

// Deserialize parses src as produced by Serialize, rejecting truncated
// input and trailing bytes.
func Deserialize(src []byte) (*Header, error) {
	var h Header
	var err error

	if h.ParentID, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if h.Slot, src, err = primitives.ReadU64(src); err != nil {
		return nil, ErrShort
	}
	if h.ObexVersion, src, err = primitives.ReadU32(src); err != nil {
		return nil, ErrShort
	}
	if h.SeedCommit, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if h.VdfYCore, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if h.VdfYEdge, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	var piLen uint32
	if piLen, src, err = primitives.ReadU32(src); err != nil {
		return nil, ErrShort
	}
	if h.VdfPi, src, err = primitives.ReadBytes(src, int(piLen)); err != nil {
		return nil, ErrShort
	}
	var ellLen uint32
	if ellLen, src, err = primitives.ReadU32(src); err != nil {
		return nil, ErrShort
	}
	if h.VdfEll, src, err = primitives.ReadBytes(src, int(ellLen)); err != nil {
		return nil, ErrShort
	}
	if h.TicketRoot, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if h.PartRoot, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if h.TxRootPrev, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if len(src) != 0 {
		return nil, ErrTrailing
	}
	return &h, nil
}
