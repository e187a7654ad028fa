package primitives

import (
	"encoding/binary"
	"errors"
	"math/big"
)

// ErrShort is returned by decoders when the input is truncated.
var ErrShort = errors.New("primitives: short buffer")

// PutLE64 appends x to dst as 8 little-endian bytes.
func PutLE64(dst []byte, x uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	return append(dst, b[:]...)
}

// PutLE32 appends x to dst as 4 little-endian bytes.
func PutLE32(dst []byte, x uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], x)
	return append(dst, b[:]...)
}

// LE64 returns x encoded as 8 little-endian bytes.
func LE64(x uint64) []byte { return PutLE64(nil, x) }

// LE32 returns x encoded as 4 little-endian bytes.
func LE32(x uint32) []byte { return PutLE32(nil, x) }

// LE128 returns the low 128 bits of x encoded as 16 little-endian
// bytes, used for amount/fee fields sized in micro-OBX.
func LE128(x *big.Int) []byte {
	out := make([]byte, 16)
	b := x.Bytes() // big-endian
	for i := 0; i < len(b) && i < 16; i++ {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// ReadU32 decodes a little-endian uint32 at the start of src and
// returns the value plus the remaining bytes.
func ReadU32(src []byte) (uint32, []byte, error) {
	if len(src) < 4 {
		return 0, nil, ErrShort
	}
	return binary.LittleEndian.Uint32(src), src[4:], nil
}

// ReadU64 decodes a little-endian uint64 at the start of src and
// returns the value plus the remaining bytes.
func ReadU64(src []byte) (uint64, []byte, error) {
	if len(src) < 8 {
		return 0, nil, ErrShort
	}
	return binary.LittleEndian.Uint64(src), src[8:], nil
}

// ReadHash consumes the next 32 bytes of src as a Hash256.
func ReadHash(src []byte) (Hash256, []byte, error) {
	var h Hash256
	if len(src) < 32 {
		return h, nil, ErrShort
	}
	copy(h[:], src[:32])
	return h, src[32:], nil
}

// ReadPk32 consumes the next 32 bytes of src as a Pk32.
func ReadPk32(src []byte) (Pk32, []byte, error) {
	var pk Pk32
	if len(src) < 32 {
		return pk, nil, ErrShort
	}
	copy(pk[:], src[:32])
	return pk, src[32:], nil
}

// ReadSig64 consumes the next 64 bytes of src as a Sig64.
func ReadSig64(src []byte) (Sig64, []byte, error) {
	var sig Sig64
	if len(src) < 64 {
		return sig, nil, ErrShort
	}
	copy(sig[:], src[:64])
	return sig, src[64:], nil
}

// ReadBytes consumes exactly n bytes from src.
func ReadBytes(src []byte, n int) ([]byte, []byte, error) {
	if len(src) < n {
		return nil, nil, ErrShort
	}
	out := make([]byte, n)
	copy(out, src[:n])
	return out, src[n:], nil
}

// U128FromLE decodes a 16-byte little-endian buffer into a *big.Int.
func U128FromLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}
