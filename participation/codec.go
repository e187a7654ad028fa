package participation

import (
	"errors"

	"github.com/obexchain/obex-core/primitives"
)

// Codec errors. Decode returns ErrShort, ErrBadChallenges and
// ErrTrailing; Encode returns ErrBadVrfY, ErrBadVrfPi and
// ErrBadChallenges.
var (
	ErrShort          = errors.New("participation: short buffer")
	ErrTrailing       = errors.New("participation: trailing bytes")
	ErrBadLen         = errors.New("participation: bad length field")
	ErrBadVrfY        = errors.New("participation: vrf_y has wrong length")
	ErrBadVrfPi       = errors.New("participation: vrf_pi has wrong length")
	ErrBadChallenges  = errors.New("participation: wrong challenge count")
)

func encodePathLite(dst []byte, p MerklePathLite) []byte {
	dst = primitives.PutLE32(dst, uint32(len(p.Siblings)))
	for _, s := range p.Siblings {
		dst = append(dst, s[:]...)
	}
	return dst
}

func decodePathLite(src []byte) (MerklePathLite, []byte, error) {
	n, rest, err := primitives.ReadU32(src)
	if err != nil {
		return MerklePathLite{}, nil, ErrShort
	}
	p := MerklePathLite{Siblings: make([]primitives.Hash256, 0, n)}
	for i := uint32(0); i < n; i++ {
		var h primitives.Hash256
		h, rest, err = primitives.ReadHash(rest)
		if err != nil {
			return MerklePathLite{}, nil, ErrShort
		}
		p.Siblings = append(p.Siblings, h)
	}
	return p, rest, nil
}

func encodeChallenge(dst []byte, c ChallengeOpen) []byte {
	dst = primitives.PutLE64(dst, c.Idx)
	dst = append(dst, c.Li[:]...)
	dst = encodePathLite(dst, c.Pi)
	dst = append(dst, c.Lim1[:]...)
	dst = encodePathLite(dst, c.Pim1)
	dst = append(dst, c.Lj[:]...)
	dst = encodePathLite(dst, c.Pj)
	dst = append(dst, c.Lk[:]...)
	dst = encodePathLite(dst, c.Pk)
	return dst
}

func decodeChallenge(src []byte) (ChallengeOpen, []byte, error) {
	var c ChallengeOpen
	var err error
	if c.Idx, src, err = primitives.ReadU64(src); err != nil {
		return c, nil, ErrShort
	}
	if c.Li, src, err = primitives.ReadHash(src); err != nil {
		return c, nil, ErrShort
	}
	if c.Pi, src, err = decodePathLite(src); err != nil {
		return c, nil, err
	}
	if c.Lim1, src, err = primitives.ReadHash(src); err != nil {
		return c, nil, ErrShort
	}
	if c.Pim1, src, err = decodePathLite(src); err != nil {
		return c, nil, err
	}
	if c.Lj, src, err = primitives.ReadHash(src); err != nil {
		return c, nil, ErrShort
	}
	if c.Pj, src, err = decodePathLite(src); err != nil {
		return c, nil, err
	}
	if c.Lk, src, err = primitives.ReadHash(src); err != nil {
		return c, nil, ErrShort
	}
	if c.Pk, src, err = decodePathLite(src); err != nil {
		return c, nil, err
	}
	return c, src, nil
}

// Encode serializes rec to its canonical wire form: version, slot,
// signing/VRF keys, the alpha/seed/root commitments, the VRF
// output/proof, the Q challenge openings, and finally the signature.
// It validates vrf_y/vrf_pi lengths and the challenge count before
// writing anything.
func Encode(rec *Record) ([]byte, error) {
	if len(rec.VrfY) != VrfYBytes {
		return nil, ErrBadVrfY
	}
	if len(rec.VrfPi) != VrfPiBytes {
		return nil, ErrBadVrfPi
	}
	if len(rec.Challenges) != ChallengesQ {
		return nil, ErrBadChallenges
	}
	var dst []byte
	dst = primitives.PutLE32(dst, rec.Version)
	dst = primitives.PutLE64(dst, rec.Slot)
	dst = append(dst, rec.PkEd25519[:]...)
	dst = append(dst, rec.VrfPk[:]...)
	dst = append(dst, rec.YEdgePrev[:]...)
	dst = append(dst, rec.Alpha[:]...)
	dst = append(dst, rec.VrfY...)
	dst = append(dst, rec.VrfPi...)
	dst = append(dst, rec.Seed[:]...)
	dst = append(dst, rec.Root[:]...)
	dst = primitives.PutLE32(dst, uint32(len(rec.Challenges)))
	for _, c := range rec.Challenges {
		dst = encodeChallenge(dst, c)
	}
	dst = append(dst, rec.Sig[:]...)
	return dst, nil
}

// Decode parses src into a Record, rejecting truncated input, a wrong
// challenge count, or trailing bytes after the signature.
func Decode(src []byte) (*Record, error) {
	var rec Record
	var err error

	if rec.Version, src, err = primitives.ReadU32(src); err != nil {
		return nil, ErrShort
	}
	if rec.Slot, src, err = primitives.ReadU64(src); err != nil {
		return nil, ErrShort
	}
	if rec.PkEd25519, src, err = primitives.ReadPk32(src); err != nil {
		return nil, ErrShort
	}
	if rec.VrfPk, src, err = primitives.ReadPk32(src); err != nil {
		return nil, ErrShort
	}
	if rec.YEdgePrev, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if rec.Alpha, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if rec.VrfY, src, err = primitives.ReadBytes(src, VrfYBytes); err != nil {
		return nil, ErrShort
	}
	if rec.VrfPi, src, err = primitives.ReadBytes(src, VrfPiBytes); err != nil {
		return nil, ErrShort
	}
	if rec.Seed, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	if rec.Root, src, err = primitives.ReadHash(src); err != nil {
		return nil, ErrShort
	}
	var n uint32
	if n, src, err = primitives.ReadU32(src); err != nil {
		return nil, ErrShort
	}
	if n != ChallengesQ {
		return nil, ErrBadChallenges
	}
	rec.Challenges = make([]ChallengeOpen, 0, n)
	for i := uint32(0); i < n; i++ {
		var c ChallengeOpen
		c, src, err = decodeChallenge(src)
		if err != nil {
			return nil, err
		}
		rec.Challenges = append(rec.Challenges, c)
	}
	if rec.Sig, src, err = primitives.ReadSig64(src); err != nil {
		return nil, ErrShort
	}
	if len(src) != 0 {
		return nil, ErrTrailing
	}
	return &rec, nil
}
