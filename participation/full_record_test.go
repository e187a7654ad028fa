package participation

import (
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/spacemeshos/ed25519"
	"github.com/stretchr/testify/require"
)

// TestCheck_FullyValidRecord builds a real 512 MiB label dataset, opens
// every one of the Q challenges against its Merkle tree, and signs the
// resulting transcript with a real Ed25519 key, then asserts the
// resulting Record passes Check end to end. This is the only test in
// the package that exercises the success path through the full
// recurrence rather than a pre-built fixture; it is what ties
// buildLabels to the label equation Check verifies.
func TestCheck_FullyValidRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("long test: builds a full 512 MiB label dataset")
	}

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	var pk, vrfPk primitives.Pk32
	copy(pk[:], pub)
	copy(vrfPk[:], pub)

	const slot = 7
	var parentID, yEdgePrev primitives.Hash256
	parentID[0] = 0x11
	yEdgePrev[0] = 0x22

	vrf := ReferenceVRF{}
	alpha := Alpha(parentID, slot, yEdgePrev, vrfPk)
	vrfPi, vrfY := vrf.Prove(vrfPk, alpha)

	seed := Seed(yEdgePrev, pk, vrfY)
	ds, root := BuildDataset(seed)
	levels := MerkleLevels(ds)

	challenges := make([]ChallengeOpen, ChallengesQ)
	for t32 := uint32(0); t32 < ChallengesQ; t32++ {
		idx := ChalIndex(yEdgePrev, root, vrfY, t32)
		challenges[t32] = OpenChallenge(ds, levels, idx)
	}

	msg := PartRecTranscript(Version, pk, vrfPk, slot, yEdgePrev, alpha, vrfY, root)
	sig := ed25519.Sign(priv, msg[:])
	var sig64 primitives.Sig64
	copy(sig64[:], sig)

	rec := &Record{
		Version:    Version,
		Slot:       slot,
		PkEd25519:  pk,
		VrfPk:      vrfPk,
		YEdgePrev:  yEdgePrev,
		Alpha:      alpha,
		VrfY:       vrfY,
		VrfPi:      vrfPi,
		Seed:       seed,
		Root:       root,
		Challenges: challenges,
		Sig:        sig64,
	}

	require.Equal(t, ErrNone, Check(rec, slot, parentID, vrf))
}
