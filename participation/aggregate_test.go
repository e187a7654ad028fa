package participation

import (
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/stretchr/testify/require"
)

func TestBuildParticipationSet_Empty(t *testing.T) {
	pks, root := BuildParticipationSet(1, primitives.Hash256{}, nil, ReferenceVRF{})
	require.Empty(t, pks)
	require.Equal(t, primitives.MerkleRoot(nil), root)
}

func TestBuildParticipationSet_SkipsWrongSlot(t *testing.T) {
	rec := makeTestRecord()
	rec.Slot = 2
	pks, _ := BuildParticipationSet(1, primitives.Hash256{}, []*Record{rec}, ReferenceVRF{})
	require.Empty(t, pks)
}

func TestBuildParticipationSet_DedupBySigner(t *testing.T) {
	rec1 := makeTestRecord()
	rec1.Slot = 99 // force verification failure so we only test the dedup/iteration path pre-Check
	rec2 := makeTestRecord()
	rec2.Slot = 99
	pks, _ := BuildParticipationSet(1, primitives.Hash256{}, []*Record{rec1, rec2}, ReferenceVRF{})
	require.Empty(t, pks) // both fail Check (wrong slot), set stays empty
}
