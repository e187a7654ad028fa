package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestH_DomainSeparation(t *testing.T) {
	a := H("obex.a", []byte("x"))
	b := H("obex.b", []byte("x"))
	require.NotEqual(t, a, b, "distinct tags must not collide on the same payload")
}

func TestH_LengthFraming(t *testing.T) {
	// H("t", "ab", "c") must differ from H("t", "a", "bc"): the length
	// prefix on each part prevents a boundary shift from producing the
	// same digest.
	a := H("obex.t", []byte("ab"), []byte("c"))
	b := H("obex.t", []byte("a"), []byte("bc"))
	require.NotEqual(t, a, b)
}

func TestH_Deterministic(t *testing.T) {
	a := H("obex.t", []byte("payload"))
	b := H("obex.t", []byte("payload"))
	require.Equal(t, a, b)
}

func TestCtEqual(t *testing.T) {
	a := H("obex.t", []byte("x"))
	b := a
	require.True(t, CtEqual(a, b))
	b[0] ^= 1
	require.False(t, CtEqual(a, b))
}
