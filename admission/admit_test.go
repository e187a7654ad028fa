package admission

import (
	"math/big"
	"testing"

	"github.com/obexchain/obex-core/primitives"
	"github.com/spacemeshos/ed25519"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T) (primitives.Pk32, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	var pk primitives.Pk32
	copy(pk[:], pub)
	return pk, priv
}

func mkTx(sender primitives.Pk32, amount, fee uint64, nonce, slot uint64, yBind primitives.Hash256) *TxBodyV1 {
	return &TxBodyV1{
		Sender:  sender,
		Nonce:   nonce,
		AmountU: new(big.Int).SetUint64(amount),
		FeeU:    new(big.Int).SetUint64(fee),
		SBind:   slot,
		YBind:   yBind,
	}
}

func signTx(priv ed25519.PrivateKey, tx *TxBodyV1) primitives.Sig64 {
	msg := SigMessage(tx)
	sig := ed25519.Sign(priv, msg[:])
	var sig64 primitives.Sig64
	copy(sig64[:], sig)
	return sig64
}

func TestFeeIntUobx_FlatAndPercent(t *testing.T) {
	require.Equal(t, uint64(10), FeeIntUobx(big.NewInt(10)).Uint64())
	require.Equal(t, uint64(10), FeeIntUobx(big.NewInt(1000)).Uint64())
	require.Equal(t, uint64(11), FeeIntUobx(big.NewInt(1001)).Uint64())
}

func TestAdmitSingle_Accepted(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))

	tx := mkTx(pk, 500, FlatFeeUobx, 0, 1, yBind)
	sig64 := signTx(priv, tx)

	rec, errCode := AdmitSingle(tx, sig64, 1, yBind, state)
	require.Equal(t, AdmitErrNone, errCode)
	require.NotNil(t, rec)
	require.Equal(t, uint64(1), state.Nonces[pk])
	require.Equal(t, big.NewInt(10_000-500-10).String(), state.Spendable[pk].String())
}

func TestAdmitSingle_BindMismatch(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))
	tx := mkTx(pk, 500, FlatFeeUobx, 0, 2, yBind) // SBind=2, admitting at slot 1
	sig64 := signTx(priv, tx)
	_, errCode := AdmitSingle(tx, sig64, 1, yBind, state)
	require.Equal(t, ErrBindMismatch, errCode)
}

func TestAdmitSingle_AmountTooSmall(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))
	tx := mkTx(pk, 5, FlatFeeUobx, 0, 1, yBind) // below MinTransferUobx=10
	sig64 := signTx(priv, tx)
	_, errCode := AdmitSingle(tx, sig64, 1, yBind, state)
	require.Equal(t, ErrAmountTooSmall, errCode)
}

func TestAdmitSingle_FeeMismatchBeforeSig(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))

	tx := mkTx(pk, 500, 1, 0, 1, yBind) // wrong fee; never even reaches the signature check
	sig64 := signTx(priv, tx)

	_, errCode := AdmitSingle(tx, sig64, 1, yBind, state)
	require.Equal(t, ErrFeeMismatch, errCode)
}

func TestAdmitSingle_BadSig(t *testing.T) {
	pk, _ := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))
	tx := mkTx(pk, 500, FlatFeeUobx, 0, 1, yBind)
	_, errCode := AdmitSingle(tx, primitives.Sig64{}, 1, yBind, state)
	require.Equal(t, ErrBadSig, errCode)
}

func TestAdmitSingle_NonceMismatch(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))
	tx := mkTx(pk, 500, FlatFeeUobx, 3, 1, yBind) // expected nonce is 0
	sig64 := signTx(priv, tx)
	_, errCode := AdmitSingle(tx, sig64, 1, yBind, state)
	require.Equal(t, ErrNonceMismatch, errCode)
}

func TestAdmitSingle_InsufficientFunds(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(100))

	tx := mkTx(pk, 500, FlatFeeUobx, 0, 1, yBind)
	sig64 := signTx(priv, tx)

	_, errCode := AdmitSingle(tx, sig64, 1, yBind, state)
	require.Equal(t, ErrInsufficientFunds, errCode)
}

func TestAdmitSlotCanonical_AndTicketRoot(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))

	tx := mkTx(pk, 500, FlatFeeUobx, 0, 1, yBind)
	sig64 := signTx(priv, tx)

	recs := AdmitSlotCanonical(1, yBind, []SignedTx{{Body: tx, Sig: sig64}}, state)
	require.Len(t, recs, 1)

	leaves, root := BuildTicketRootForSlot(1, state)
	require.Len(t, leaves, 1)
	require.Equal(t, primitives.MerkleRoot(leaves), root)
}

func TestBuildTicketRootForSlot_Empty(t *testing.T) {
	state := NewState()
	leaves, root := BuildTicketRootForSlot(5, state)
	require.Empty(t, leaves)
	require.Equal(t, primitives.MerkleRoot(nil), root)
}

func TestBuildTxRootForSlot_MatchesTicketCount(t *testing.T) {
	pk, priv := mustKey(t)
	var yBind primitives.Hash256
	state := NewState()
	state.Credit(pk, big.NewInt(10_000))

	tx := mkTx(pk, 500, FlatFeeUobx, 0, 1, yBind)
	sig64 := signTx(priv, tx)
	AdmitSlotCanonical(1, yBind, []SignedTx{{Body: tx, Sig: sig64}}, state)

	leaves, root := BuildTxRootForSlot(1, state)
	require.Len(t, leaves, 1)
	require.Equal(t, primitives.MerkleRoot(leaves), root)
}
