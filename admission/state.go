package admission

import (
	"math/big"

	"github.com/obexchain/obex-core/primitives"
)

// State is the mutable admission ledger: one logical owner advances it
// slot by slot (never concurrently), tracking each account's spendable
// balance, its next expected nonce, and the tickets admitted per slot.
type State struct {
	Spendable      map[primitives.Pk32]*big.Int
	Nonces         map[primitives.Pk32]uint64
	AdmittedBySlot map[uint64][]*TicketRecord
}

// NewState returns an empty admission ledger.
func NewState() *State {
	return &State{
		Spendable:      make(map[primitives.Pk32]*big.Int),
		Nonces:         make(map[primitives.Pk32]uint64),
		AdmittedBySlot: make(map[uint64][]*TicketRecord),
	}
}

func (s *State) balanceOf(pk primitives.Pk32) *big.Int {
	if b, ok := s.Spendable[pk]; ok {
		return b
	}
	return big.NewInt(0)
}

// Credit increases pk's spendable balance by amount, creating the
// account entry if needed.
func (s *State) Credit(pk primitives.Pk32, amount *big.Int) {
	s.Spendable[pk] = new(big.Int).Add(s.balanceOf(pk), amount)
}
