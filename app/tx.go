package app

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Tx is a call of an entry point of a deployed contract.
type Tx struct {
	Contract cosmicroses.Address
	Msg      cosmicroses.Msg
}

var _ cosmicroses.Tx = (*Tx)(nil)

// GetMsg returns the called entry point message.
func (tx *Tx) GetMsg() (cosmicroses.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "msg")
	}
	return tx.Msg, nil
}

// DeployTx creates a new contract instance of a code. Msg is the message
// handled by the init path of the code.
type DeployTx struct {
	Code string
	Msg  cosmicroses.Msg
}

var _ cosmicroses.Tx = (*DeployTx)(nil)

// GetMsg returns the initialization message.
func (tx *DeployTx) GetMsg() (cosmicroses.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "msg")
	}
	return tx.Msg, nil
}
