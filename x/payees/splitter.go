package payees

import (
	"math/bits"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x/shares"
)

// TokenController is the fungible token used by the splitter. Balances are
// read and transferred on behalf of the currently executing contract.
type TokenController interface {
	BalanceOf(ctx cosmicroses.Context, token, owner cosmicroses.Address) (uint64, error)
	Transfer(ctx cosmicroses.Context, token, to cosmicroses.Address, amount uint64) error
}

// Scope of the payees registry.
const Scope = "payees"

// Splitter computes and executes payments to the registered payees.
type Splitter struct {
	payees *shares.Registry
	ledger *Ledger
	tokens TokenController
}

// NewSplitter returns a splitter paying in tokens using given controller.
func NewSplitter(tokens TokenController) *Splitter {
	return &Splitter{
		payees: shares.NewRegistry(Scope),
		ledger: NewLedger(),
		tokens: tokens,
	}
}

// Payees returns the registry of payees.
func (s *Splitter) Payees() *shares.Registry {
	return s.payees
}

// Ledger returns the ledger of released amounts.
func (s *Splitter) Ledger() *Ledger {
	return s.ledger
}

// Balance returns the amount of the token held by the splitter.
func (s *Splitter) Balance(ctx cosmicroses.Context, token cosmicroses.Address) (uint64, error) {
	self, ok := cosmicroses.GetContract(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "splitter used outside of a contract")
	}
	amount, err := s.tokens.BalanceOf(ctx, token, self.Address())
	if err != nil {
		return 0, errors.Wrap(err, "token balance")
	}
	return amount, nil
}

// PendingPayment returns the amount of the token the payee is due. An
// address that is not a payee is due nothing.
func (s *Splitter) PendingPayment(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, token, payee cosmicroses.Address) (uint64, error) {
	balance, err := s.Balance(ctx, token)
	if err != nil {
		return 0, err
	}
	share, err := s.payees.Find(db, payee)
	if err != nil {
		return 0, err
	}
	total, err := s.payees.TotalShares(db)
	if err != nil {
		return 0, err
	}
	totalReleased, err := s.ledger.TotalReleased(db, token)
	if err != nil {
		return 0, err
	}
	released, err := s.ledger.Released(db, token, payee)
	if err != nil {
		return 0, err
	}
	return pendingPayment(balance, totalReleased, share.Shares, total, released)
}

// pendingPayment computes the part of all received tokens owned by a payee
// minus what was already released to it. An amount released before the
// shares were lowered can exceed the entitlement, the payee is due nothing
// in that case.
func pendingPayment(balance, totalReleased, share, totalShares, released uint64) (uint64, error) {
	if share == 0 || totalShares == 0 {
		return 0, nil
	}
	received, carry := bits.Add64(balance, totalReleased, 0)
	if carry != 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "total received")
	}
	hi, lo := bits.Mul64(received, share)
	if hi != 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "received amount times shares")
	}
	entitled := lo / totalShares
	if entitled <= released {
		return 0, nil
	}
	return entitled - released, nil
}

// Release transfers to the payee the amount of the token it is due and
// returns that amount. The ledger is updated only after the token accepted
// the transfer.
func (s *Splitter) Release(ctx cosmicroses.Context, db cosmicroses.KVStore, token, payee cosmicroses.Address) (uint64, error) {
	if _, err := s.payees.Lookup(db, payee); err != nil {
		return 0, errors.Wrap(err, "payee")
	}
	amount, err := s.PendingPayment(ctx, db, token, payee)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, errors.Wrapf(errors.ErrNothingDue, "payee %s", payee)
	}
	if err := s.tokens.Transfer(ctx, token, payee, amount); err != nil {
		return 0, errors.Append(errors.ErrTransferFailed, err)
	}
	if err := s.ledger.Credit(db, token, payee, amount); err != nil {
		return 0, err
	}
	cosmicroses.GetLogger(ctx).Info("payment released", "token", token, "payee", payee, "amount", amount)
	return amount, nil
}
