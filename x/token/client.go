package token

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Client calls a token instance from within another contract. The calling
// contract is the token owner seen by the token.
type Client struct{}

// BalanceOf returns the balance of the owner kept by given token instance.
func (Client) BalanceOf(ctx cosmicroses.Context, token, owner cosmicroses.Address) (uint64, error) {
	inv, err := invoker(ctx)
	if err != nil {
		return 0, err
	}
	return cosmicroses.Uint64(inv.Invoke(ctx, token, &BalanceOfMsg{Owner: owner}))
}

// Transfer moves the amount owned by the calling contract to the recipient.
func (Client) Transfer(ctx cosmicroses.Context, token, to cosmicroses.Address, amount uint64) error {
	inv, err := invoker(ctx)
	if err != nil {
		return err
	}
	_, err = inv.Invoke(ctx, token, &TransferMsg{Recipient: to, Amount: amount})
	return err
}

func invoker(ctx cosmicroses.Context) (cosmicroses.Invoker, error) {
	inv, ok := cosmicroses.GetInvoker(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "token client used outside of a contract")
	}
	return inv, nil
}
