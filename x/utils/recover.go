package utils

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Recovery turns a panic raised by a contract handler into an ErrPanic
// failure of that call. The panic is logged together with the message path
// so that the faulty entry point can be found. Place it below Logging and
// above Savepoint, so that a recovered call is still rolled back.
type Recovery struct{}

var _ cosmicroses.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (r Recovery) Check(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Checker) (_ *cosmicroses.CheckResult, err error) {
	defer recoverCall(ctx, tx, &err)
	return next.Check(ctx, store, tx)
}

func (r Recovery) Deliver(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Deliverer) (_ *cosmicroses.DeliverResult, err error) {
	defer recoverCall(ctx, tx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverCall must be deferred directly, otherwise recover returns nil.
func recoverCall(ctx cosmicroses.Context, tx cosmicroses.Tx, err *error) {
	p := recover()
	if p == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", p)
	cosmicroses.GetLogger(ctx).Error("handler panic", "path", msgPath(tx), "panic", p)
}
