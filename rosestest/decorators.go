package rosestest

import "github.com/charlieabtbl/cosmicroses"

// Decorator is a mock implementation of the cosmicroses.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ cosmicroses.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Checker) (*cosmicroses.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &cosmicroses.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Deliverer) (*cosmicroses.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &cosmicroses.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that calls the decorator wrapping given handler.
func Decorate(h cosmicroses.Handler, d cosmicroses.Decorator) cosmicroses.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn cosmicroses.Handler
	dc cosmicroses.Decorator
}

var _ cosmicroses.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
