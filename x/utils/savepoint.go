package utils

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Savepoint isolates all data written inside of the call and either writes
// it to the parent store on success or discards it on error.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ cosmicroses.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on Check
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{
		onCheck:   true,
		onDeliver: s.onDeliver,
	}
}

// OnDeliver returns a savepoint that will trigger on Deliver
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{
		onCheck:   s.onCheck,
		onDeliver: true,
	}
}

// Check will optionally set a savepoint
func (s Savepoint) Check(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Checker) (*cosmicroses.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(cosmicroses.CacheableKVStore)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally set a savepoint
func (s Savepoint) Deliver(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Deliverer) (*cosmicroses.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(cosmicroses.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}
