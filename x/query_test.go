package x

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/rosestest/assert"
	"github.com/charlieabtbl/cosmicroses/store"
)

func TestQueryHandler(t *testing.T) {
	h := NewQueryHandler(
		func() cosmicroses.Msg { return &rosestest.Msg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			m := msg.(*rosestest.Msg)
			if m.RoutePath == "fail/now" {
				return nil, errors.Wrap(errors.ErrNotFound, "nothing here")
			}
			return &cosmicroses.StringResult{Value: m.RoutePath}, nil
		},
	)

	ctx := context.Background()
	db := store.MemStore()

	_, err := h.Check(ctx, db, &rosestest.Tx{Msg: &rosestest.Msg{RoutePath: "test/read"}})
	assert.Nil(t, err)

	res, err := h.Deliver(ctx, db, &rosestest.Tx{Msg: &rosestest.Msg{RoutePath: "test/read"}})
	assert.Nil(t, err)
	var got cosmicroses.StringResult
	assert.Nil(t, cosmicroses.LoadResult(res, &got))
	assert.Equal(t, "test/read", got.Value)

	_, err = h.Deliver(ctx, db, &rosestest.Tx{Msg: &rosestest.Msg{RoutePath: "fail/now"}})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = h.Deliver(ctx, db, &rosestest.Tx{})
	assert.IsErr(t, errors.ErrMsg, err)
}
