package x

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// QueryFunc computes the result of a read entry point. The message is
// already loaded and validated.
type QueryFunc func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error)

// QueryHandler serves an entry point that only reads the state. Its result
// is serialized into the DeliverResult data.
type QueryHandler struct {
	newMsg func() cosmicroses.Msg
	fn     QueryFunc
}

var _ cosmicroses.Handler = (*QueryHandler)(nil)

// NewQueryHandler returns a handler loading the message into the instance
// returned by newMsg and serving it with fn.
func NewQueryHandler(newMsg func() cosmicroses.Msg, fn QueryFunc) *QueryHandler {
	return &QueryHandler{newMsg: newMsg, fn: fn}
}

func (h *QueryHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.load(tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *QueryHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := h.load(tx)
	if err != nil {
		return nil, err
	}
	res, err := h.fn(ctx, db, msg)
	if err != nil {
		return nil, err
	}
	return cosmicroses.NewResult(res)
}

func (h *QueryHandler) load(tx cosmicroses.Tx) (cosmicroses.Msg, error) {
	msg := h.newMsg()
	if err := cosmicroses.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return msg, nil
}
