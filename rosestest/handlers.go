package rosestest

import "github.com/charlieabtbl/cosmicroses"

// Handler is a mock implementation of the cosmicroses.Handler interface.
//
// If WriteKey is set, every call writes WriteKey/WriteValue to the store
// before returning the configured result.
type Handler struct {
	checkCall   int
	CheckResult cosmicroses.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult cosmicroses.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte
}

var _ cosmicroses.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) write(db cosmicroses.KVStore) error {
	if h.WriteKey == nil {
		return nil
	}
	return db.Set(h.WriteKey, h.WriteValue)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler panics on every call.
type PanicHandler struct {
	Value interface{}
}

var _ cosmicroses.Handler = PanicHandler{}

func (p PanicHandler) Check(cosmicroses.Context, cosmicroses.KVStore, cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	panic(p.Value)
}

func (p PanicHandler) Deliver(cosmicroses.Context, cosmicroses.KVStore, cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	panic(p.Value)
}
