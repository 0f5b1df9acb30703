package access

import (
	"github.com/charlieabtbl/cosmicroses"
)

// Gated returns a handler that processes a call only if the caller holds
// the role. Use it for entry points whose only authorization rule is the
// role membership.
func (c *Controller) Gated(role Role, h cosmicroses.Handler) cosmicroses.Handler {
	return &gatedHandler{acl: c, role: role, next: h}
}

type gatedHandler struct {
	acl  *Controller
	role Role
	next cosmicroses.Handler
}

var _ cosmicroses.Handler = (*gatedHandler)(nil)

func (h *gatedHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.acl.RequireRole(ctx, db, h.role); err != nil {
		return nil, err
	}
	return h.next.Check(ctx, db, tx)
}

func (h *gatedHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	if _, err := h.acl.RequireRole(ctx, db, h.role); err != nil {
		return nil, err
	}
	return h.next.Deliver(ctx, db, tx)
}
