package access

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x"
)

// RegisterRoutes registers handlers for role management.
func RegisterRoutes(r cosmicroses.Registry, auth x.Authenticator) {
	ctrl := NewController(auth)
	r.Handle(pathGrantRoleMsg, &grantRoleHandler{ctrl: ctrl})
	r.Handle(pathRevokeRoleMsg, &revokeRoleHandler{ctrl: ctrl})
	r.Handle(pathHasRoleMsg, &hasRoleHandler{ctrl: ctrl})
	r.Handle(pathRenounceRoleMsg, &renounceRoleHandler{auth: auth, ctrl: ctrl})
}

type grantRoleHandler struct {
	ctrl *Controller
}

func (h *grantRoleHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *grantRoleHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Grant(db, msg.Role, msg.Account); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *grantRoleHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*GrantRoleMsg, error) {
	if _, err := h.ctrl.RequireRole(ctx, db, DefaultAdminRole); err != nil {
		return nil, err
	}
	var msg GrantRoleMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type revokeRoleHandler struct {
	ctrl *Controller
}

func (h *revokeRoleHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *revokeRoleHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Revoke(db, msg.Role, msg.Account); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *revokeRoleHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*RevokeRoleMsg, error) {
	if _, err := h.ctrl.RequireRole(ctx, db, DefaultAdminRole); err != nil {
		return nil, err
	}
	var msg RevokeRoleMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type hasRoleHandler struct {
	ctrl *Controller
}

func (h *hasRoleHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	var msg HasRoleMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *hasRoleHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	var msg HasRoleMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ok, err := h.ctrl.HasRole(db, msg.Role, msg.Account)
	if err != nil {
		return nil, err
	}
	return cosmicroses.NewResult(&cosmicroses.BoolResult{Value: ok})
}

type renounceRoleHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *renounceRoleHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *renounceRoleHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Revoke(db, msg.Role, caller); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *renounceRoleHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*RenounceRoleMsg, cosmicroses.Address, error) {
	var msg RenounceRoleMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, caller, nil
}
