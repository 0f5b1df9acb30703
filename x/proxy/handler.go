package proxy

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/x"
)

// adminSetter is implemented by initializer messages that appoint the
// proxy admin.
type adminSetter interface {
	GetProxyAdmin() cosmicroses.Address
}

// RegisterRoutes registers handlers of the proxy own paths. Codes are
// resolved using given registry.
func RegisterRoutes(r cosmicroses.Registry, auth x.Authenticator, codes *app.CodeRegistry) {
	states := NewStateBucket()
	r.Handle(pathDeployMsg, &deployHandler{auth: auth, codes: codes, states: states})
	r.Handle(pathUpgradeContractMsg, &upgradeHandler{auth: auth, codes: codes, states: states})
	r.Handle(pathGetImplementationMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &GetImplementationMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			s, err := states.Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.StringResult{Value: s.Implementation}, nil
		}))
	r.Handle(pathGetAdminMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &GetAdminMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			s, err := states.Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.AddressResult{Value: s.Admin}, nil
		}))
}

// NewForwarder returns the handler delegating calls to the current
// implementation of the proxy.
func NewForwarder(codes *app.CodeRegistry) cosmicroses.Handler {
	return &forwardHandler{codes: codes, states: NewStateBucket()}
}

type deployHandler struct {
	auth   x.Authenticator
	codes  *app.CodeRegistry
	states *StateBucket
}

func (h *deployHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *deployHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	_, code, deployer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := migration.Upgrade(db, code.Schema); err != nil {
		return nil, errors.Wrap(err, "implementation schema")
	}
	state := &State{
		Metadata:       &cosmicroses.Metadata{},
		Implementation: code.ID(),
		Admin:          deployer,
	}
	if err := h.states.Save(db, state); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *deployHandler) validate(ctx cosmicroses.Context, tx cosmicroses.Tx) (*DeployMsg, *app.Code, cosmicroses.Address, error) {
	var msg DeployMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	code, err := h.codes.Get(msg.Implementation)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "implementation")
	}
	if code.Name == packageName {
		return nil, nil, nil, errors.Wrap(errors.ErrInput, "proxy cannot delegate to a proxy")
	}
	deployer, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, code, deployer, nil
}

type upgradeHandler struct {
	auth   x.Authenticator
	codes  *app.CodeRegistry
	states *StateBucket
}

func (h *upgradeHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *upgradeHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	state, code, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := migration.Upgrade(db, code.Schema); err != nil {
		return nil, errors.Wrapf(err, "migrate to %s", code.ID())
	}
	previous := state.Implementation
	state.Implementation = code.ID()
	if err := h.states.Save(db, state); err != nil {
		return nil, err
	}
	cosmicroses.GetLogger(ctx).Info("contract upgraded", "from", previous, "to", code.ID())
	return &cosmicroses.DeliverResult{Log: "upgraded to " + code.ID()}, nil
}

func (h *upgradeHandler) validate(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, tx cosmicroses.Tx) (*State, *app.Code, error) {
	var msg UpgradeContractMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	state, err := h.states.Load(db)
	if err != nil {
		return nil, nil, err
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if !caller.Equals(state.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the proxy admin can upgrade")
	}
	code, err := h.codes.Get(msg.NewImplementation)
	if err != nil {
		return nil, nil, errors.Wrap(err, "new implementation")
	}
	current, err := h.codes.Get(state.Implementation)
	if err != nil {
		return nil, nil, errors.Wrap(err, "current implementation")
	}
	if code.Name != current.Name {
		return nil, nil, errors.Wrapf(errors.ErrInput, "cannot replace %s with %s", current.Name, code.Name)
	}
	return state, code, nil
}

type forwardHandler struct {
	codes  *app.CodeRegistry
	states *StateBucket
}

func (h *forwardHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	_, code, msg, err := h.resolve(db, tx)
	if err != nil {
		return nil, err
	}
	return code.Router().Handler(msg.Path()).Check(ctx, db, tx)
}

func (h *forwardHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	state, code, msg, err := h.resolve(db, tx)
	if err != nil {
		return nil, err
	}
	res, err := code.Router().Handler(msg.Path()).Deliver(ctx, db, tx)
	if err != nil || msg.Path() != code.InitPath {
		return res, err
	}

	state.Initialized = true
	if m, ok := msg.(adminSetter); ok {
		if admin := m.GetProxyAdmin(); len(admin) != 0 {
			state.Admin = admin
		}
	}
	if err := h.states.Save(db, state); err != nil {
		return nil, err
	}
	cosmicroses.GetLogger(ctx).Info("implementation initialized", "implementation", code.ID(), "admin", state.Admin)
	return res, nil
}

// resolve returns the proxy state and the code that must serve given
// transaction.
func (h *forwardHandler) resolve(db cosmicroses.ReadOnlyKVStore, tx cosmicroses.Tx) (*State, *app.Code, cosmicroses.Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrMsg, "nil")
	}
	state, err := h.states.Load(db)
	if err != nil {
		return nil, nil, nil, err
	}
	code, err := h.codes.Get(state.Implementation)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "implementation")
	}
	switch isInit := msg.Path() == code.InitPath; {
	case isInit && state.Initialized:
		return nil, nil, nil, errors.Wrap(errors.ErrAlreadyInitialized, code.ID())
	case !isInit && !state.Initialized && code.Router().Has(msg.Path()):
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "%s not initialized", code.ID())
	}
	return state, code, msg, nil
}
