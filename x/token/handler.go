package token

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/gconf"
	"github.com/charlieabtbl/cosmicroses/x"
	"github.com/charlieabtbl/cosmicroses/x/access"
)

// RegisterRoutes registers handlers for token message processing.
func RegisterRoutes(r cosmicroses.Registry, auth x.Authenticator) {
	ctrl := NewController()
	acl := access.NewController(auth)
	r.Handle(pathInitMsg, &initHandler{auth: auth, ctrl: ctrl, acl: acl})
	r.Handle(pathInfoMsg, &infoHandler{})
	r.Handle(pathBalanceOfMsg, &balanceOfHandler{ctrl: ctrl})
	r.Handle(pathTransferMsg, &transferHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathTotalSupplyMsg, &totalSupplyHandler{ctrl: ctrl})
	r.Handle(pathMintMsg, &mintHandler{ctrl: ctrl, acl: acl})
	access.RegisterRoutes(r, auth)
}

// Configure overwrites the token description using the "token" entry of
// the genesis configuration options.
func Configure(db cosmicroses.KVStore, opts cosmicroses.Options) error {
	var conf Config
	return gconf.InitConfig(db, opts, packageName, &conf)
}

type initHandler struct {
	auth x.Authenticator
	ctrl *Controller
	acl  *access.Controller
}

func (h *initHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *initHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, deployer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	conf := &Config{Name: msg.Name, Symbol: msg.Symbol, Decimals: msg.Decimals}
	if err := gconf.Save(db, packageName, conf); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if err := h.acl.Bootstrap(db, deployer); err != nil {
		return nil, err
	}
	if msg.InitialSupply != 0 {
		if err := h.ctrl.Issue(db, msg.Recipient, msg.InitialSupply); err != nil {
			return nil, errors.Wrap(err, "initial supply")
		}
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *initHandler) validate(ctx cosmicroses.Context, tx cosmicroses.Tx) (*InitMsg, cosmicroses.Address, error) {
	var msg InitMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	deployer, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, deployer, nil
}

type infoHandler struct{}

func (h *infoHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	var msg InfoMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *infoHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	var msg InfoMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var conf Config
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return cosmicroses.NewResult(&conf)
}

type balanceOfHandler struct {
	ctrl *Controller
}

func (h *balanceOfHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	var msg BalanceOfMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *balanceOfHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	var msg BalanceOfMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	amount, err := h.ctrl.Balance(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	return cosmicroses.NewResult(&cosmicroses.Uint64Result{Value: amount})
}

type transferHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *transferHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	msg, sender, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	balance, err := h.ctrl.Balance(db, sender)
	if err != nil {
		return nil, err
	}
	if balance < msg.Amount {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", balance, msg.Amount)
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *transferHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Move(db, sender, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *transferHandler) validate(ctx cosmicroses.Context, tx cosmicroses.Tx) (*TransferMsg, cosmicroses.Address, error) {
	var msg TransferMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}

type totalSupplyHandler struct {
	ctrl *Controller
}

func (h *totalSupplyHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	var msg TotalSupplyMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *totalSupplyHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	var msg TotalSupplyMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	total, err := h.ctrl.TotalSupply(db)
	if err != nil {
		return nil, err
	}
	return cosmicroses.NewResult(&cosmicroses.Uint64Result{Value: total})
}

type mintHandler struct {
	ctrl *Controller
	acl  *access.Controller
}

func (h *mintHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *mintHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Issue(db, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *mintHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*MintMsg, error) {
	if _, err := h.acl.RequireRole(ctx, db, access.DefaultAdminRole); err != nil {
		return nil, err
	}
	var msg MintMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}
