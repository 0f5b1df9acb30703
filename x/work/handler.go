package work

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/shares"
)

// RegisterRoutes registers handlers of the first version of the work.
func RegisterRoutes(r cosmicroses.Registry, auth x.Authenticator) {
	ctrl := NewController()
	acl := access.NewController(auth)

	r.Handle(pathInitializerMsg, &initializerHandler{auth: auth, acl: acl, ctrl: ctrl})
	r.Handle(pathCreateRecordMsg, &createRecordHandler{acl: acl, ctrl: ctrl})
	r.Handle(pathSetWorkContributorMsg, &setWorkContributorsHandler{acl: acl, ctrl: ctrl})
	r.Handle(pathSetBatchWorkContributorsMsg, &setWorkContributorsHandler{acl: acl, ctrl: ctrl})
	r.Handle(pathSetWorkPayeesContractMsg, &setWorkPayeesContractHandler{acl: acl, ctrl: ctrl})
	r.Handle(pathApproveMsg, &approveHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathTransferFromMsg, &transferFromHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathPauseMsg, acl.Gated(PauserRole, &pauseHandler{ctrl: ctrl, paused: true}))
	r.Handle(pathUnpauseMsg, acl.Gated(PauserRole, &pauseHandler{ctrl: ctrl, paused: false}))

	registerQueries(r, ctrl)
	access.RegisterRoutes(r, auth)
}

// RegisterRoutesV2 registers handlers of the second version of the work.
func RegisterRoutesV2(r cosmicroses.Registry, auth x.Authenticator) {
	RegisterRoutes(r, auth)

	ctrl := NewController()
	r.Handle(pathSetVarMsg, access.NewController(auth).Gated(access.DefaultAdminRole, &setVarHandler{ctrl: ctrl}))
	r.Handle(pathGetVarMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &GetVarMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			conf, err := ctrl.Config().Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.Uint64Result{Value: conf.Var}, nil
		}))
}

func registerQueries(r cosmicroses.Registry, ctrl *Controller) {
	query := func(path string, newMsg func() cosmicroses.Msg, fn x.QueryFunc) {
		r.Handle(path, x.NewQueryHandler(newMsg, fn))
	}

	query(pathGetWorkContributorByAddressMsg,
		func() cosmicroses.Msg { return &GetWorkContributorByAddressMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return ctrl.WorkContributors().Lookup(db, msg.(*GetWorkContributorByAddressMsg).Address)
		})
	query(pathFindWorkContributorByAddressMsg,
		func() cosmicroses.Msg { return &FindWorkContributorByAddressMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return ctrl.WorkContributors().Find(db, msg.(*FindWorkContributorByAddressMsg).Address)
		})
	query(pathGetWorkContributorByIndexMsg,
		func() cosmicroses.Msg { return &GetWorkContributorByIndexMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return ctrl.WorkContributors().ByIndex(db, msg.(*GetWorkContributorByIndexMsg).Index)
		})
	query(pathWorkContributorsCountMsg,
		func() cosmicroses.Msg { return &WorkContributorsCountMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(ctrl.WorkContributors().Count(db))
		})
	query(pathWorkTotalSharesMsg,
		func() cosmicroses.Msg { return &WorkTotalSharesMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(ctrl.WorkContributors().TotalShares(db))
		})
	query(pathGetRecordContributorByAddressMsg,
		func() cosmicroses.Msg { return &GetRecordContributorByAddressMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			m := msg.(*GetRecordContributorByAddressMsg)
			reg, err := ctrl.RecordContributors(db, m.TokenID)
			if err != nil {
				return nil, err
			}
			return reg.Lookup(db, m.Address)
		})
	query(pathFindRecordContributorByAddressMsg,
		func() cosmicroses.Msg { return &FindRecordContributorByAddressMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			m := msg.(*FindRecordContributorByAddressMsg)
			reg, err := ctrl.RecordContributors(db, m.TokenID)
			if err != nil {
				return nil, err
			}
			return reg.Find(db, m.Address)
		})
	query(pathRecordContributorsCountMsg,
		func() cosmicroses.Msg { return &RecordContributorsCountMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			reg, err := ctrl.RecordContributors(db, msg.(*RecordContributorsCountMsg).TokenID)
			if err != nil {
				return nil, err
			}
			return uint64Result(reg.Count(db))
		})
	query(pathGetWorkPayeesContractMsg,
		func() cosmicroses.Msg { return &GetWorkPayeesContractMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			conf, err := ctrl.Config().Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.AddressResult{Value: conf.PayeesContract}, nil
		})
	query(pathGetRecordPayeesContractMsg,
		func() cosmicroses.Msg { return &GetRecordPayeesContractMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			rec, err := ctrl.Record(db, msg.(*GetRecordPayeesContractMsg).TokenID)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.AddressResult{Value: rec.PayeesContract}, nil
		})
	query(pathSupportsInterfaceMsg,
		func() cosmicroses.Msg { return &SupportsInterfaceMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return &cosmicroses.BoolResult{Value: SupportsInterface(msg.(*SupportsInterfaceMsg).InterfaceID)}, nil
		})
	query(pathNameMsg,
		func() cosmicroses.Msg { return &NameMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			conf, err := ctrl.Config().Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.StringResult{Value: conf.Name}, nil
		})
	query(pathSymbolMsg,
		func() cosmicroses.Msg { return &SymbolMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			conf, err := ctrl.Config().Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.StringResult{Value: conf.Symbol}, nil
		})
	query(pathOwnerOfMsg,
		func() cosmicroses.Msg { return &OwnerOfMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			rec, err := ctrl.Record(db, msg.(*OwnerOfMsg).TokenID)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.AddressResult{Value: rec.Owner}, nil
		})
	query(pathBalanceOfMsg,
		func() cosmicroses.Msg { return &BalanceOfMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(ctrl.Balance(db, msg.(*BalanceOfMsg).Owner))
		})
	query(pathTokenURIMsg,
		func() cosmicroses.Msg { return &TokenURIMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			rec, err := ctrl.Record(db, msg.(*TokenURIMsg).TokenID)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.StringResult{Value: rec.TokenURI}, nil
		})
	query(pathGetApprovedMsg,
		func() cosmicroses.Msg { return &GetApprovedMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			rec, err := ctrl.Record(db, msg.(*GetApprovedMsg).TokenID)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.AddressResult{Value: rec.Approved}, nil
		})
	query(pathPausedMsg,
		func() cosmicroses.Msg { return &PausedMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			conf, err := ctrl.Config().Load(db)
			if err != nil {
				return nil, err
			}
			return &cosmicroses.BoolResult{Value: conf.Paused}, nil
		})
}

func uint64Result(n uint64, err error) (cosmicroses.Persistent, error) {
	if err != nil {
		return nil, err
	}
	return &cosmicroses.Uint64Result{Value: n}, nil
}

type initializerHandler struct {
	auth x.Authenticator
	acl  *access.Controller
	ctrl *Controller
}

func (h *initializerHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *initializerHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf := &Config{
		Metadata:       &cosmicroses.Metadata{},
		Name:           msg.Name,
		Symbol:         msg.Symbol,
		PayeesContract: msg.PayeesContract,
	}
	if err := h.ctrl.Config().Save(db, conf); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if err := h.acl.Bootstrap(db, admin); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *initializerHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*InitializerMsg, cosmicroses.Address, error) {
	var msg InitializerMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	switch ok, err := h.ctrl.Config().Exists(db); {
	case err != nil:
		return nil, nil, err
	case ok:
		return nil, nil, errors.Wrap(errors.ErrAlreadyInitialized, "work")
	}
	if len(msg.Admin) != 0 {
		return &msg, msg.Admin, nil
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, caller, nil
}

type createRecordHandler struct {
	acl  *access.Controller
	ctrl *Controller
}

func (h *createRecordHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *createRecordHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, licensee, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	rec, err := h.ctrl.CreateRecord(db, licensee, msg.TokenURI, msg.Contributors, msg.PayeesContract)
	if err != nil {
		return nil, err
	}
	cosmicroses.GetLogger(ctx).Debug("record created", "token", rec.TokenID, "owner", licensee)
	return cosmicroses.NewResult(&cosmicroses.Uint64Result{Value: rec.TokenID})
}

func (h *createRecordHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*CreateRecordMsg, cosmicroses.Address, error) {
	licensee, err := h.acl.RequireRole(ctx, db, RecordingLicenseeRole)
	if err != nil {
		return nil, nil, err
	}
	var msg CreateRecordMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return &msg, licensee, nil
}

// setWorkContributorsHandler processes both the single and the batch
// update of the work contributors.
type setWorkContributorsHandler struct {
	acl  *access.Controller
	ctrl *Controller
}

func (h *setWorkContributorsHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *setWorkContributorsHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	entries, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.WorkContributors().SetBatch(db, entries); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *setWorkContributorsHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) ([]*shares.Entry, error) {
	if _, err := h.acl.RequireRole(ctx, db, access.DefaultAdminRole); err != nil {
		return nil, err
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	var entries []*shares.Entry
	switch msg := msg.(type) {
	case *SetWorkContributorMsg:
		entries = []*shares.Entry{{Address: msg.Address, Shares: msg.Shares}}
	case *SetBatchWorkContributorsMsg:
		entries = msg.Contributors
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected message %T", msg)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	return entries, nil
}

type setWorkPayeesContractHandler struct {
	acl  *access.Controller
	ctrl *Controller
}

func (h *setWorkPayeesContractHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *setWorkPayeesContractHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := h.ctrl.Config().Load(db)
	if err != nil {
		return nil, err
	}
	conf.PayeesContract = msg.PayeesContract
	if err := h.ctrl.Config().Save(db, conf); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *setWorkPayeesContractHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*SetWorkPayeesContractMsg, error) {
	if _, err := h.acl.RequireRole(ctx, db, access.DefaultAdminRole); err != nil {
		return nil, err
	}
	var msg SetWorkPayeesContractMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type approveHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *approveHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *approveHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Approve(db, caller, msg.TokenID, msg.Spender); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *approveHandler) validate(ctx cosmicroses.Context, tx cosmicroses.Tx) (*ApproveMsg, cosmicroses.Address, error) {
	var msg ApproveMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, caller, nil
}

type transferFromHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *transferFromHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *transferFromHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, caller, msg.From, msg.To, msg.TokenID); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *transferFromHandler) validate(ctx cosmicroses.Context, tx cosmicroses.Tx) (*TransferFromMsg, cosmicroses.Address, error) {
	var msg TransferFromMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, caller, nil
}

// pauseHandler processes both pause and unpause.
type pauseHandler struct {
	ctrl   *Controller
	paused bool
}

func (h *pauseHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *pauseHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	if err := h.ctrl.SetPaused(db, h.paused); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *pauseHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	switch msg.(type) {
	case *PauseMsg, *UnpauseMsg:
		return nil
	default:
		return errors.Wrapf(errors.ErrMsg, "unexpected message %T", msg)
	}
}

type setVarHandler struct {
	ctrl *Controller
}

func (h *setVarHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *setVarHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := h.ctrl.Config().Load(db)
	if err != nil {
		return nil, err
	}
	conf.Var = msg.Var
	if err := h.ctrl.Config().Save(db, conf); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *setVarHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*SetVarMsg, error) {
	var msg SetVarMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}
