package payees

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/shares"
)

// RegisterRoutes registers handlers for the splitter message processing.
func RegisterRoutes(r cosmicroses.Registry, auth x.Authenticator, tokens TokenController) {
	s := NewSplitter(tokens)
	acl := access.NewController(auth)

	r.Handle(pathInitMsg, &initHandler{auth: auth, acl: acl, splitter: s})
	r.Handle(pathSetPayeeMsg, &setPayeesHandler{acl: acl, splitter: s})
	r.Handle(pathSetBatchPayeesMsg, &setPayeesHandler{acl: acl, splitter: s})
	r.Handle(pathReleaseMsg, &releaseHandler{splitter: s})

	r.Handle(pathGetPayeeByAddressMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &GetPayeeByAddressMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return s.Payees().Lookup(db, msg.(*GetPayeeByAddressMsg).Address)
		}))
	r.Handle(pathGetPayeeByIndexMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &GetPayeeByIndexMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return s.Payees().ByIndex(db, msg.(*GetPayeeByIndexMsg).Index)
		}))
	r.Handle(pathPayeesCountMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &PayeesCountMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(s.Payees().Count(db))
		}))
	r.Handle(pathTotalSharesMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &TotalSharesMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(s.Payees().TotalShares(db))
		}))
	r.Handle(pathBalanceMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &BalanceMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(s.Balance(ctx, msg.(*BalanceMsg).Token))
		}))
	r.Handle(pathTotalReleasedMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &TotalReleasedMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			return uint64Result(s.Ledger().TotalReleased(db, msg.(*TotalReleasedMsg).Token))
		}))
	r.Handle(pathReleasedMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &ReleasedMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			m := msg.(*ReleasedMsg)
			return uint64Result(s.Ledger().Released(db, m.Token, m.Payee))
		}))
	r.Handle(pathPendingPaymentMsg, x.NewQueryHandler(
		func() cosmicroses.Msg { return &PendingPaymentMsg{} },
		func(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, msg cosmicroses.Msg) (cosmicroses.Persistent, error) {
			m := msg.(*PendingPaymentMsg)
			return uint64Result(s.PendingPayment(ctx, db, m.Token, m.Payee))
		}))

	access.RegisterRoutes(r, auth)
}

func uint64Result(n uint64, err error) (cosmicroses.Persistent, error) {
	if err != nil {
		return nil, err
	}
	return &cosmicroses.Uint64Result{Value: n}, nil
}

type initHandler struct {
	auth     x.Authenticator
	acl      *access.Controller
	splitter *Splitter
}

func (h *initHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *initHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.acl.Bootstrap(db, admin); err != nil {
		return nil, err
	}
	if err := h.splitter.Payees().Init(db, msg.Payees); err != nil {
		return nil, errors.Wrap(err, "payees")
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *initHandler) validate(ctx cosmicroses.Context, tx cosmicroses.Tx) (*InitMsg, cosmicroses.Address, error) {
	var msg InitMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if len(msg.Admin) != 0 {
		return &msg, msg.Admin, nil
	}
	deployer, err := x.Caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, deployer, nil
}

// setPayeesHandler processes both the single and the batch update.
type setPayeesHandler struct {
	acl      *access.Controller
	splitter *Splitter
}

func (h *setPayeesHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *setPayeesHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	entries, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.splitter.Payees().SetBatch(db, entries); err != nil {
		return nil, err
	}
	return &cosmicroses.DeliverResult{}, nil
}

func (h *setPayeesHandler) validate(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) ([]*shares.Entry, error) {
	if _, err := h.acl.RequireRole(ctx, db, access.DefaultAdminRole); err != nil {
		return nil, err
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	var entries []*shares.Entry
	switch msg := msg.(type) {
	case *SetPayeeMsg:
		entries = []*shares.Entry{{Address: msg.Address, Shares: msg.Shares}}
	case *SetBatchPayeesMsg:
		entries = msg.Payees
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected message %T", msg)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	return entries, nil
}

type releaseHandler struct {
	splitter *Splitter
}

func (h *releaseHandler) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	var msg ReleaseMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &cosmicroses.CheckResult{}, nil
}

func (h *releaseHandler) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	var msg ReleaseMsg
	if err := cosmicroses.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	amount, err := h.splitter.Release(ctx, db, msg.Token, msg.Payee)
	if err != nil {
		return nil, err
	}
	return cosmicroses.NewResult(&cosmicroses.Uint64Result{Value: amount})
}
