package app

import (
	"context"
	"sync"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/charlieabtbl/cosmicroses/x"
	"github.com/charlieabtbl/cosmicroses/x/auth"
	"github.com/charlieabtbl/cosmicroses/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Runtime executes calls of deployed contracts. Every top level call is
// atomic: its changes are written to the store only if it succeeds. Calls
// are processed one at a time.
type Runtime struct {
	mu        sync.Mutex
	db        cosmicroses.CacheableKVStore
	codes     *CodeRegistry
	instances *InstanceBucket
	handler   cosmicroses.Handler
	logger    log.Logger
}

// NewRuntime returns a runtime operating on given store.
func NewRuntime(db cosmicroses.CacheableKVStore, codes *CodeRegistry, logger log.Logger) *Runtime {
	if logger == nil {
		logger = cosmicroses.DefaultLogger
	}
	rt := &Runtime{
		db:        db,
		codes:     codes,
		instances: NewInstanceBucket(),
		logger:    logger,
	}
	rt.handler = ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
	).WithHandler(dispatcher{rt: rt})
	return rt
}

// Codes returns the registry of deployable codes.
func (rt *Runtime) Codes() *CodeRegistry {
	return rt.codes
}

// Deploy creates a new instance of given code, initialized with given
// message. The deployer becomes the caller of the init path.
func (rt *Runtime) Deploy(ctx cosmicroses.Context, deployer cosmicroses.Condition, code string, init cosmicroses.Msg) (cosmicroses.Address, error) {
	res, err := rt.Deliver(ctx, deployer, &DeployTx{Code: code, Msg: init})
	if err != nil {
		return nil, err
	}
	var addr cosmicroses.AddressResult
	if err := cosmicroses.LoadResult(res, &addr); err != nil {
		return nil, errors.Wrap(err, "deploy result")
	}
	return addr.Value, nil
}

// Execute calls an entry point of a contract on behalf of the caller.
func (rt *Runtime) Execute(ctx cosmicroses.Context, caller cosmicroses.Condition, contract cosmicroses.Address, msg cosmicroses.Msg) (*cosmicroses.DeliverResult, error) {
	return rt.Deliver(ctx, caller, &Tx{Contract: contract, Msg: msg})
}

// Deliver processes a transaction and writes its changes to the store on
// success. Caller can be nil for calls that do not require authentication.
func (rt *Runtime) Deliver(ctx cosmicroses.Context, caller cosmicroses.Condition, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.handler.Deliver(rt.context(ctx, caller), rt.db, tx)
}

// Check validates a transaction without modifying the store.
func (rt *Runtime) Check(ctx cosmicroses.Context, caller cosmicroses.Condition, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	cache := rt.db.CacheWrap()
	defer cache.Discard()
	return rt.handler.Check(rt.context(ctx, caller), cache, tx)
}

// Query processes a transaction and discards all changes. Use it to call
// the read entry points.
func (rt *Runtime) Query(ctx cosmicroses.Context, contract cosmicroses.Address, msg cosmicroses.Msg) (*cosmicroses.DeliverResult, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	cache := rt.db.CacheWrap()
	defer cache.Discard()
	return rt.handler.Deliver(rt.context(ctx, nil), cache, &Tx{Contract: contract, Msg: msg})
}

// Instance returns the deployed instance with given address.
func (rt *Runtime) Instance(addr cosmicroses.Address) (*Instance, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.instances.Get(rt.db, addr)
}

// Instances returns all deployed instances.
func (rt *Runtime) Instances() ([]*Instance, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.instances.All(rt.db)
}

func (rt *Runtime) context(ctx cosmicroses.Context, caller cosmicroses.Condition) cosmicroses.Context {
	ctx = cosmicroses.WithLogger(ctx, rt.logger)
	if caller != nil {
		ctx = auth.WithConditions(ctx, caller)
	}
	return ctx
}

// dispatcher is the last handler of the runtime chain. It routes a call to
// the code of the called instance, inside of the instance namespace.
type dispatcher struct {
	rt *Runtime
}

var _ cosmicroses.Handler = dispatcher{}

func (d dispatcher) Check(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	switch tx := tx.(type) {
	case *DeployTx:
		code, err := d.rt.codes.Get(tx.Code)
		if err != nil {
			return nil, err
		}
		if err := checkInitMsg(code, tx.Msg); err != nil {
			return nil, err
		}
		return &cosmicroses.CheckResult{}, nil
	case *Tx:
		ctx, ns, h, err := d.route(ctx, db, tx)
		if err != nil {
			return nil, err
		}
		return h.Check(ctx, ns, tx)
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported transaction %T", tx)
	}
}

func (d dispatcher) Deliver(ctx cosmicroses.Context, db cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	switch tx := tx.(type) {
	case *DeployTx:
		return d.deploy(ctx, db, tx)
	case *Tx:
		ctx, ns, h, err := d.route(ctx, db, tx)
		if err != nil {
			return nil, err
		}
		return h.Deliver(ctx, ns, tx)
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported transaction %T", tx)
	}
}

func checkInitMsg(code *Code, msg cosmicroses.Msg) error {
	if msg == nil {
		return errors.Wrap(errors.ErrEmpty, "init msg")
	}
	if msg.Path() != code.InitPath {
		return errors.Wrapf(errors.ErrMsg, "code %s is initialized by %q, got %q", code.ID(), code.InitPath, msg.Path())
	}
	return nil
}

func (d dispatcher) deploy(ctx cosmicroses.Context, db cosmicroses.KVStore, tx *DeployTx) (*cosmicroses.DeliverResult, error) {
	code, err := d.rt.codes.Get(tx.Code)
	if err != nil {
		return nil, err
	}
	if err := checkInitMsg(code, tx.Msg); err != nil {
		return nil, err
	}
	deployer, err := x.Caller(ctx, auth.Authenticate{})
	if err != nil {
		return nil, errors.Wrap(err, "deployer")
	}
	inst, err := d.rt.instances.Create(db, code.ID(), deployer)
	if err != nil {
		return nil, err
	}
	ns := store.NewPrefixStore(db, store.ContractPrefix(inst.Address))
	if err := migration.Upgrade(ns, code.Schema); err != nil {
		return nil, errors.Wrap(err, "init schema")
	}

	ctx = d.instanceContext(ctx, db, inst, code)
	if _, err := code.Router().Handler(code.InitPath).Deliver(ctx, ns, tx); err != nil {
		return nil, errors.Wrapf(err, "init %s", code.ID())
	}
	inst.Initialized = true
	if err := d.rt.instances.Put(db, inst.Address, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	cosmicroses.GetLogger(ctx).Info("contract deployed", "deployer", deployer)

	res, err := cosmicroses.NewResult(&cosmicroses.AddressResult{Value: inst.Address})
	if err != nil {
		return nil, err
	}
	res.Log = "deployed " + code.ID()
	return res, nil
}

// route returns the handler and the namespaced store processing given call.
func (d dispatcher) route(ctx cosmicroses.Context, db cosmicroses.KVStore, tx *Tx) (cosmicroses.Context, cosmicroses.KVStore, cosmicroses.Handler, error) {
	inst, err := d.rt.instances.Get(db, tx.Contract)
	if err != nil {
		return nil, nil, nil, err
	}
	code, err := d.rt.codes.Get(inst.Code)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "contract %s", inst.Address)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, nil, err
	}
	if msg.Path() == code.InitPath && inst.Initialized {
		return nil, nil, nil, errors.Wrapf(errors.ErrAlreadyInitialized, "contract %s", inst.Address)
	}
	ns := store.NewPrefixStore(db, store.ContractPrefix(inst.Address))
	ctx = d.instanceContext(ctx, db, inst, code)
	return ctx, ns, code.Router().Handler(msg.Path()), nil
}

func (d dispatcher) instanceContext(ctx cosmicroses.Context, db cosmicroses.KVStore, inst *Instance, code *Code) cosmicroses.Context {
	ctx = cosmicroses.WithContract(ctx, ContractCondition(inst.Seq))
	ctx = cosmicroses.WithInvoker(ctx, invoker{d: d, db: db})
	return cosmicroses.WithLogInfo(ctx, "contract", inst.Address, "code", code.ID())
}

// invoker executes calls made by a contract. Nested calls share the store
// of the top level call, so they are part of the same atomic unit.
type invoker struct {
	d  dispatcher
	db cosmicroses.KVStore
}

var _ cosmicroses.Invoker = invoker{}

// maxInvokeDepth limits the number of nested contract calls.
const maxInvokeDepth = 8

type invokeDepthKey struct{}

func (i invoker) Invoke(ctx cosmicroses.Context, contract cosmicroses.Address, msg cosmicroses.Msg) (*cosmicroses.DeliverResult, error) {
	self, ok := cosmicroses.GetContract(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "invoke outside of a contract")
	}
	depth, _ := ctx.Value(invokeDepthKey{}).(int)
	if depth >= maxInvokeDepth {
		return nil, errors.Wrapf(errors.ErrState, "nested call depth %d exceeded", maxInvokeDepth)
	}
	ctx = context.WithValue(ctx, invokeDepthKey{}, depth+1)

	// The callee sees the calling contract as its only caller.
	ctx = auth.WithConditions(ctx, self)
	tx := &Tx{Contract: contract, Msg: msg}
	ctx, ns, h, err := i.d.route(ctx, i.db, tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, ns, tx)
}
