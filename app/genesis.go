package app

import (
	"encoding/json"
	"os"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/store"
)

// Genesis file format. Contracts are deployed in the declared order, then
// all calls are executed. Contract addresses are deterministic, the n-th
// deployment is available at ContractAddress(n).
type Genesis struct {
	Deployments []Deployment `json:"deployments"`
	Calls       []Call       `json:"calls"`
}

// Deployment declares a contract instance to create.
type Deployment struct {
	// Code is the identifier of the deployed code.
	Code string `json:"code"`
	// Deployer is the condition of the caller of the init path.
	Deployer cosmicroses.Condition `json:"deployer"`
	// Msg is the JSON representation of the init message.
	Msg json.RawMessage `json:"msg"`
	// Options if set configures the instance after it was initialized.
	Options cosmicroses.Options `json:"options,omitempty"`
}

// Call declares a call of a contract entry point.
type Call struct {
	Caller   cosmicroses.Condition `json:"caller"`
	Contract cosmicroses.Address   `json:"contract"`
	Path     string                `json:"path"`
	Msg      json.RawMessage       `json:"msg"`
}

// LoadGenesis tries to load a given file into a Genesis struct.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return &gen, nil
}

// InitGenesis deploys all contracts and executes all calls declared by the
// genesis. It returns the addresses of the deployed contracts.
//
// The genesis is applied as a single unit. Processing stops at the first
// failure and none of the changes are written, so a corrected genesis can be
// applied again to the same store.
func (rt *Runtime) InitGenesis(ctx cosmicroses.Context, gen *Genesis) (_ []cosmicroses.Address, err error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	cache := rt.db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	addrs := make([]cosmicroses.Address, 0, len(gen.Deployments))
	for i, d := range gen.Deployments {
		addr, err := rt.genesisDeploy(ctx, cache, d)
		if err != nil {
			return nil, errors.Wrapf(err, "deployment %d", i)
		}
		addrs = append(addrs, addr)
	}
	for i, c := range gen.Calls {
		msg, err := rt.codes.DecodeMsg(c.Path, c.Msg)
		if err != nil {
			return nil, errors.Wrapf(err, "call %d", i)
		}
		tx := &Tx{Contract: c.Contract, Msg: msg}
		if _, err := rt.handler.Deliver(rt.context(ctx, c.Caller), cache, tx); err != nil {
			return nil, errors.Wrapf(err, "call %d", i)
		}
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write genesis")
	}
	rt.logger.Info("genesis loaded", "deployments", len(addrs), "calls", len(gen.Calls))
	return addrs, nil
}

func (rt *Runtime) genesisDeploy(ctx cosmicroses.Context, db cosmicroses.KVStore, d Deployment) (cosmicroses.Address, error) {
	code, err := rt.codes.Get(d.Code)
	if err != nil {
		return nil, err
	}
	msg, err := rt.codes.DecodeMsg(code.InitPath, d.Msg)
	if err != nil {
		return nil, err
	}
	res, err := rt.handler.Deliver(rt.context(ctx, d.Deployer), db, &DeployTx{Code: d.Code, Msg: msg})
	if err != nil {
		return nil, err
	}
	var addr cosmicroses.AddressResult
	if err := cosmicroses.LoadResult(res, &addr); err != nil {
		return nil, errors.Wrap(err, "deploy result")
	}
	if len(d.Options) == 0 {
		return addr.Value, nil
	}
	if code.Configure == nil {
		return nil, errors.Wrapf(errors.ErrInput, "code %s does not accept options", code.ID())
	}
	if err := code.Configure(store.NewPrefixStore(db, store.ContractPrefix(addr.Value)), d.Options); err != nil {
		return nil, errors.Wrap(err, "options")
	}
	return addr.Value, nil
}
