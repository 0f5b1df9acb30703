package std

import (
	"encoding/json"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/payees"
	"github.com/charlieabtbl/cosmicroses/x/proxy"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	"github.com/charlieabtbl/cosmicroses/x/token"
	"github.com/charlieabtbl/cosmicroses/x/work"
)

// Addresses of the contracts deployed by DevGenesis.
var (
	DevTokenAddress  = app.ContractAddress(1)
	DevPayeesAddress = app.ContractAddress(2)
	DevWorkAddress   = app.ContractAddress(3)
)

// DevGenesis returns a genesis for development. It deploys a token with the
// whole supply owned by a splitter paying the given payees, and a work
// behind a proxy that is paid by that splitter. The admin deploys
// everything and is granted the recording licensee role.
func DevGenesis(admin cosmicroses.Condition, payeeList []*shares.Entry, supply uint64) (*app.Genesis, error) {
	if err := admin.Validate(); err != nil {
		return nil, errors.Wrap(err, "admin")
	}
	deployments := []struct {
		code string
		msg  cosmicroses.Msg
	}{
		{"token@1.0.0", &token.InitMsg{
			Name:          "Rose",
			Symbol:        "ROSE",
			Decimals:      6,
			InitialSupply: supply,
			Recipient:     DevPayeesAddress,
		}},
		{"payees@1.0.0", &payees.InitMsg{Payees: payeeList}},
		{"proxy@1.0.0", &proxy.DeployMsg{Implementation: "work@1.0.0"}},
	}
	var gen app.Genesis
	for _, d := range deployments {
		raw, err := encode(d.msg)
		if err != nil {
			return nil, err
		}
		gen.Deployments = append(gen.Deployments, app.Deployment{Code: d.code, Deployer: admin, Msg: raw})
	}

	calls := []cosmicroses.Msg{
		&work.InitializerMsg{Name: "work", Symbol: "WRK", PayeesContract: DevPayeesAddress},
		&access.GrantRoleMsg{Role: work.RecordingLicenseeRole, Account: admin.Address()},
	}
	for _, msg := range calls {
		raw, err := encode(msg)
		if err != nil {
			return nil, err
		}
		gen.Calls = append(gen.Calls, app.Call{Caller: admin, Contract: DevWorkAddress, Path: msg.Path(), Msg: raw})
	}
	return &gen, nil
}

func encode(msg cosmicroses.Msg) (json.RawMessage, error) {
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", msg.Path())
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "encode %s: %s", msg.Path(), err)
	}
	return raw, nil
}
