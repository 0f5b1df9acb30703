/*
Package std registers all deployable codes of the project and wires them
into a runtime.

It is a good place to see how the contracts are put together. The command
line client and the integration tests build on it.
*/
package std

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/x/payees"
	"github.com/charlieabtbl/cosmicroses/x/proxy"
	"github.com/charlieabtbl/cosmicroses/x/token"
	"github.com/charlieabtbl/cosmicroses/x/work"
	"github.com/tendermint/tendermint/libs/log"
)

// Codes returns a registry with every code that can be deployed.
func Codes() *app.CodeRegistry {
	codes := app.NewCodeRegistry()
	codes.MustRegister(token.NewCode())
	codes.MustRegister(payees.NewCode())
	codes.MustRegister(work.NewCode())
	codes.MustRegister(work.NewCodeV2())
	codes.MustRegister(proxy.NewCode(codes))
	return codes
}

// NewRuntime returns a runtime serving all codes over given store.
func NewRuntime(db cosmicroses.CacheableKVStore, logger log.Logger) *app.Runtime {
	return app.NewRuntime(db, Codes(), logger)
}
