package proxy

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/rosestest/assert"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	"github.com/charlieabtbl/cosmicroses/x/work"
)

func newRuntime(t testing.TB) *app.Runtime {
	t.Helper()
	codes := app.NewCodeRegistry()
	codes.MustRegister(NewCode(codes))
	codes.MustRegister(work.NewCode())
	codes.MustRegister(work.NewCodeV2())
	return app.NewRuntime(store.MemStore(), codes, nil)
}

func loadString(t testing.TB) func(*cosmicroses.DeliverResult, error) string {
	return func(res *cosmicroses.DeliverResult, err error) string {
		t.Helper()
		assert.Nil(t, err)
		var r cosmicroses.StringResult
		assert.Nil(t, cosmicroses.LoadResult(res, &r))
		return r.Value
	}
}

func loadAddress(t testing.TB) func(*cosmicroses.DeliverResult, error) cosmicroses.Address {
	return func(res *cosmicroses.DeliverResult, err error) cosmicroses.Address {
		t.Helper()
		assert.Nil(t, err)
		var r cosmicroses.AddressResult
		assert.Nil(t, cosmicroses.LoadResult(res, &r))
		return r.Value
	}
}

func TestDeploy(t *testing.T) {
	cases := map[string]struct {
		impl    string
		wantErr *errors.Error
	}{
		"registered code": {
			impl: "work@1.0.0",
		},
		"unknown code": {
			impl:    "work@9.0.0",
			wantErr: errors.ErrNotFound,
		},
		"proxy of a proxy": {
			impl:    "proxy@1.0.0",
			wantErr: errors.ErrInput,
		},
		"malformed code id": {
			impl:    "work",
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rt := newRuntime(t)
			deployer := rosestest.NewCondition()
			p, err := rt.Deploy(context.Background(), deployer, "proxy@1.0.0", &DeployMsg{Implementation: tc.impl})
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			impl := loadString(t)(rt.Query(context.Background(), p, &GetImplementationMsg{}))
			assert.Equal(t, tc.impl, impl)
			admin := loadAddress(t)(rt.Query(context.Background(), p, &GetAdminMsg{}))
			assert.Equal(t, deployer.Address(), admin)
		})
	}
}

func TestUpgradeKeepsStorage(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(t)

	deployer := rosestest.NewCondition()
	proxyAdmin := rosestest.NewCondition()
	licensee := rosestest.NewCondition()

	p, err := rt.Deploy(ctx, deployer, "proxy@1.0.0", &DeployMsg{Implementation: "work@1.0.0"})
	assert.Nil(t, err)

	// Nothing but the initializer can be called before initialization.
	_, err = rt.Execute(ctx, licensee, p, &work.CreateRecordMsg{TokenURI: "test1.io", PayeesContract: proxyAdmin.Address()})
	assert.IsErr(t, errors.ErrState, err)

	_, err = rt.Execute(ctx, deployer, p, &work.InitializerMsg{
		Name:       "work",
		Symbol:     "WRK",
		ProxyAdmin: proxyAdmin.Address(),
	})
	assert.Nil(t, err)
	assert.Equal(t, proxyAdmin.Address(), loadAddress(t)(rt.Query(ctx, p, &GetAdminMsg{})))

	_, err = rt.Execute(ctx, deployer, p, &work.InitializerMsg{Name: "work", Symbol: "WRK"})
	assert.IsErr(t, errors.ErrAlreadyInitialized, err)

	_, err = rt.Execute(ctx, deployer, p, &access.GrantRoleMsg{Role: work.RecordingLicenseeRole, Account: licensee.Address()})
	assert.Nil(t, err)
	contributor := rosestest.NewCondition().Address()
	id, err := cosmicroses.Uint64(rt.Execute(ctx, licensee, p, &work.CreateRecordMsg{
		TokenURI:     "test1.io",
		Contributors: []*shares.Entry{{Address: contributor, Shares: 10}},
	}))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)

	_, err = rt.Execute(ctx, deployer, p, &work.SetVarMsg{Var: 7})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = rt.Execute(ctx, deployer, p, &UpgradeContractMsg{NewImplementation: "work@2.0.0"})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Execute(ctx, proxyAdmin, p, &UpgradeContractMsg{NewImplementation: "work@3.0.0"})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = rt.Execute(ctx, proxyAdmin, p, &UpgradeContractMsg{NewImplementation: "work@2.0.0"})
	assert.Nil(t, err)
	assert.Equal(t, "work@2.0.0", loadString(t)(rt.Query(ctx, p, &GetImplementationMsg{})))

	// The deployer is the work admin.
	_, err = rt.Execute(ctx, deployer, p, &work.SetVarMsg{Var: 7})
	assert.Nil(t, err)
	v, err := cosmicroses.Uint64(rt.Query(ctx, p, &work.GetVarMsg{}))
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), v)

	assert.Equal(t, "work", loadString(t)(rt.Query(ctx, p, &work.NameMsg{})))
	assert.Equal(t, licensee.Address(), loadAddress(t)(rt.Query(ctx, p, &work.OwnerOfMsg{TokenID: 1})))
	res, err := rt.Query(ctx, p, &work.GetRecordContributorByAddressMsg{TokenID: 1, Address: contributor})
	assert.Nil(t, err)
	var s shares.Share
	assert.Nil(t, cosmicroses.LoadResult(res, &s))
	assert.Equal(t, uint64(10), s.Shares)

	_, err = rt.Execute(ctx, proxyAdmin, p, &UpgradeContractMsg{NewImplementation: "work@1.0.0"})
	assert.IsErr(t, errors.ErrSchema, err)
	assert.Equal(t, "work@2.0.0", loadString(t)(rt.Query(ctx, p, &GetImplementationMsg{})))
}
