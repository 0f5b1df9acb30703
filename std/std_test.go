package std

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/charlieabtbl/cosmicroses/x/payees"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	"github.com/charlieabtbl/cosmicroses/x/token"
	"github.com/charlieabtbl/cosmicroses/x/work"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Equal(t, []string{
		"payees@1.0.0",
		"proxy@1.0.0",
		"token@1.0.0",
		"work@1.0.0",
		"work@2.0.0",
	}, codes.IDs())

	latest, err := codes.Latest("work")
	require.NoError(t, err)
	assert.Equal(t, "work@2.0.0", latest.ID())
}

func TestDevGenesis(t *testing.T) {
	ctx := context.Background()
	admin := rosestest.NewCondition()
	a := rosestest.NewCondition().Address()
	b := rosestest.NewCondition().Address()
	c := rosestest.NewCondition().Address()

	gen, err := DevGenesis(admin, []*shares.Entry{
		{Address: a, Shares: 150},
		{Address: b, Shares: 100},
		{Address: c, Shares: 50},
	}, 10000)
	require.NoError(t, err)

	// Go through the file format, the way the command line client does.
	raw, err := json.Marshal(gen)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, raw, 0600))
	loaded, err := app.LoadGenesis(path)
	require.NoError(t, err)

	rt := NewRuntime(store.MemStore(), nil)
	addrs, err := rt.InitGenesis(ctx, loaded)
	require.NoError(t, err)
	require.Equal(t, []cosmicroses.Address{DevTokenAddress, DevPayeesAddress, DevWorkAddress}, addrs)

	query := func(contract cosmicroses.Address, msg cosmicroses.Msg) uint64 {
		t.Helper()
		v, err := cosmicroses.Uint64(rt.Query(ctx, contract, msg))
		require.NoError(t, err)
		return v
	}

	assert.EqualValues(t, 10000, query(DevPayeesAddress, &payees.BalanceMsg{Token: DevTokenAddress}))
	assert.EqualValues(t, 5000, query(DevPayeesAddress, &payees.PendingPaymentMsg{Token: DevTokenAddress, Payee: a}))

	released, err := cosmicroses.Uint64(rt.Execute(ctx, admin, DevPayeesAddress, &payees.ReleaseMsg{Token: DevTokenAddress, Payee: a}))
	require.NoError(t, err)
	assert.EqualValues(t, 5000, released)

	assert.EqualValues(t, 5000, query(DevTokenAddress, &token.BalanceOfMsg{Owner: a}))
	assert.EqualValues(t, 5000, query(DevPayeesAddress, &payees.BalanceMsg{Token: DevTokenAddress}))
	assert.EqualValues(t, 5000, query(DevPayeesAddress, &payees.ReleasedMsg{Token: DevTokenAddress, Payee: a}))
	assert.EqualValues(t, 5000, query(DevPayeesAddress, &payees.TotalReleasedMsg{Token: DevTokenAddress}))
	assert.EqualValues(t, 0, query(DevPayeesAddress, &payees.PendingPaymentMsg{Token: DevTokenAddress, Payee: a}))
	assert.EqualValues(t, 3333, query(DevPayeesAddress, &payees.PendingPaymentMsg{Token: DevTokenAddress, Payee: b}))

	_, err = rt.Execute(ctx, admin, DevPayeesAddress, &payees.ReleaseMsg{Token: DevTokenAddress, Payee: a})
	assert.True(t, errors.ErrNothingDue.Is(err), "unexpected error: %+v", err)

	// The work is served through the proxy and paid by the splitter.
	res, err := rt.Query(ctx, DevWorkAddress, &work.GetWorkPayeesContractMsg{})
	require.NoError(t, err)
	var payeesContract cosmicroses.AddressResult
	require.NoError(t, cosmicroses.LoadResult(res, &payeesContract))
	assert.Equal(t, DevPayeesAddress, payeesContract.Value)

	id, err := cosmicroses.Uint64(rt.Execute(ctx, admin, DevWorkAddress, &work.CreateRecordMsg{
		TokenURI:       "rose.io/1",
		PayeesContract: DevPayeesAddress,
	}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	instances, err := rt.Instances()
	require.NoError(t, err)
	require.Len(t, instances, 3)
	assert.Equal(t, "proxy@1.0.0", instances[2].Code)
	assert.True(t, instances[2].Initialized)
}
