package payees

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPayees(t *testing.T) {
	auth := &rosestest.CtxAuth{Key: "auth"}
	admin := rosestest.NewCondition()
	alice := rosestest.NewCondition()
	a := rosestest.NewCondition().Address()
	b := rosestest.NewCondition().Address()

	cases := map[string]struct {
		caller     cosmicroses.Condition
		msg        cosmicroses.Msg
		wantErr    *errors.Error
		wantCount  uint64
		wantShares uint64
	}{
		"admin adds a payee": {
			caller:     admin,
			msg:        &SetPayeeMsg{Address: b, Shares: 20},
			wantCount:  2,
			wantShares: 30,
		},
		"admin updates a payee": {
			caller:     admin,
			msg:        &SetPayeeMsg{Address: a, Shares: 1},
			wantCount:  1,
			wantShares: 1,
		},
		"non admin cannot set": {
			caller:     alice,
			msg:        &SetPayeeMsg{Address: b, Shares: 20},
			wantErr:    errors.ErrUnauthorized,
			wantCount:  1,
			wantShares: 10,
		},
		"non admin with zero share is unauthorized": {
			caller:     alice,
			msg:        &SetPayeeMsg{Address: b, Shares: 0},
			wantErr:    errors.ErrUnauthorized,
			wantCount:  1,
			wantShares: 10,
		},
		"zero share": {
			caller:     admin,
			msg:        &SetPayeeMsg{Address: b, Shares: 0},
			wantErr:    errors.ErrInvalidShare,
			wantCount:  1,
			wantShares: 10,
		},
		"batch applies all entries": {
			caller: admin,
			msg: &SetBatchPayeesMsg{Payees: []*shares.Entry{
				{Address: a, Shares: 5},
				{Address: b, Shares: 7},
			}},
			wantCount:  2,
			wantShares: 12,
		},
		"batch with an invalid entry is rejected": {
			caller: admin,
			msg: &SetBatchPayeesMsg{Payees: []*shares.Entry{
				{Address: b, Shares: 7},
				{Address: cosmicroses.Address("short"), Shares: 1},
			}},
			wantErr:    errors.ErrInvalidAddress,
			wantCount:  1,
			wantShares: 10,
		},
		"empty batch": {
			caller:     admin,
			msg:        &SetBatchPayeesMsg{},
			wantErr:    errors.ErrEmpty,
			wantCount:  1,
			wantShares: 10,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, packageName, "shares", "access")

			rt := newRouter()
			RegisterRoutes(rt, auth, &tokenMock{})

			ctx := auth.SetConditions(context.Background(), admin)
			_, err := rt.routes[pathInitMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &InitMsg{
				Payees: []*shares.Entry{{Address: a, Shares: 10}},
			}})
			require.NoError(t, err)

			ctx = auth.SetConditions(context.Background(), tc.caller)
			cache := db.CacheWrap()
			_, err = rt.routes[tc.msg.Path()].Deliver(ctx, cache, &rosestest.Tx{Msg: tc.msg})
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				require.NoError(t, cache.Write())
			} else {
				cache.Discard()
			}

			count, err := cosmicroses.Uint64(rt.routes[pathPayeesCountMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &PayeesCountMsg{}}))
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, count)
			total, err := cosmicroses.Uint64(rt.routes[pathTotalSharesMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &TotalSharesMsg{}}))
			require.NoError(t, err)
			assert.Equal(t, tc.wantShares, total)
		})
	}
}

func TestPayeeQueries(t *testing.T) {
	auth := &rosestest.CtxAuth{Key: "auth"}
	admin := rosestest.NewCondition()
	a := rosestest.NewCondition().Address()
	b := rosestest.NewCondition().Address()

	db := store.MemStore()
	migration.MustInitPkg(db, packageName, "shares", "access")
	rt := newRouter()
	RegisterRoutes(rt, auth, &tokenMock{})

	ctx := auth.SetConditions(context.Background(), admin)
	_, err := rt.routes[pathInitMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &InitMsg{
		Payees: []*shares.Entry{{Address: a, Shares: 3}, {Address: b, Shares: 4}},
	}})
	require.NoError(t, err)

	// The initializer runs once per namespace.
	_, err = rt.routes[pathInitMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &InitMsg{}})
	assert.True(t, errors.ErrAlreadyInitialized.Is(err))

	res, err := rt.routes[pathGetPayeeByIndexMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &GetPayeeByIndexMsg{Index: 1}})
	require.NoError(t, err)
	var s shares.Share
	require.NoError(t, cosmicroses.LoadResult(res, &s))
	assert.Equal(t, b, s.Address)
	assert.Equal(t, uint64(4), s.Shares)

	_, err = rt.routes[pathGetPayeeByIndexMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &GetPayeeByIndexMsg{Index: 2}})
	assert.True(t, errors.ErrOutOfRange.Is(err))

	res, err = rt.routes[pathGetPayeeByAddressMsg].Deliver(ctx, db, &rosestest.Tx{Msg: &GetPayeeByAddressMsg{Address: a}})
	require.NoError(t, err)
	require.NoError(t, cosmicroses.LoadResult(res, &s))
	assert.Equal(t, uint64(3), s.Shares)
	assert.Equal(t, uint64(0), s.Index)

	_, err = rt.routes[pathGetPayeeByAddressMsg].Deliver(ctx, db, &rosestest.Tx{
		Msg: &GetPayeeByAddressMsg{Address: rosestest.NewCondition().Address()},
	})
	assert.True(t, errors.ErrNotFound.Is(err))
}

// router is a minimal registry used to access registered handlers.
type router struct {
	routes map[string]cosmicroses.Handler
}

func newRouter() *router {
	return &router{routes: make(map[string]cosmicroses.Handler)}
}

func (r *router) Handle(path string, h cosmicroses.Handler) {
	r.routes[path] = h
}
