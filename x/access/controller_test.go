package access

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController(t *testing.T) {
	auth := &rosestest.CtxAuth{Key: "auth"}
	ctrl := NewController(auth)

	db := store.MemStore()
	migration.MustInitPkg(db, packageName)

	admin := rosestest.NewCondition()
	alice := rosestest.NewCondition()
	minter := NewRole("MINTER")

	require.NoError(t, ctrl.Bootstrap(db, admin.Address()))
	err := ctrl.Bootstrap(db, alice.Address())
	assert.True(t, errors.ErrAlreadyInitialized.Is(err))

	got, err := ctrl.BootstrapAdmin(db)
	require.NoError(t, err)
	assert.Equal(t, admin.Address(), got)

	ok, err := ctrl.HasRole(db, DefaultAdminRole, admin.Address())
	require.NoError(t, err)
	assert.True(t, ok)

	// Granting twice is a no-op.
	require.NoError(t, ctrl.Grant(db, minter, alice.Address()))
	require.NoError(t, ctrl.Grant(db, minter, alice.Address()))
	ok, err = ctrl.HasRole(db, minter, alice.Address())
	require.NoError(t, err)
	assert.True(t, ok)

	// Revoking a never granted role keeps it not held.
	require.NoError(t, ctrl.Revoke(db, minter, admin.Address()))
	ok, err = ctrl.HasRole(db, minter, admin.Address())
	require.NoError(t, err)
	assert.False(t, ok)

	ctx := auth.SetConditions(context.Background(), alice)
	caller, err := ctrl.RequireRole(ctx, db, minter)
	require.NoError(t, err)
	assert.Equal(t, alice.Address(), caller)

	_, err = ctrl.RequireRole(ctx, db, DefaultAdminRole)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Contains(t, err.Error(), "caller is missing role 0")

	_, err = ctrl.RequireRole(context.Background(), db, minter)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	require.NoError(t, ctrl.Revoke(db, minter, alice.Address()))
	_, err = ctrl.RequireRole(ctx, db, minter)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestHandlers(t *testing.T) {
	auth := &rosestest.CtxAuth{Key: "auth"}
	admin := rosestest.NewCondition()
	alice := rosestest.NewCondition()
	pauser := NewRole("PAUSER")

	cases := map[string]struct {
		caller        cosmicroses.Condition
		msg           cosmicroses.Msg
		wantErr       *errors.Error
		wantPauser    bool
		aliceIsPauser bool
	}{
		"admin grants a role": {
			caller:     admin,
			msg:        &GrantRoleMsg{Role: pauser, Account: alice.Address()},
			wantPauser: true,
		},
		"non admin cannot grant": {
			caller:  alice,
			msg:     &GrantRoleMsg{Role: pauser, Account: alice.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		"unsigned call cannot grant": {
			msg:     &GrantRoleMsg{Role: pauser, Account: alice.Address()},
			wantErr: errors.ErrUnauthorized,
		},
		"zero address cannot be granted": {
			caller:  admin,
			msg:     &GrantRoleMsg{Role: pauser, Account: make(cosmicroses.Address, cosmicroses.AddressLength)},
			wantErr: errors.ErrInvalidAddress,
		},
		"non admin with a malformed grant is unauthorized": {
			caller:  alice,
			msg:     &GrantRoleMsg{Role: pauser, Account: make(cosmicroses.Address, cosmicroses.AddressLength)},
			wantErr: errors.ErrUnauthorized,
		},
		"admin revokes a role": {
			caller:        admin,
			msg:           &RevokeRoleMsg{Role: pauser, Account: alice.Address()},
			aliceIsPauser: true,
		},
		"non admin cannot revoke": {
			caller:        alice,
			msg:           &RevokeRoleMsg{Role: pauser, Account: alice.Address()},
			aliceIsPauser: true,
			wantErr:       errors.ErrUnauthorized,
			wantPauser:    true,
		},
		"holder renounces a role": {
			caller:        alice,
			msg:           &RenounceRoleMsg{Role: pauser},
			aliceIsPauser: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, packageName)
			ctrl := NewController(auth)
			require.NoError(t, ctrl.Bootstrap(db, admin.Address()))
			if tc.aliceIsPauser {
				require.NoError(t, ctrl.Grant(db, pauser, alice.Address()))
			}

			rt := newRouter()
			RegisterRoutes(rt, auth)

			ctx := context.Background()
			if tc.caller != nil {
				ctx = auth.SetConditions(ctx, tc.caller)
			}
			tx := &rosestest.Tx{Msg: tc.msg}
			_, err := rt.routes[tc.msg.Path()].Check(ctx, db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			_, err = rt.routes[tc.msg.Path()].Deliver(ctx, db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			res, err := rt.routes[pathHasRoleMsg].Deliver(ctx, db, &rosestest.Tx{
				Msg: &HasRoleMsg{Role: pauser, Account: alice.Address()},
			})
			ok, err := cosmicroses.Bool(res, err)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPauser, ok)
		})
	}
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
