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

func TestGated(t *testing.T) {
	auth := &rosestest.CtxAuth{Key: "auth"}
	ctrl := NewController(auth)
	pauser := NewRole("GATE_PAUSER")

	alice := rosestest.NewCondition()
	bobby := rosestest.NewCondition()

	cases := map[string]struct {
		caller  cosmicroses.Condition
		wantErr *errors.Error
		calls   int
	}{
		"role holder is let through": {
			caller: alice,
			calls:  2,
		},
		"caller without the role is rejected": {
			caller:  bobby,
			wantErr: errors.ErrUnauthorized,
		},
		"anonymous caller is rejected": {
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, packageName)
			require.NoError(t, ctrl.Grant(db, pauser, alice.Address()))

			ctx := context.Background()
			if tc.caller != nil {
				ctx = auth.SetConditions(ctx, tc.caller)
			}

			next := &rosestest.Handler{}
			h := ctrl.Gated(pauser, next)
			tx := &rosestest.Tx{Msg: &rosestest.Msg{RoutePath: "gate/test"}}

			_, err := h.Check(ctx, db, tx)
			assert.True(t, tc.wantErr.Is(err), "check: %+v", err)
			_, err = h.Deliver(ctx, db, tx)
			assert.True(t, tc.wantErr.Is(err), "deliver: %+v", err)

			assert.Equal(t, tc.calls, next.CallCount())
		})
	}
}
