package shares

import (
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() cosmicroses.CacheableKVStore {
	db := store.MemStore()
	migration.MustInitPkg(db, packageName)
	return db
}

// assertTotal checks that the total equals the sum of all shares.
func assertTotal(t *testing.T, db cosmicroses.ReadOnlyKVStore, r *Registry, want uint64) {
	t.Helper()
	all, err := r.All(db)
	require.NoError(t, err)
	var sum uint64
	for _, s := range all {
		sum += s.Shares
	}
	total, err := r.TotalShares(db)
	require.NoError(t, err)
	assert.Equal(t, want, total)
	assert.Equal(t, sum, total)
}

func TestRegistrySet(t *testing.T) {
	a := rosestest.NewCondition().Address()
	b := rosestest.NewCondition().Address()
	c := rosestest.NewCondition().Address()

	db := newStore()
	r := NewRegistry("payees")
	assertTotal(t, db, r, 0)

	require.NoError(t, r.Set(db, a, 150))
	require.NoError(t, r.Set(db, b, 100))
	require.NoError(t, r.Set(db, c, 50))
	assertTotal(t, db, r, 300)

	// Update keeps the index.
	require.NoError(t, r.Set(db, a, 10))
	assertTotal(t, db, r, 160)
	s, err := r.ByIndex(db, 0)
	require.NoError(t, err)
	assert.Equal(t, a, s.Address)
	assert.Equal(t, uint64(10), s.Shares)

	count, err := r.Count(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)

	s, err = r.Lookup(db, c)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.Index)
	assert.Equal(t, uint64(50), s.Shares)

	_, err = r.ByIndex(db, 3)
	assert.True(t, errors.ErrOutOfRange.Is(err))

	_, err = r.Lookup(db, rosestest.NewCondition().Address())
	assert.True(t, errors.ErrNotFound.Is(err))

	assert.True(t, errors.ErrInvalidShare.Is(r.Set(db, a, 0)))
	assert.True(t, errors.ErrInvalidAddress.Is(r.Set(db, make(cosmicroses.Address, cosmicroses.AddressLength), 1)))
	assert.True(t, errors.ErrInvalidAddress.Is(r.Set(db, nil, 1)))
	assertTotal(t, db, r, 160)
}

func TestRegistrySetBatch(t *testing.T) {
	a := rosestest.NewCondition().Address()
	b := rosestest.NewCondition().Address()
	zero := make(cosmicroses.Address, cosmicroses.AddressLength)

	cases := map[string]struct {
		batch     []*Entry
		wantErr   *errors.Error
		wantTotal uint64
		wantCount uint64
	}{
		"valid batch": {
			batch:     []*Entry{{Address: a, Shares: 3}, {Address: b, Shares: 4}},
			wantTotal: 8,
			wantCount: 3,
		},
		"duplicate addresses apply in order": {
			batch:     []*Entry{{Address: a, Shares: 3}, {Address: a, Shares: 5}},
			wantTotal: 6,
			wantCount: 2,
		},
		"zero share rejects the whole batch": {
			batch:     []*Entry{{Address: a, Shares: 3}, {Address: b, Shares: 0}},
			wantErr:   errors.ErrInvalidShare,
			wantTotal: 1,
			wantCount: 1,
		},
		"zero address rejects the whole batch": {
			batch:     []*Entry{{Address: a, Shares: 3}, {Address: zero, Shares: 2}},
			wantErr:   errors.ErrInvalidAddress,
			wantTotal: 1,
			wantCount: 1,
		},
		"overflow rejects the whole batch": {
			batch:     []*Entry{{Address: a, Shares: 3}, {Address: b, Shares: ^uint64(0)}},
			wantErr:   errors.ErrOverflow,
			wantTotal: 1,
			wantCount: 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newStore()
			r := NewRegistry("work")
			require.NoError(t, r.Set(db, rosestest.NewCondition().Address(), 1))

			err := r.SetBatch(db, tc.batch)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assertTotal(t, db, r, tc.wantTotal)
			count, err := r.Count(db)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestRegistryScopes(t *testing.T) {
	a := rosestest.NewCondition().Address()
	db := newStore()

	work := NewRegistry("work")
	record := NewRegistry("record/1")
	require.NoError(t, work.Set(db, a, 7))
	require.NoError(t, record.Init(db, []*Entry{{Address: a, Shares: 2}}))

	err := record.Init(db, []*Entry{{Address: a, Shares: 3}})
	assert.True(t, errors.ErrDuplicate.Is(err))

	require.NoError(t, work.Set(db, a, 9))
	s, err := record.Lookup(db, a)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.Shares)
	assertTotal(t, db, work, 9)
	assertTotal(t, db, record, 2)
}

func TestOrZero(t *testing.T) {
	a := rosestest.NewCondition().Address()
	db := newStore()
	r := NewRegistry("work")

	s, err := OrZero(r.Lookup(db, a))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), s.Shares)

	s, err = r.Find(db, a)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), s.Shares)
	assert.Equal(t, a, s.Address)

	require.NoError(t, r.Set(db, a, 4))
	s, err = r.Find(db, a)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), s.Shares)

	_, err = OrZero(nil, errors.ErrDatabase)
	assert.True(t, errors.ErrDatabase.Is(err))
}
