package store

import (
	"path/filepath"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t testing.TB, db cosmicroses.ReadOnlyKVStore, key string) []byte {
	t.Helper()
	val, err := db.Get([]byte(key))
	require.NoError(t, err)
	return val
}

func has(t testing.TB, db cosmicroses.ReadOnlyKVStore, key string) bool {
	t.Helper()
	ok, err := db.Has([]byte(key))
	require.NoError(t, err)
	return ok
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, get(t, base, "french"))
	assert.False(t, has(t, base, "french"))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, get(t, base, "french"))
	assert.True(t, has(t, base, "french"))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, get(t, cache, "french"))

	// writing more data is only visible in the cache
	require.NoError(t, cache.Set([]byte("LA"), []byte("Dodgers")))
	assert.Equal(t, []byte("Dodgers"), get(t, cache, "LA"))
	assert.Nil(t, get(t, base, "LA"))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, []byte("Dodgers"), get(t, base, "LA"))

	// we can discard one
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set([]byte("Bayern"), []byte("Munich")))
	require.NoError(t, c2.Delete([]byte("french")))
	assert.False(t, has(t, c2, "french"))
	assert.True(t, has(t, base, "french"))
	c2.Discard()
	assert.False(t, has(t, base, "Bayern"))
	assert.True(t, has(t, base, "french"))

	// and deletes are written as well
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete([]byte("french")))
	require.NoError(t, c3.Write())
	assert.False(t, has(t, base, "french"))
}

func TestBTreeCacheCopiesValues(t *testing.T) {
	db := MemStore()
	val := []byte("abc")
	require.NoError(t, db.Set([]byte("k"), val))
	val[0] = 'x'
	assert.Equal(t, []byte("abc"), get(t, db, "k"))
}

func TestCacheWrapOpsAreSorted(t *testing.T) {
	wrap := MemStore().CacheWrap().(BTreeCacheWrap)
	require.NoError(t, wrap.Set([]byte("b"), []byte("2")))
	require.NoError(t, wrap.Delete([]byte("c")))
	require.NoError(t, wrap.Set([]byte("a"), []byte("1")))

	ops := wrap.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, []byte("a"), ops[0].Key())
	assert.Equal(t, []byte("b"), ops[1].Key())
	assert.True(t, ops[2].IsDelete())
}

func TestPrefixStore(t *testing.T) {
	db := MemStore()
	alice := NewPrefixStore(db, []byte("alice/"))
	bob := NewPrefixStore(db, []byte("bob/"))

	require.NoError(t, alice.Set([]byte("balance"), []byte("10")))
	require.NoError(t, bob.Set([]byte("balance"), []byte("20")))

	assert.Equal(t, []byte("10"), get(t, alice, "balance"))
	assert.Equal(t, []byte("20"), get(t, bob, "balance"))
	assert.Equal(t, []byte("10"), get(t, db, "alice/balance"))

	require.NoError(t, alice.Delete([]byte("balance")))
	assert.False(t, has(t, alice, "balance"))
	assert.True(t, has(t, bob, "balance"))
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "roses.db")
	db, err := OpenBoltStore(path)
	require.NoError(t, err)

	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	assert.Equal(t, []byte("1"), get(t, db, "a"))

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	assert.True(t, has(t, db, "a"))
	require.NoError(t, cache.Write())
	assert.False(t, has(t, db, "a"))
	require.NoError(t, db.Close())

	// Data survives reopening the database.
	db, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, []byte("2"), get(t, db, "b"))
}
