package store

import "github.com/charlieabtbl/cosmicroses"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = cosmicroses.ReadOnlyKVStore
type KVStore = cosmicroses.KVStore
type CacheableKVStore = cosmicroses.CacheableKVStore
type KVCacheWrap = cosmicroses.KVCacheWrap

// Op is a single write operation, either a set or a delete, recorded by a
// cache wrap until it is written.
type Op struct {
	delete bool
	key    []byte
	value  []byte
}

// SetOp returns an Op that sets the key to the value.
func SetOp(key, value []byte) Op {
	return Op{key: key, value: value}
}

// DelOp returns an Op that deletes the key.
func DelOp(key []byte) Op {
	return Op{delete: true, key: key}
}

// IsDelete returns true for delete operations.
func (o Op) IsDelete() bool { return o.delete }

// Key returns the key this operation modifies.
func (o Op) Key() []byte { return o.key }

// Value returns the value set by this operation. It is nil for deletes.
func (o Op) Value() []byte { return o.value }

// Apply performs the operation on given store.
func (o Op) Apply(db cosmicroses.SetDeleter) error {
	if o.delete {
		return db.Delete(o.key)
	}
	return db.Set(o.key, o.value)
}

// EmptyKVStore never holds any data, used as a base layer of the in memory
// store.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

// Get always returns nil
func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

// Has always returns false
func (EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

// Set is a noop
func (EmptyKVStore) Set(key, value []byte) error { return nil }

// Delete is a noop
func (EmptyKVStore) Delete(key []byte) error { return nil }
