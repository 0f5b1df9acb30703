package store

import "github.com/charlieabtbl/cosmicroses"

// PrefixStore namespaces every key of the wrapped store. Contract instances
// are given a prefix store so that no instance can read or modify the data
// of another one.
type PrefixStore struct {
	prefix []byte
	parent KVStore
}

var _ KVStore = PrefixStore{}

// NewPrefixStore returns a store that prepends given prefix to every key.
func NewPrefixStore(parent KVStore, prefix []byte) PrefixStore {
	return PrefixStore{prefix: clone(prefix), parent: parent}
}

func (p PrefixStore) key(k []byte) []byte {
	if k == nil {
		panic("nil key")
	}
	full := make([]byte, 0, len(p.prefix)+len(k))
	full = append(full, p.prefix...)
	return append(full, k...)
}

// Get reads the namespaced key from the parent store.
func (p PrefixStore) Get(key []byte) ([]byte, error) {
	return p.parent.Get(p.key(key))
}

// Has checks the namespaced key in the parent store.
func (p PrefixStore) Has(key []byte) (bool, error) {
	return p.parent.Has(p.key(key))
}

// Set writes the namespaced key to the parent store.
func (p PrefixStore) Set(key, value []byte) error {
	return p.parent.Set(p.key(key), value)
}

// Delete removes the namespaced key from the parent store.
func (p PrefixStore) Delete(key []byte) error {
	return p.parent.Delete(p.key(key))
}

// ContractPrefix returns the storage namespace of a contract instance.
func ContractPrefix(addr cosmicroses.Address) []byte {
	return append([]byte("c:"+addr.String()), '/')
}
