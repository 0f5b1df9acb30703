package store

import (
	"bytes"

	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/google/btree"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// CommitFunc persists a list of operations, sorted by key, in the backing
// storage. Backends that support transactions should apply all operations at
// once.
type CommitFunc func(ops []Op) error

// BTreeCacheable adds a simple btree-based CacheWrap
// strategy to a KVStore
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, applyTo(b.KVStore), nil)
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here. Never Write the returned store itself, use
// its cache wraps instead.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, applyTo(e), nil)
}

// applyTo returns a CommitFunc that writes operations one by one.
func applyTo(db KVStore) CommitFunc {
	return func(ops []Op) error {
		for _, op := range ops {
			if err := op.Apply(db); err != nil {
				return err
			}
		}
		return nil
	}
}

// BTreeCacheWrap places a btree cache over a KVStore
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	back   ReadOnlyKVStore
	commit CommitFunc
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store. Use
// ReadOnlyKVStore to emphasize that all writes must go through the commit
// function.
//
// free may be nil, but set to an existing list to reuse it
// for memory savings
func NewBTreeCacheWrap(kv ReadOnlyKVStore, commit CommitFunc, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:     btree.NewWithFreeList(2, free),
		free:   free,
		back:   kv,
		commit: commit,
	}
}

// CacheWrap layers another BTree on top of this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, applyTo(b), b.free)
}

// Ops returns all pending operations, sorted by key.
func (b BTreeCacheWrap) Ops() []Op {
	ops := make([]Op, 0, b.bt.Len())
	b.bt.Ascend(func(i btree.Item) bool {
		switch t := i.(type) {
		case setItem:
			ops = append(ops, SetOp(t.key, t.value))
		case deletedItem:
			ops = append(ops, DelOp(t.key))
		}
		return true
	})
	return ops
}

// Write syncs with the underlying store.
// And then cleans up
func (b BTreeCacheWrap) Write() error {
	if err := b.commit(b.Ops()); err != nil {
		return errors.Wrap(err, "commit")
	}
	b.Discard()
	return nil
}

// Discard invalidates this CacheWrap and releases all data
func (b BTreeCacheWrap) Discard() {
	// clean up the btree -> freelist
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree
func (b BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete marks the key as deleted in the BTree
func (b BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return nil
}

// Get reads from btree if there, else backing store
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value, nil
		case deletedItem:
			return nil, nil
		default:
			return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", res)
		}
	}
	return b.back.Get(key)
}

// Has reads from btree if there, else backing store
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch res.(type) {
		case setItem:
			return true, nil
		case deletedItem:
			return false, nil
		default:
			return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", res)
		}
	}
	return b.back.Has(key)
}

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{clone(key)}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{clone(key)}, clone(value)}
}

func clone(b []byte) []byte {
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}
