package store

import (
	"os"
	"path/filepath"

	"github.com/charlieabtbl/cosmicroses/errors"
	"go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// BoltStore is a persistent KVStore backed by a bbolt database. All keys are
// kept in a single bucket. Cache wraps of this store are written in a single
// database transaction.
type BoltStore struct {
	db *bbolt.DB
}

var _ CacheableKVStore = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "create directory: %s", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open bolt db: %s", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(errors.ErrDatabase, "create bucket: %s", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Get returns the value stored under the key or nil.
func (s *BoltStore) Get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(bucketState).Get(key); raw != nil {
			// bbolt memory is valid only during the transaction.
			value = clone(raw)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return value, nil
}

// Has checks if the key is stored.
func (s *BoltStore) Has(key []byte) (bool, error) {
	raw, err := s.Get(key)
	return raw != nil, err
}

// Set stores the value under the key in its own transaction.
func (s *BoltStore) Set(key, value []byte) error {
	return s.Commit([]Op{SetOp(key, value)})
}

// Delete removes the key in its own transaction.
func (s *BoltStore) Delete(key []byte) error {
	return s.Commit([]Op{DelOp(key)})
}

// Commit applies all operations in a single transaction.
func (s *BoltStore) Commit(ops []Op) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketState)
		for _, op := range ops {
			if op.IsDelete() {
				if err := b.Delete(op.Key()); err != nil {
					return err
				}
				continue
			}
			if err := b.Put(op.Key(), op.Value()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// CacheWrap returns a cache that is written to the database atomically.
func (s *BoltStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(s, s.Commit, nil)
}
