package orm

import (
	"reflect"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	cosmicroses.Persistent
	Validate() error
}

// ModelBucket stores models of a single type under a bucket namespace.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db cosmicroses.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database. Before saving, the model is
	// validated.
	Put(db cosmicroses.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db cosmicroses.KVStore, key []byte) error

	// Has returns nil if an entity with given primary key exists. It
	// returns ErrNotFound otherwise.
	Has(db cosmicroses.ReadOnlyKVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance that operates directly on
// the KVStore. Every key is prefixed with the bucket name.
func NewModelBucket(name string, m Model) ModelBucket {
	tp := reflect.TypeOf(m)
	return &modelBucket{
		prefix: []byte(name + ":"),
		model:  tp,
	}
}

type modelBucket struct {
	prefix []byte
	model  reflect.Type
}

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db cosmicroses.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %T", mb.model, dest)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := cosmicroses.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(err, "cannot unmarshal")
	}
	return nil
}

func (mb *modelBucket) Put(db cosmicroses.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %T in a %s bucket", m, mb.model)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := cosmicroses.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "cannot marshal")
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db cosmicroses.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return db.Delete(mb.dbKey(key))
}

func (mb *modelBucket) Has(db cosmicroses.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot check the database")
	}
	if !ok {
		return errors.Wrap(errors.ErrNotFound, "no such key")
	}
	return nil
}

var _ ModelBucket = (*modelBucket)(nil)
