package migration

import (
	"reflect"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Migratable is implemented by all schema versioned models.
type Migratable interface {
	GetMetadata() *cosmicroses.Metadata
	Validate() error
}

// Migrator is a function that migrates a model from version
// requiredVersion-1 to requested version.
type Migrator func(db cosmicroses.ReadOnlyKVStore, m Migratable) error

// NoModification is a migration function that migrates data that requires no
// change. It should be used to register migrations that do not require any
// modifications.
func NoModification(db cosmicroses.ReadOnlyKVStore, m Migratable) error {
	return nil
}

func newRegister() *register {
	return &register{
		handlers: make(map[payloadVersion]Migrator),
	}
}

type register struct {
	handlers map[payloadVersion]Migrator
}

// payloadVersion references a model at a given schema version.
type payloadVersion struct {
	payload reflect.Type
	version uint32
}

func (r *register) MustRegister(migrationTo uint32, m Migratable, fn Migrator) {
	if err := r.Register(migrationTo, m, fn); err != nil {
		panic(err)
	}
}

func (r *register) Register(migrationTo uint32, m Migratable, fn Migrator) error {
	if migrationTo < 2 {
		return errors.Wrap(errors.ErrInput, "first migration is to version 2")
	}
	tp, err := structType(m)
	if err != nil {
		return err
	}
	pv := payloadVersion{
		version: migrationTo,
		payload: tp,
	}
	if _, ok := r.handlers[pv]; ok {
		return errors.Wrapf(errors.ErrDuplicate, "already registered: %s.%s:%d", tp.PkgPath(), tp.Name(), migrationTo)
	}
	r.handlers[pv] = fn
	return nil
}

func (r *register) Apply(db cosmicroses.ReadOnlyKVStore, m Migratable, migrateTo uint32) error {
	tp, err := structType(m)
	if err != nil {
		return err
	}
	meta := m.GetMetadata()
	if meta == nil {
		return errors.Wrap(errors.ErrMetadata, "nil metadata")
	}
	for v := meta.Schema + 1; v <= migrateTo; v++ {
		migrate, ok := r.handlers[payloadVersion{payload: tp, version: v}]
		if !ok {
			return errors.Wrapf(errors.ErrSchema, "%s migration to version %d missing", tp.Name(), v)
		}
		if err := migrate(db, m); err != nil {
			return errors.Wrapf(err, "migration to version %d", v)
		}
		meta.Schema = v
	}

	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "validation")
	}
	return nil
}

func structType(m Migratable) (reflect.Type, error) {
	tp := reflect.TypeOf(m)
	for tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}
	if tp.Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "only struct can be migrated, got %T", m)
	}
	return tp, nil
}

// reg is a globally available register instance that must be used during the
// runtime to register migration handlers.
// Register is declared as a separate type so that it can be tested without
// worrying about the global state.
var reg = newRegister()

// MustRegister registers a migration function of a model to given schema
// version. It panics on duplicated registration.
func MustRegister(migrationTo uint32, m Migratable, fn Migrator) {
	reg.MustRegister(migrationTo, m, fn)
}

// Apply updates a model by applying all missing data migrations.
//
// Because changes are applied directly on the passed model, even if this
// function fails some of the data migrations might be applied.
//
// Validation method is called only on the final version of the model.
func Apply(db cosmicroses.ReadOnlyKVStore, m Migratable, migrateTo uint32) error {
	return reg.Apply(db, m, migrateTo)
}
