/*
Package gconf implements a configuration store intended to be used as a
per-instance, in-database configuration singleton.

Each package stores at most one configuration object in a contract namespace.
The configuration can be initialized from the deployment options and is
validated before every write.
*/
package gconf

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// ReadStore is a subset of cosmicroses.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of cosmicroses.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by every configuration object.
type Configuration interface {
	cosmicroses.Persistent
	Validate() error
}

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src Configuration) error {
	k := key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", k)
	}
	raw, err := cosmicroses.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", k)
	}
	return db.Set(k, raw)
}

// Load reads the configuration of given package into dst. It returns
// ErrNotFound if the configuration was never saved.
func Load(db ReadStore, pkg string, dst Configuration) error {
	k := key(pkg)
	raw, err := db.Get(k)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", k)
	}
	if err := cosmicroses.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", k)
	}
	return nil
}

// Exists returns true if a configuration of given package was saved.
func Exists(db ReadStore, pkg string) (bool, error) {
	raw, err := db.Get(key(pkg))
	if err != nil {
		return false, err
	}
	return raw != nil, nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given
// Configuration object, validate it, and store under the proper key in the
// database.
func InitConfig(db Store, opts cosmicroses.Options, pkg string, conf Configuration) error {
	var confOptions cosmicroses.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
