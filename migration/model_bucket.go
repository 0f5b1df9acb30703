package migration

import (
	"sort"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/orm"
)

// ModelBucket implements the orm.ModelBucket interface and provides the same
// functionality with additional model schema migration.
type ModelBucket struct {
	orm.ModelBucket
	packageName string
	schema      *SchemaBucket
	migrations  *register
}

var _ orm.ModelBucket = (*ModelBucket)(nil)

// NewModelBucket returns a bucket that keeps every model in the schema
// version of given package.
func NewModelBucket(packageName string, b orm.ModelBucket) *ModelBucket {
	return &ModelBucket{
		ModelBucket: b,
		packageName: packageName,
		schema:      NewSchemaBucket(),
		migrations:  reg,
	}
}

func (m *ModelBucket) One(db cosmicroses.ReadOnlyKVStore, key []byte, dest orm.Model) error {
	if err := m.ModelBucket.One(db, key, dest); err != nil {
		return err
	}
	if err := m.migrate(db, dest); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

func (m *ModelBucket) Put(db cosmicroses.KVStore, key []byte, model orm.Model) error {
	if err := m.migrate(db, model); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return m.ModelBucket.Put(db, key, model)
}

// useRegister will update this bucket to use a custom register instance
// instead of the global one. This is a private method meant to be used for
// tests only.
func (m *ModelBucket) useRegister(r *register) {
	m.migrations = r
}

func (m *ModelBucket) migrate(db cosmicroses.ReadOnlyKVStore, model orm.Model) error {
	mg, ok := model.(Migratable)
	if !ok {
		return errors.Wrap(errors.ErrModel, "model cannot be migrated")
	}
	currSchemaVer, err := m.schema.CurrentSchema(db, m.packageName)
	if err != nil {
		return errors.Wrapf(err, "current schema version of package %q", m.packageName)
	}

	meta := mg.GetMetadata()
	if meta == nil {
		return errors.Wrapf(errors.ErrMetadata, "%T metadata is nil", mg)
	}

	// In case of schema not being set we assume the code is expecting the
	// current version.
	if meta.Schema == 0 {
		meta.Schema = currSchemaVer
		return nil
	}
	if meta.Schema > currSchemaVer {
		return errors.Wrapf(errors.ErrSchema, "model schema higher than %d", currSchemaVer)
	}
	if meta.Schema == currSchemaVer {
		return nil
	}
	if err := m.migrations.Apply(db, mg, currSchemaVer); err != nil {
		return errors.Wrap(err, "schema migration")
	}
	return nil
}

func sortedKeys(m map[string]uint32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
