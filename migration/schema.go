package migration

import (
	"encoding/binary"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

// Schema declares that the data of a package is stored using given version.
type Schema struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pkg      string                `protobuf:"bytes,2,opt,name=pkg,proto3" json:"pkg,omitempty"`
	Version  uint32                `protobuf:"varint,3,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *Schema) Reset()         { *m = Schema{} }
func (m *Schema) String() string { return proto.CompactTextString(m) }
func (*Schema) ProtoMessage()    {}

func (s *Schema) GetMetadata() *cosmicroses.Metadata {
	return s.Metadata
}

func (s *Schema) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if s.Version < 1 {
		return errors.Wrap(errors.ErrModel, "version must be greater than zero")
	}
	if s.Pkg == "" {
		return errors.Wrap(errors.ErrModel, "pkg is required")
	}
	return nil
}

// schemaID returns a deterministic ID of this schema instance. Created IDs
// can be sorted using lexicographical order from the lowest to the highest
// version.
func schemaID(pkg string, version uint32) []byte {
	raw := make([]byte, len(pkg)+4)
	copy(raw, pkg)
	binary.BigEndian.PutUint32(raw[len(pkg):], version)
	return raw
}

// SchemaBucket keeps the schema versions of the packages whose data is kept
// in the store.
type SchemaBucket struct {
	b orm.ModelBucket
}

// NewSchemaBucket returns a bucket tracking the schema versions.
func NewSchemaBucket() *SchemaBucket {
	// Schema bucket is using plain orm implementation so that is can insert
	// entities without schema version being registered. It cannot use
	// migration implementation bucket because it would cause circular
	// dependency on itself.
	return &SchemaBucket{b: orm.NewModelBucket("_schema", &Schema{})}
}

// CurrentSchema returns the current version of the schema for a given package.
// It returns ErrNotFound if no schema version was registered for this package.
// Minimum schema version is 1.
func (b *SchemaBucket) CurrentSchema(db cosmicroses.ReadOnlyKVStore, packageName string) (uint32, error) {
	for ver := uint32(1); ver < 10000; ver++ {
		err := b.b.Has(db, schemaID(packageName, ver))
		switch {
		case err == nil:
			continue
		case !errors.ErrNotFound.Is(err):
			return 0, errors.Wrap(err, "bucket has")
		case ver == 1:
			return 0, errors.Wrapf(errors.ErrNotFound, "schema of %q not initialized", packageName)
		default:
			return ver - 1, nil
		}
	}
	return 0, errors.Wrap(errors.ErrState, "version too high")
}

// Upgrade moves the schema version of a package to given version. All
// intermediate versions are registered as well. Upgrading to the current
// version is a no-op. Downgrading fails with ErrSchema.
func (b *SchemaBucket) Upgrade(db cosmicroses.KVStore, packageName string, version uint32) error {
	if version < 1 {
		return errors.Wrap(errors.ErrInput, "version must be greater than zero")
	}
	current, err := b.CurrentSchema(db, packageName)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		current = 0
	default:
		return err
	}
	if version < current {
		return errors.Wrapf(errors.ErrSchema, "package %q is at version %d, cannot downgrade to %d", packageName, current, version)
	}
	for v := current + 1; v <= version; v++ {
		s := &Schema{
			Metadata: &cosmicroses.Metadata{Schema: 1},
			Pkg:      packageName,
			Version:  v,
		}
		if err := b.b.Put(db, schemaID(packageName, v), s); err != nil {
			return errors.Wrapf(err, "schema %q version %d", packageName, v)
		}
	}
	return nil
}

// InitPkg initialize schema versioning for given package names. This
// registers a version one schema. It is safe to call this function many
// times.
func InitPkg(db cosmicroses.KVStore, packageNames ...string) error {
	b := NewSchemaBucket()
	for _, name := range packageNames {
		if err := b.Upgrade(db, name, 1); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}

// MustInitPkg is InitPkg that panics on failure. Use it in tests.
func MustInitPkg(db cosmicroses.KVStore, packageNames ...string) {
	if err := InitPkg(db, packageNames...); err != nil {
		panic(err)
	}
}

// Upgrade moves the schema of each package to the version given in the map.
func Upgrade(db cosmicroses.KVStore, versions map[string]uint32) error {
	b := NewSchemaBucket()
	for _, pkg := range sortedKeys(versions) {
		if err := b.Upgrade(db, pkg, versions[pkg]); err != nil {
			return err
		}
	}
	return nil
}
