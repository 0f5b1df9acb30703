package work

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

const packageName = "work"

func init() {
	// Schema 2 appends Var to the configuration. Its zero value is the
	// migrated state.
	migration.MustRegister(2, &Config{}, migration.NoModification)
	migration.MustRegister(2, &Record{}, migration.NoModification)
	migration.MustRegister(2, &Holding{}, migration.NoModification)
}

// Config is the state of a work.
type Config struct {
	Metadata       *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Name           string                `protobuf:"bytes,2,opt,name=name,proto3" json:"name"`
	Symbol         string                `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol"`
	PayeesContract cosmicroses.Address   `protobuf:"bytes,4,opt,name=payees_contract,json=payeesContract,proto3,casttype=Address" json:"payees_contract,omitempty"`
	Paused         bool                  `protobuf:"varint,5,opt,name=paused,proto3" json:"paused"`
	// Var is available since schema 2.
	Var uint64 `protobuf:"varint,6,opt,name=var,proto3" json:"var"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

func (m *Config) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Config) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if m.Symbol == "" {
		return errors.Wrap(errors.ErrEmpty, "symbol")
	}
	if len(m.PayeesContract) != 0 {
		if err := m.PayeesContract.Validate(); err != nil {
			return errors.Wrap(err, "payees contract")
		}
	}
	if m.Metadata.Schema < 2 && m.Var != 0 {
		return errors.Wrap(errors.ErrSchema, "var requires schema 2")
	}
	return nil
}

// Record is a minted token. Its contributors are kept in the record scope
// of the shares registry unless the record is paid by a splitter contract.
type Record struct {
	Metadata       *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	TokenID        uint64                `protobuf:"varint,2,opt,name=token_id,json=tokenId,proto3" json:"token_id"`
	Owner          cosmicroses.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=Address" json:"owner"`
	TokenURI       string                `protobuf:"bytes,4,opt,name=token_uri,json=tokenUri,proto3" json:"token_uri"`
	PayeesContract cosmicroses.Address   `protobuf:"bytes,5,opt,name=payees_contract,json=payeesContract,proto3,casttype=Address" json:"payees_contract,omitempty"`
	Approved       cosmicroses.Address   `protobuf:"bytes,6,opt,name=approved,proto3,casttype=Address" json:"approved,omitempty"`
}

func (m *Record) Reset()         { *m = Record{} }
func (m *Record) String() string { return proto.CompactTextString(m) }
func (*Record) ProtoMessage()    {}

func (m *Record) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Record) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.TokenID == 0 {
		return errors.Wrap(errors.ErrModel, "token id is required")
	}
	if err := m.Owner.ValidateOwner(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(m.PayeesContract) != 0 {
		if err := m.PayeesContract.Validate(); err != nil {
			return errors.Wrap(err, "payees contract")
		}
	}
	if len(m.Approved) != 0 {
		if err := m.Approved.Validate(); err != nil {
			return errors.Wrap(err, "approved")
		}
	}
	return nil
}

// Holding is the number of records owned by an address.
type Holding struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    cosmicroses.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=Address" json:"owner"`
	Count    uint64                `protobuf:"varint,3,opt,name=count,proto3" json:"count"`
}

func (m *Holding) Reset()         { *m = Holding{} }
func (m *Holding) String() string { return proto.CompactTextString(m) }
func (*Holding) ProtoMessage()    {}

func (m *Holding) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Holding) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return m.Owner.Validate()
}

var configKey = []byte("config")

// ConfigBucket keeps the configuration singleton.
type ConfigBucket struct {
	orm.ModelBucket
}

// NewConfigBucket returns a bucket for the work configuration.
func NewConfigBucket() *ConfigBucket {
	return &ConfigBucket{
		ModelBucket: migration.NewModelBucket(packageName, orm.NewModelBucket("workconf", &Config{})),
	}
}

// Load returns the configuration. It fails with ErrState if the work was
// not initialized.
func (b *ConfigBucket) Load(db cosmicroses.ReadOnlyKVStore) (*Config, error) {
	var c Config
	switch err := b.One(db, configKey, &c); {
	case err == nil:
		return &c, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrState, "work not initialized")
	default:
		return nil, err
	}
}

// Save stores the configuration.
func (b *ConfigBucket) Save(db cosmicroses.KVStore, c *Config) error {
	return b.Put(db, configKey, c)
}

// Exists returns true if the configuration was stored.
func (b *ConfigBucket) Exists(db cosmicroses.ReadOnlyKVStore) (bool, error) {
	switch err := b.Has(db, configKey); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}
