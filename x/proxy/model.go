package proxy

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

const packageName = "proxy"

// State is the configuration of a proxy instance.
type State struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Implementation is the identifier of the code serving the calls.
	Implementation string              `protobuf:"bytes,2,opt,name=implementation,proto3" json:"implementation"`
	Admin          cosmicroses.Address `protobuf:"bytes,3,opt,name=admin,proto3,casttype=Address" json:"admin"`
	// Initialized is set once the implementation initializer was called.
	Initialized bool `protobuf:"varint,4,opt,name=initialized,proto3" json:"initialized"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

func (m *State) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *State) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if _, _, err := app.ParseCodeID(m.Implementation); err != nil {
		return errors.Wrap(err, "implementation")
	}
	if err := m.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

var stateKey = []byte("state")

// StateBucket keeps the proxy state singleton.
type StateBucket struct {
	orm.ModelBucket
}

// NewStateBucket returns a bucket for the proxy state.
func NewStateBucket() *StateBucket {
	return &StateBucket{
		ModelBucket: migration.NewModelBucket(packageName, orm.NewModelBucket("proxy", &State{})),
	}
}

// Load returns the proxy state.
func (b *StateBucket) Load(db cosmicroses.ReadOnlyKVStore) (*State, error) {
	var s State
	if err := b.One(db, stateKey, &s); err != nil {
		return nil, errors.Wrap(err, "proxy state")
	}
	return &s, nil
}

// Save stores the proxy state.
func (b *StateBucket) Save(db cosmicroses.KVStore, s *State) error {
	if s.Metadata == nil {
		s.Metadata = &cosmicroses.Metadata{}
	}
	return b.Put(db, stateKey, s)
}
