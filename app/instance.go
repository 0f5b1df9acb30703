package app

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

// Instance is a deployed contract.
type Instance struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Address is derived from the contract condition of the instance.
	Address cosmicroses.Address `protobuf:"bytes,2,opt,name=address,proto3,casttype=Address" json:"address"`
	// Code is the identifier of the code executed by this instance.
	Code string `protobuf:"bytes,3,opt,name=code,proto3" json:"code"`
	// Initialized is set once the init path was processed.
	Initialized bool `protobuf:"varint,4,opt,name=initialized,proto3" json:"initialized"`
	// Deployer is the address of the caller that created the instance.
	Deployer cosmicroses.Address `protobuf:"bytes,5,opt,name=deployer,proto3,casttype=Address" json:"deployer"`
	// Seq is the deployment sequence number.
	Seq uint64 `protobuf:"varint,6,opt,name=seq,proto3" json:"seq"`
}

func (m *Instance) Reset()         { *m = Instance{} }
func (m *Instance) String() string { return proto.CompactTextString(m) }
func (*Instance) ProtoMessage()    {}

func (m *Instance) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Instance) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if m.Code == "" {
		return errors.Wrap(errors.ErrModel, "code is required")
	}
	if m.Seq == 0 {
		return errors.Wrap(errors.ErrModel, "sequence is required")
	}
	return nil
}

// ContractCondition returns the condition of the contract instance with
// given deployment sequence. Its address is the address of the instance.
func ContractCondition(seq uint64) cosmicroses.Condition {
	return cosmicroses.NewCondition("contract", "instance", orm.EncodeSequence(seq))
}

// ContractAddress returns the address of the contract instance with given
// deployment sequence. Addresses are deterministic, so that a genesis file
// can reference contracts deployed before.
func ContractAddress(seq uint64) cosmicroses.Address {
	return ContractCondition(seq).Address()
}

// InstanceBucket keeps all deployed instances, indexed by address.
type InstanceBucket struct {
	orm.ModelBucket
	seq orm.Sequence
}

// NewInstanceBucket returns a bucket for the deployed instances.
func NewInstanceBucket() *InstanceBucket {
	return &InstanceBucket{
		ModelBucket: orm.NewModelBucket("instance", &Instance{}),
		seq:         orm.NewSequence("instance", "id"),
	}
}

// Create allocates the next sequence and stores a new, not yet initialized
// instance of given code.
func (b *InstanceBucket) Create(db cosmicroses.KVStore, code string, deployer cosmicroses.Address) (*Instance, error) {
	seq, err := b.seq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "instance sequence")
	}
	inst := &Instance{
		Metadata: &cosmicroses.Metadata{Schema: 1},
		Address:  ContractAddress(seq),
		Code:     code,
		Deployer: deployer,
		Seq:      seq,
	}
	if err := b.Put(db, inst.Address, inst); err != nil {
		return nil, errors.Wrap(err, "store instance")
	}
	return inst, nil
}

// Get returns the instance with given address.
func (b *InstanceBucket) Get(db cosmicroses.ReadOnlyKVStore, addr cosmicroses.Address) (*Instance, error) {
	var inst Instance
	if err := b.One(db, addr, &inst); err != nil {
		return nil, errors.Wrapf(err, "contract %s", addr)
	}
	return &inst, nil
}

// All returns all instances in the deployment order.
func (b *InstanceBucket) All(db cosmicroses.ReadOnlyKVStore) ([]*Instance, error) {
	latest, err := b.seq.Latest(db)
	if err != nil {
		return nil, err
	}
	all := make([]*Instance, 0, latest)
	for seq := uint64(1); seq <= latest; seq++ {
		inst, err := b.Get(db, ContractAddress(seq))
		if err != nil {
			return nil, err
		}
		all = append(all, inst)
	}
	return all, nil
}
