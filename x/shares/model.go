package shares

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/gogo/protobuf/proto"
)

// Share is the entitlement of a single address within a registry.
type Share struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Address  cosmicroses.Address   `protobuf:"bytes,2,opt,name=address,proto3,casttype=Address" json:"address"`
	Shares   uint64                `protobuf:"varint,3,opt,name=shares,proto3" json:"shares"`
	// Index is the insertion position of the address in the registry.
	Index uint64 `protobuf:"varint,4,opt,name=index,proto3" json:"index"`
}

func (m *Share) Reset()         { *m = Share{} }
func (m *Share) String() string { return proto.CompactTextString(m) }
func (*Share) ProtoMessage()    {}

func (m *Share) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Share) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateEntry(m.Address, m.Shares)
}

// ShareRef points from an insertion index to the address.
type ShareRef struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Address  cosmicroses.Address   `protobuf:"bytes,2,opt,name=address,proto3,casttype=Address" json:"address"`
}

func (m *ShareRef) Reset()         { *m = ShareRef{} }
func (m *ShareRef) String() string { return proto.CompactTextString(m) }
func (*ShareRef) ProtoMessage()    {}

func (m *ShareRef) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *ShareRef) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return m.Address.ValidateOwner()
}

// ShareSet is the header of a registry.
type ShareSet struct {
	Metadata    *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Count       uint64                `protobuf:"varint,2,opt,name=count,proto3" json:"count"`
	TotalShares uint64                `protobuf:"varint,3,opt,name=total_shares,json=totalShares,proto3" json:"total_shares"`
}

func (m *ShareSet) Reset()         { *m = ShareSet{} }
func (m *ShareSet) String() string { return proto.CompactTextString(m) }
func (*ShareSet) ProtoMessage()    {}

func (m *ShareSet) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *ShareSet) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Count == 0 {
		return errors.Wrap(errors.ErrModel, "empty set must not be stored")
	}
	if m.TotalShares < m.Count {
		return errors.Wrap(errors.ErrModel, "total shares lower than the count")
	}
	return nil
}

// Entry is an address with its shares, as given by a caller.
type Entry struct {
	Address cosmicroses.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=Address" json:"address"`
	Shares  uint64              `protobuf:"varint,2,opt,name=shares,proto3" json:"shares"`
}

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString(m) }
func (*Entry) ProtoMessage()    {}

// Validate returns ErrInvalidAddress or ErrInvalidShare if the entry cannot
// be stored.
func (m *Entry) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "entry")
	}
	return validateEntry(m.Address, m.Shares)
}

// ValidateEntries validates every entry of a batch.
func ValidateEntries(entries []*Entry) error {
	if len(entries) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no entries")
	}
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
	}
	return nil
}

func validateEntry(addr cosmicroses.Address, shares uint64) error {
	if err := addr.ValidateOwner(); err != nil {
		return err
	}
	if shares == 0 {
		return errors.Wrap(errors.ErrInvalidShare, "share must be greater than zero")
	}
	return nil
}
