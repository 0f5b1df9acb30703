package cosmicroses

import (
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/gogo/protobuf/proto"
)

// Persistent is implemented by every model, message and result. All of them
// are protobuf messages, serialized using the field tags.
//
// Types implementing Persistent must not declare their own Marshal or
// Unmarshal methods.
type Persistent interface {
	proto.Message
}

// Marshal returns the binary representation of given object.
func Marshal(p Persistent) ([]byte, error) {
	raw, err := proto.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrType, "marshal %T: %s", p, err)
	}
	return raw, nil
}

// Unmarshal loads the state of given object from its binary representation.
func Unmarshal(raw []byte, dest Persistent) error {
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrType, "unmarshal %T: %s", dest, err)
	}
	return nil
}

// Metadata is the first field of every model. Schema is the version of the
// data layout the model was written with.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

// Validate returns an error if the schema version is not set.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "nil")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be greater than zero")
	}
	return nil
}

// Copy returns a copy of this object.
func (m *Metadata) Copy() *Metadata {
	cpy := *m
	return &cpy
}

// NewResult serializes the result of an entry point into a DeliverResult.
func NewResult(p Persistent) (*DeliverResult, error) {
	raw, err := Marshal(p)
	if err != nil {
		return nil, err
	}
	return &DeliverResult{Data: raw}, nil
}

// LoadResult deserializes the data of given DeliverResult into dest.
func LoadResult(res *DeliverResult, dest Persistent) error {
	if res == nil {
		return errors.Wrap(errors.ErrEmpty, "nil result")
	}
	return Unmarshal(res.Data, dest)
}

// Uint64Result is returned by the entry points computing an amount, a count
// or an identifier.
type Uint64Result struct {
	Value uint64 `protobuf:"varint,1,opt,name=value,proto3" json:"value"`
}

func (m *Uint64Result) Reset()         { *m = Uint64Result{} }
func (m *Uint64Result) String() string { return proto.CompactTextString(m) }
func (*Uint64Result) ProtoMessage()    {}

// BoolResult is returned by the predicate entry points.
type BoolResult struct {
	Value bool `protobuf:"varint,1,opt,name=value,proto3" json:"value"`
}

func (m *BoolResult) Reset()         { *m = BoolResult{} }
func (m *BoolResult) String() string { return proto.CompactTextString(m) }
func (*BoolResult) ProtoMessage()    {}

// AddressResult is returned by the entry points reading an address.
type AddressResult struct {
	Value Address `protobuf:"bytes,1,opt,name=value,proto3,casttype=Address" json:"value"`
}

func (m *AddressResult) Reset()         { *m = AddressResult{} }
func (m *AddressResult) String() string { return proto.CompactTextString(m) }
func (*AddressResult) ProtoMessage()    {}

// StringResult is returned by the entry points reading a text value.
type StringResult struct {
	Value string `protobuf:"bytes,1,opt,name=value,proto3" json:"value"`
}

func (m *StringResult) Reset()         { *m = StringResult{} }
func (m *StringResult) String() string { return proto.CompactTextString(m) }
func (*StringResult) ProtoMessage()    {}

// Uint64 is a helper that loads a Uint64Result value.
func Uint64(res *DeliverResult, err error) (uint64, error) {
	if err != nil {
		return 0, err
	}
	var r Uint64Result
	if err := LoadResult(res, &r); err != nil {
		return 0, err
	}
	return r.Value, nil
}

// Bool is a helper that loads a BoolResult value.
func Bool(res *DeliverResult, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	var r BoolResult
	if err := LoadResult(res, &r); err != nil {
		return false, err
	}
	return r.Value, nil
}
