package rosestest

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/gogo/protobuf/proto"
)

// Tx represents a single call carrying one message.
type Tx struct {
	// Msg is the message that is to be processed by this call.
	Msg cosmicroses.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ cosmicroses.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (cosmicroses.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message routed by its path only.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string `protobuf:"bytes,1,opt,name=route_path,proto3" json:"route_path,omitempty"`
}

var _ cosmicroses.Msg = (*Msg)(nil)

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return proto.CompactTextString(m) }
func (*Msg) ProtoMessage()    {}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return nil
}
