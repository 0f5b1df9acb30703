package access

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathGrantRoleMsg    = "access/grantRole"
	pathRevokeRoleMsg   = "access/revokeRole"
	pathHasRoleMsg      = "access/hasRole"
	pathRenounceRoleMsg = "access/renounceRole"
)

// Msgs returns a prototype of every message of this package.
func Msgs() []cosmicroses.Msg {
	return []cosmicroses.Msg{
		&GrantRoleMsg{},
		&RevokeRoleMsg{},
		&HasRoleMsg{},
		&RenounceRoleMsg{},
	}
}

// GrantRoleMsg gives the role to the account. Only the default admin can
// grant roles.
type GrantRoleMsg struct {
	Role    Role                `protobuf:"bytes,1,opt,name=role,proto3,casttype=Role" json:"role"`
	Account cosmicroses.Address `protobuf:"bytes,2,opt,name=account,proto3,casttype=Address" json:"account"`
}

func (m *GrantRoleMsg) Reset()         { *m = GrantRoleMsg{} }
func (m *GrantRoleMsg) String() string { return proto.CompactTextString(m) }
func (*GrantRoleMsg) ProtoMessage()    {}

func (GrantRoleMsg) Path() string {
	return pathGrantRoleMsg
}

func (m *GrantRoleMsg) Validate() error {
	return validateRoleAccount(m.Role, m.Account)
}

// RevokeRoleMsg takes the role from the account. Only the default admin can
// revoke roles.
type RevokeRoleMsg struct {
	Role    Role                `protobuf:"bytes,1,opt,name=role,proto3,casttype=Role" json:"role"`
	Account cosmicroses.Address `protobuf:"bytes,2,opt,name=account,proto3,casttype=Address" json:"account"`
}

func (m *RevokeRoleMsg) Reset()         { *m = RevokeRoleMsg{} }
func (m *RevokeRoleMsg) String() string { return proto.CompactTextString(m) }
func (*RevokeRoleMsg) ProtoMessage()    {}

func (RevokeRoleMsg) Path() string {
	return pathRevokeRoleMsg
}

func (m *RevokeRoleMsg) Validate() error {
	return validateRoleAccount(m.Role, m.Account)
}

// HasRoleMsg reads the role membership of an account.
type HasRoleMsg struct {
	Role    Role                `protobuf:"bytes,1,opt,name=role,proto3,casttype=Role" json:"role"`
	Account cosmicroses.Address `protobuf:"bytes,2,opt,name=account,proto3,casttype=Address" json:"account"`
}

func (m *HasRoleMsg) Reset()         { *m = HasRoleMsg{} }
func (m *HasRoleMsg) String() string { return proto.CompactTextString(m) }
func (*HasRoleMsg) ProtoMessage()    {}

func (HasRoleMsg) Path() string {
	return pathHasRoleMsg
}

func (m *HasRoleMsg) Validate() error {
	return validateRoleAccount(m.Role, m.Account)
}

// RenounceRoleMsg drops a role held by the caller.
type RenounceRoleMsg struct {
	Role Role `protobuf:"bytes,1,opt,name=role,proto3,casttype=Role" json:"role"`
}

func (m *RenounceRoleMsg) Reset()         { *m = RenounceRoleMsg{} }
func (m *RenounceRoleMsg) String() string { return proto.CompactTextString(m) }
func (*RenounceRoleMsg) ProtoMessage()    {}

func (RenounceRoleMsg) Path() string {
	return pathRenounceRoleMsg
}

func (m *RenounceRoleMsg) Validate() error {
	if err := m.Role.Validate(); err != nil {
		return errors.Wrap(err, "role")
	}
	return nil
}

func validateRoleAccount(role Role, account cosmicroses.Address) error {
	if err := role.Validate(); err != nil {
		return errors.Wrap(err, "role")
	}
	if err := account.ValidateOwner(); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}
