package proxy

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathDeployMsg            = "proxy/deploy"
	pathUpgradeContractMsg   = "proxy/upgradeContract"
	pathGetImplementationMsg = "proxy/getImplementation"
	pathGetAdminMsg          = "proxy/getAdmin"
)

// Msgs returns a prototype of every message of the proxy.
func Msgs() []cosmicroses.Msg {
	return []cosmicroses.Msg{
		&DeployMsg{},
		&UpgradeContractMsg{},
		&GetImplementationMsg{},
		&GetAdminMsg{},
	}
}

// DeployMsg creates a proxy delegating to given code.
type DeployMsg struct {
	Implementation string `protobuf:"bytes,1,opt,name=implementation,proto3" json:"implementation"`
}

func (m *DeployMsg) Reset()         { *m = DeployMsg{} }
func (m *DeployMsg) String() string { return proto.CompactTextString(m) }
func (*DeployMsg) ProtoMessage()    {}

func (DeployMsg) Path() string {
	return pathDeployMsg
}

func (m *DeployMsg) Validate() error {
	if _, _, err := app.ParseCodeID(m.Implementation); err != nil {
		return errors.Wrap(errors.ErrMsg, err.Error())
	}
	return nil
}

// UpgradeContractMsg replaces the implementation of the proxy.
type UpgradeContractMsg struct {
	NewImplementation string `protobuf:"bytes,1,opt,name=new_implementation,json=newImplementation,proto3" json:"new_implementation"`
}

func (m *UpgradeContractMsg) Reset()         { *m = UpgradeContractMsg{} }
func (m *UpgradeContractMsg) String() string { return proto.CompactTextString(m) }
func (*UpgradeContractMsg) ProtoMessage()    {}

func (UpgradeContractMsg) Path() string {
	return pathUpgradeContractMsg
}

func (m *UpgradeContractMsg) Validate() error {
	if _, _, err := app.ParseCodeID(m.NewImplementation); err != nil {
		return errors.Wrap(errors.ErrMsg, err.Error())
	}
	return nil
}

type GetImplementationMsg struct{}

func (m *GetImplementationMsg) Reset()         { *m = GetImplementationMsg{} }
func (m *GetImplementationMsg) String() string { return proto.CompactTextString(m) }
func (*GetImplementationMsg) ProtoMessage()    {}

func (GetImplementationMsg) Path() string {
	return pathGetImplementationMsg
}

func (*GetImplementationMsg) Validate() error {
	return nil
}

type GetAdminMsg struct{}

func (m *GetAdminMsg) Reset()         { *m = GetAdminMsg{} }
func (m *GetAdminMsg) String() string { return proto.CompactTextString(m) }
func (*GetAdminMsg) ProtoMessage()    {}

func (GetAdminMsg) Path() string {
	return pathGetAdminMsg
}

func (*GetAdminMsg) Validate() error {
	return nil
}
