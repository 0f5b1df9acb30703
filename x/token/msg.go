package token

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathInitMsg        = "token/init"
	pathInfoMsg        = "token/info"
	pathBalanceOfMsg   = "token/balanceOf"
	pathTransferMsg    = "token/transfer"
	pathTotalSupplyMsg = "token/totalSupply"
	pathMintMsg        = "token/mint"
)

// Msgs returns a prototype of every message of this package.
func Msgs() []cosmicroses.Msg {
	return []cosmicroses.Msg{
		&InitMsg{},
		&InfoMsg{},
		&BalanceOfMsg{},
		&TransferMsg{},
		&TotalSupplyMsg{},
		&MintMsg{},
	}
}

// InitMsg creates the token and issues the initial supply to the recipient.
// The deployer becomes the token admin.
type InitMsg struct {
	Name          string              `protobuf:"bytes,1,opt,name=name,proto3" json:"name"`
	Symbol        string              `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol"`
	Decimals      uint32              `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals"`
	InitialSupply uint64              `protobuf:"varint,4,opt,name=initial_supply,json=initialSupply,proto3" json:"initialSupply"`
	Recipient     cosmicroses.Address `protobuf:"bytes,5,opt,name=recipient,proto3,casttype=Address" json:"recipient,omitempty"`
}

func (m *InitMsg) Reset()         { *m = InitMsg{} }
func (m *InitMsg) String() string { return proto.CompactTextString(m) }
func (*InitMsg) ProtoMessage()    {}

func (InitMsg) Path() string {
	return pathInitMsg
}

func (m *InitMsg) Validate() error {
	conf := Config{Name: m.Name, Symbol: m.Symbol, Decimals: m.Decimals}
	if err := conf.Validate(); err != nil {
		return err
	}
	if m.InitialSupply != 0 {
		if err := m.Recipient.ValidateOwner(); err != nil {
			return errors.Wrap(err, "recipient")
		}
	}
	return nil
}

// InfoMsg reads the token configuration.
type InfoMsg struct{}

func (m *InfoMsg) Reset()         { *m = InfoMsg{} }
func (m *InfoMsg) String() string { return proto.CompactTextString(m) }
func (*InfoMsg) ProtoMessage()    {}

func (InfoMsg) Path() string {
	return pathInfoMsg
}

func (*InfoMsg) Validate() error {
	return nil
}

// BalanceOfMsg reads the balance of an owner.
type BalanceOfMsg struct {
	Owner cosmicroses.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=Address" json:"owner"`
}

func (m *BalanceOfMsg) Reset()         { *m = BalanceOfMsg{} }
func (m *BalanceOfMsg) String() string { return proto.CompactTextString(m) }
func (*BalanceOfMsg) ProtoMessage()    {}

func (BalanceOfMsg) Path() string {
	return pathBalanceOfMsg
}

func (m *BalanceOfMsg) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// TransferMsg moves tokens from the caller to the recipient.
type TransferMsg struct {
	Recipient cosmicroses.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=Address" json:"recipient"`
	Amount    uint64              `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	if err := m.Recipient.ValidateOwner(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	return nil
}

// TotalSupplyMsg reads the amount of all issued tokens.
type TotalSupplyMsg struct{}

func (m *TotalSupplyMsg) Reset()         { *m = TotalSupplyMsg{} }
func (m *TotalSupplyMsg) String() string { return proto.CompactTextString(m) }
func (*TotalSupplyMsg) ProtoMessage()    {}

func (TotalSupplyMsg) Path() string {
	return pathTotalSupplyMsg
}

func (*TotalSupplyMsg) Validate() error {
	return nil
}

// MintMsg issues new tokens to the recipient. Only the token admin can mint.
type MintMsg struct {
	Recipient cosmicroses.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=Address" json:"recipient"`
	Amount    uint64              `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()    {}

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	if err := m.Recipient.ValidateOwner(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	return nil
}
