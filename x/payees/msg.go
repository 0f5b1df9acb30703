package payees

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	"github.com/gogo/protobuf/proto"
)

const (
	pathInitMsg              = "payees/init"
	pathSetPayeeMsg          = "payees/setPayee"
	pathSetBatchPayeesMsg    = "payees/setBatchPayees"
	pathGetPayeeByAddressMsg = "payees/getPayeeByAddress"
	pathGetPayeeByIndexMsg   = "payees/getPayeeByIndex"
	pathPayeesCountMsg       = "payees/payeesCount"
	pathTotalSharesMsg       = "payees/totalShares"
	pathBalanceMsg           = "payees/balance"
	pathTotalReleasedMsg     = "payees/totalReleased"
	pathReleasedMsg          = "payees/released"
	pathPendingPaymentMsg    = "payees/pendingPayment"
	pathReleaseMsg           = "payees/release"
)

// Msgs returns a prototype of every message of this package.
func Msgs() []cosmicroses.Msg {
	return []cosmicroses.Msg{
		&InitMsg{},
		&SetPayeeMsg{},
		&SetBatchPayeesMsg{},
		&GetPayeeByAddressMsg{},
		&GetPayeeByIndexMsg{},
		&PayeesCountMsg{},
		&TotalSharesMsg{},
		&BalanceMsg{},
		&TotalReleasedMsg{},
		&ReleasedMsg{},
		&PendingPaymentMsg{},
		&ReleaseMsg{},
	}
}

// InitMsg creates a splitter with the initial payees. Admin defaults to
// the deployer.
type InitMsg struct {
	Admin  cosmicroses.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=Address" json:"admin,omitempty"`
	Payees []*shares.Entry     `protobuf:"bytes,2,rep,name=payees,proto3" json:"payees"`
}

func (m *InitMsg) Reset()         { *m = InitMsg{} }
func (m *InitMsg) String() string { return proto.CompactTextString(m) }
func (*InitMsg) ProtoMessage()    {}

func (InitMsg) Path() string {
	return pathInitMsg
}

func (m *InitMsg) Validate() error {
	if len(m.Admin) != 0 {
		if err := m.Admin.ValidateOwner(); err != nil {
			return errors.Wrap(err, "admin")
		}
	}
	for i, p := range m.Payees {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "payee %d", i)
		}
	}
	return nil
}

// SetPayeeMsg registers a payee or updates its shares.
type SetPayeeMsg struct {
	Address cosmicroses.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=Address" json:"address"`
	Shares  uint64              `protobuf:"varint,2,opt,name=shares,proto3" json:"shares"`
}

func (m *SetPayeeMsg) Reset()         { *m = SetPayeeMsg{} }
func (m *SetPayeeMsg) String() string { return proto.CompactTextString(m) }
func (*SetPayeeMsg) ProtoMessage()    {}

func (SetPayeeMsg) Path() string {
	return pathSetPayeeMsg
}

func (m *SetPayeeMsg) Validate() error {
	e := shares.Entry{Address: m.Address, Shares: m.Shares}
	return e.Validate()
}

// SetBatchPayeesMsg applies SetPayeeMsg for every entry. Either all or none
// of the entries are applied.
type SetBatchPayeesMsg struct {
	Payees []*shares.Entry `protobuf:"bytes,1,rep,name=payees,proto3" json:"payees"`
}

func (m *SetBatchPayeesMsg) Reset()         { *m = SetBatchPayeesMsg{} }
func (m *SetBatchPayeesMsg) String() string { return proto.CompactTextString(m) }
func (*SetBatchPayeesMsg) ProtoMessage()    {}

func (SetBatchPayeesMsg) Path() string {
	return pathSetBatchPayeesMsg
}

func (m *SetBatchPayeesMsg) Validate() error {
	return shares.ValidateEntries(m.Payees)
}

type GetPayeeByAddressMsg struct {
	Address cosmicroses.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=Address" json:"address"`
}

func (m *GetPayeeByAddressMsg) Reset()         { *m = GetPayeeByAddressMsg{} }
func (m *GetPayeeByAddressMsg) String() string { return proto.CompactTextString(m) }
func (*GetPayeeByAddressMsg) ProtoMessage()    {}

func (GetPayeeByAddressMsg) Path() string {
	return pathGetPayeeByAddressMsg
}

func (m *GetPayeeByAddressMsg) Validate() error {
	return m.Address.Validate()
}

type GetPayeeByIndexMsg struct {
	Index uint64 `protobuf:"varint,1,opt,name=index,proto3" json:"index"`
}

func (m *GetPayeeByIndexMsg) Reset()         { *m = GetPayeeByIndexMsg{} }
func (m *GetPayeeByIndexMsg) String() string { return proto.CompactTextString(m) }
func (*GetPayeeByIndexMsg) ProtoMessage()    {}

func (GetPayeeByIndexMsg) Path() string {
	return pathGetPayeeByIndexMsg
}

func (*GetPayeeByIndexMsg) Validate() error {
	return nil
}

type PayeesCountMsg struct{}

func (m *PayeesCountMsg) Reset()         { *m = PayeesCountMsg{} }
func (m *PayeesCountMsg) String() string { return proto.CompactTextString(m) }
func (*PayeesCountMsg) ProtoMessage()    {}

func (PayeesCountMsg) Path() string {
	return pathPayeesCountMsg
}

func (*PayeesCountMsg) Validate() error {
	return nil
}

type TotalSharesMsg struct{}

func (m *TotalSharesMsg) Reset()         { *m = TotalSharesMsg{} }
func (m *TotalSharesMsg) String() string { return proto.CompactTextString(m) }
func (*TotalSharesMsg) ProtoMessage()    {}

func (TotalSharesMsg) Path() string {
	return pathTotalSharesMsg
}

func (*TotalSharesMsg) Validate() error {
	return nil
}

// BalanceMsg reads the amount of the token held by the splitter.
type BalanceMsg struct {
	Token cosmicroses.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=Address" json:"token"`
}

func (m *BalanceMsg) Reset()         { *m = BalanceMsg{} }
func (m *BalanceMsg) String() string { return proto.CompactTextString(m) }
func (*BalanceMsg) ProtoMessage()    {}

func (BalanceMsg) Path() string {
	return pathBalanceMsg
}

func (m *BalanceMsg) Validate() error {
	return validateToken(m.Token)
}

type TotalReleasedMsg struct {
	Token cosmicroses.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=Address" json:"token"`
}

func (m *TotalReleasedMsg) Reset()         { *m = TotalReleasedMsg{} }
func (m *TotalReleasedMsg) String() string { return proto.CompactTextString(m) }
func (*TotalReleasedMsg) ProtoMessage()    {}

func (TotalReleasedMsg) Path() string {
	return pathTotalReleasedMsg
}

func (m *TotalReleasedMsg) Validate() error {
	return validateToken(m.Token)
}

type ReleasedMsg struct {
	Token cosmicroses.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=Address" json:"token"`
	Payee cosmicroses.Address `protobuf:"bytes,2,opt,name=payee,proto3,casttype=Address" json:"payee"`
}

func (m *ReleasedMsg) Reset()         { *m = ReleasedMsg{} }
func (m *ReleasedMsg) String() string { return proto.CompactTextString(m) }
func (*ReleasedMsg) ProtoMessage()    {}

func (ReleasedMsg) Path() string {
	return pathReleasedMsg
}

func (m *ReleasedMsg) Validate() error {
	return validateTokenPayee(m.Token, m.Payee)
}

type PendingPaymentMsg struct {
	Token cosmicroses.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=Address" json:"token"`
	Payee cosmicroses.Address `protobuf:"bytes,2,opt,name=payee,proto3,casttype=Address" json:"payee"`
}

func (m *PendingPaymentMsg) Reset()         { *m = PendingPaymentMsg{} }
func (m *PendingPaymentMsg) String() string { return proto.CompactTextString(m) }
func (*PendingPaymentMsg) ProtoMessage()    {}

func (PendingPaymentMsg) Path() string {
	return pathPendingPaymentMsg
}

func (m *PendingPaymentMsg) Validate() error {
	return validateTokenPayee(m.Token, m.Payee)
}

// ReleaseMsg transfers to the payee the amount of the token it is due.
// Anyone can release a payment.
type ReleaseMsg struct {
	Token cosmicroses.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=Address" json:"token"`
	Payee cosmicroses.Address `protobuf:"bytes,2,opt,name=payee,proto3,casttype=Address" json:"payee"`
}

func (m *ReleaseMsg) Reset()         { *m = ReleaseMsg{} }
func (m *ReleaseMsg) String() string { return proto.CompactTextString(m) }
func (*ReleaseMsg) ProtoMessage()    {}

func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

func (m *ReleaseMsg) Validate() error {
	return validateTokenPayee(m.Token, m.Payee)
}

func validateToken(token cosmicroses.Address) error {
	if err := token.ValidateOwner(); err != nil {
		return errors.Wrap(err, "token")
	}
	return nil
}

func validateTokenPayee(token, payee cosmicroses.Address) error {
	if err := validateToken(token); err != nil {
		return err
	}
	if err := payee.ValidateOwner(); err != nil {
		return errors.Wrap(err, "payee")
	}
	return nil
}
