package work

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	"github.com/gogo/protobuf/proto"
)

const (
	pathInitializerMsg                    = "work/initializer"
	pathCreateRecordMsg                   = "work/createRecord"
	pathSetWorkContributorMsg             = "work/setWorkContributor"
	pathSetBatchWorkContributorsMsg       = "work/setBatchWorkContributors"
	pathGetWorkContributorByAddressMsg    = "work/getWorkContributorByAddress"
	pathFindWorkContributorByAddressMsg   = "work/findWorkContributorByAddress"
	pathGetWorkContributorByIndexMsg      = "work/getWorkContributorByIndex"
	pathWorkContributorsCountMsg          = "work/workContributorsCount"
	pathWorkTotalSharesMsg                = "work/workTotalShares"
	pathGetRecordContributorByAddressMsg  = "work/getRecordContributorByAddress"
	pathFindRecordContributorByAddressMsg = "work/findRecordContributorByAddress"
	pathRecordContributorsCountMsg        = "work/recordContributorsCount"
	pathGetWorkPayeesContractMsg          = "work/getWorkPayeesContract"
	pathSetWorkPayeesContractMsg          = "work/setWorkPayeesContract"
	pathGetRecordPayeesContractMsg        = "work/getRecordPayeesContract"
	pathSupportsInterfaceMsg              = "work/supportsInterface"
	pathNameMsg                           = "work/name"
	pathSymbolMsg                         = "work/symbol"
	pathOwnerOfMsg                        = "work/ownerOf"
	pathBalanceOfMsg                      = "work/balanceOf"
	pathTokenURIMsg                       = "work/tokenURI"
	pathApproveMsg                        = "work/approve"
	pathGetApprovedMsg                    = "work/getApproved"
	pathTransferFromMsg                   = "work/transferFrom"
	pathPauseMsg                          = "work/pause"
	pathUnpauseMsg                        = "work/unpause"
	pathPausedMsg                         = "work/paused"
	pathSetVarMsg                         = "work/setVar"
	pathGetVarMsg                         = "work/getVar"
)

// Msgs returns a prototype of every message of the first version.
func Msgs() []cosmicroses.Msg {
	return []cosmicroses.Msg{
		&InitializerMsg{},
		&CreateRecordMsg{},
		&SetWorkContributorMsg{},
		&SetBatchWorkContributorsMsg{},
		&GetWorkContributorByAddressMsg{},
		&FindWorkContributorByAddressMsg{},
		&GetWorkContributorByIndexMsg{},
		&WorkContributorsCountMsg{},
		&WorkTotalSharesMsg{},
		&GetRecordContributorByAddressMsg{},
		&FindRecordContributorByAddressMsg{},
		&RecordContributorsCountMsg{},
		&GetWorkPayeesContractMsg{},
		&SetWorkPayeesContractMsg{},
		&GetRecordPayeesContractMsg{},
		&SupportsInterfaceMsg{},
		&NameMsg{},
		&SymbolMsg{},
		&OwnerOfMsg{},
		&BalanceOfMsg{},
		&TokenURIMsg{},
		&ApproveMsg{},
		&GetApprovedMsg{},
		&TransferFromMsg{},
		&PauseMsg{},
		&UnpauseMsg{},
		&PausedMsg{},
	}
}

// MsgsV2 returns a prototype of every message of the second version.
func MsgsV2() []cosmicroses.Msg {
	return append(Msgs(), &SetVarMsg{}, &GetVarMsg{})
}

// InitializerMsg sets up a work. It is processed once per instance, also
// when the work is deployed behind a proxy.
type InitializerMsg struct {
	Name   string              `protobuf:"bytes,1,opt,name=name,proto3" json:"name"`
	Symbol string              `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol"`
	Admin  cosmicroses.Address `protobuf:"bytes,3,opt,name=admin,proto3,casttype=Address" json:"admin,omitempty"`
	// ProxyAdmin if set becomes the admin of the proxy the work is
	// deployed behind.
	ProxyAdmin     cosmicroses.Address `protobuf:"bytes,4,opt,name=proxy_admin,json=proxyAdmin,proto3,casttype=Address" json:"proxyAdmin,omitempty"`
	PayeesContract cosmicroses.Address `protobuf:"bytes,5,opt,name=payees_contract,json=payeesContract,proto3,casttype=Address" json:"payeesContract,omitempty"`
}

func (m *InitializerMsg) Reset()         { *m = InitializerMsg{} }
func (m *InitializerMsg) String() string { return proto.CompactTextString(m) }
func (*InitializerMsg) ProtoMessage()    {}

func (InitializerMsg) Path() string {
	return pathInitializerMsg
}

func (m *InitializerMsg) GetProxyAdmin() cosmicroses.Address {
	return m.ProxyAdmin
}

func (m *InitializerMsg) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if m.Symbol == "" {
		return errors.Wrap(errors.ErrEmpty, "symbol")
	}
	optional := []struct {
		name string
		addr cosmicroses.Address
	}{
		{"admin", m.Admin},
		{"proxy admin", m.ProxyAdmin},
		{"payees contract", m.PayeesContract},
	}
	for _, o := range optional {
		if len(o.addr) == 0 {
			continue
		}
		if err := o.addr.ValidateOwner(); err != nil {
			return errors.Wrap(err, o.name)
		}
	}
	return nil
}

// CreateRecordMsg mints a record to the caller. Exactly one of the
// contributors or the payees contract must be given.
type CreateRecordMsg struct {
	TokenURI       string              `protobuf:"bytes,1,opt,name=token_uri,json=tokenUri,proto3" json:"tokenURI"`
	Contributors   []*shares.Entry     `protobuf:"bytes,2,rep,name=contributors,proto3" json:"contributors,omitempty"`
	PayeesContract cosmicroses.Address `protobuf:"bytes,3,opt,name=payees_contract,json=payeesContract,proto3,casttype=Address" json:"payeesContract,omitempty"`
}

func (m *CreateRecordMsg) Reset()         { *m = CreateRecordMsg{} }
func (m *CreateRecordMsg) String() string { return proto.CompactTextString(m) }
func (*CreateRecordMsg) ProtoMessage()    {}

func (CreateRecordMsg) Path() string {
	return pathCreateRecordMsg
}

func (m *CreateRecordMsg) Validate() error {
	if m.TokenURI == "" {
		return errors.Wrap(errors.ErrEmpty, "token uri")
	}
	switch {
	case len(m.Contributors) != 0 && len(m.PayeesContract) != 0:
		return errors.Wrap(errors.ErrInput, "contributors and payees contract are exclusive")
	case len(m.PayeesContract) != 0:
		if err := m.PayeesContract.ValidateOwner(); err != nil {
			return errors.Wrap(err, "payees contract")
		}
		return nil
	default:
		if err := shares.ValidateEntries(m.Contributors); err != nil {
			return errors.Wrap(err, "contributors")
		}
		return nil
	}
}

type SetWorkContributorMsg struct {
	Address cosmicroses.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=Address" json:"address"`
	Shares  uint64              `protobuf:"varint,2,opt,name=shares,proto3" json:"shares"`
}

func (m *SetWorkContributorMsg) Reset()         { *m = SetWorkContributorMsg{} }
func (m *SetWorkContributorMsg) String() string { return proto.CompactTextString(m) }
func (*SetWorkContributorMsg) ProtoMessage()    {}

func (SetWorkContributorMsg) Path() string {
	return pathSetWorkContributorMsg
}

func (m *SetWorkContributorMsg) Validate() error {
	e := shares.Entry{Address: m.Address, Shares: m.Shares}
	return e.Validate()
}

type SetBatchWorkContributorsMsg struct {
	Contributors []*shares.Entry `protobuf:"bytes,1,rep,name=contributors,proto3" json:"contributors"`
}

func (m *SetBatchWorkContributorsMsg) Reset()         { *m = SetBatchWorkContributorsMsg{} }
func (m *SetBatchWorkContributorsMsg) String() string { return proto.CompactTextString(m) }
func (*SetBatchWorkContributorsMsg) ProtoMessage()    {}

func (SetBatchWorkContributorsMsg) Path() string {
	return pathSetBatchWorkContributorsMsg
}

func (m *SetBatchWorkContributorsMsg) Validate() error {
	return shares.ValidateEntries(m.Contributors)
}

type GetWorkContributorByAddressMsg struct {
	Address cosmicroses.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=Address" json:"address"`
}

func (m *GetWorkContributorByAddressMsg) Reset()         { *m = GetWorkContributorByAddressMsg{} }
func (m *GetWorkContributorByAddressMsg) String() string { return proto.CompactTextString(m) }
func (*GetWorkContributorByAddressMsg) ProtoMessage()    {}

func (GetWorkContributorByAddressMsg) Path() string {
	return pathGetWorkContributorByAddressMsg
}

func (m *GetWorkContributorByAddressMsg) Validate() error {
	return m.Address.Validate()
}

type FindWorkContributorByAddressMsg struct {
	Address cosmicroses.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=Address" json:"address"`
}

func (m *FindWorkContributorByAddressMsg) Reset()         { *m = FindWorkContributorByAddressMsg{} }
func (m *FindWorkContributorByAddressMsg) String() string { return proto.CompactTextString(m) }
func (*FindWorkContributorByAddressMsg) ProtoMessage()    {}

func (FindWorkContributorByAddressMsg) Path() string {
	return pathFindWorkContributorByAddressMsg
}

func (m *FindWorkContributorByAddressMsg) Validate() error {
	return m.Address.Validate()
}

type GetWorkContributorByIndexMsg struct {
	Index uint64 `protobuf:"varint,1,opt,name=index,proto3" json:"index"`
}

func (m *GetWorkContributorByIndexMsg) Reset()         { *m = GetWorkContributorByIndexMsg{} }
func (m *GetWorkContributorByIndexMsg) String() string { return proto.CompactTextString(m) }
func (*GetWorkContributorByIndexMsg) ProtoMessage()    {}

func (GetWorkContributorByIndexMsg) Path() string {
	return pathGetWorkContributorByIndexMsg
}

func (*GetWorkContributorByIndexMsg) Validate() error {
	return nil
}

type WorkContributorsCountMsg struct{}

func (m *WorkContributorsCountMsg) Reset()         { *m = WorkContributorsCountMsg{} }
func (m *WorkContributorsCountMsg) String() string { return proto.CompactTextString(m) }
func (*WorkContributorsCountMsg) ProtoMessage()    {}

func (WorkContributorsCountMsg) Path() string {
	return pathWorkContributorsCountMsg
}

func (*WorkContributorsCountMsg) Validate() error {
	return nil
}

type WorkTotalSharesMsg struct{}

func (m *WorkTotalSharesMsg) Reset()         { *m = WorkTotalSharesMsg{} }
func (m *WorkTotalSharesMsg) String() string { return proto.CompactTextString(m) }
func (*WorkTotalSharesMsg) ProtoMessage()    {}

func (WorkTotalSharesMsg) Path() string {
	return pathWorkTotalSharesMsg
}

func (*WorkTotalSharesMsg) Validate() error {
	return nil
}

type GetRecordContributorByAddressMsg struct {
	TokenID uint64              `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
	Address cosmicroses.Address `protobuf:"bytes,2,opt,name=address,proto3,casttype=Address" json:"address"`
}

func (m *GetRecordContributorByAddressMsg) Reset()         { *m = GetRecordContributorByAddressMsg{} }
func (m *GetRecordContributorByAddressMsg) String() string { return proto.CompactTextString(m) }
func (*GetRecordContributorByAddressMsg) ProtoMessage()    {}

func (GetRecordContributorByAddressMsg) Path() string {
	return pathGetRecordContributorByAddressMsg
}

func (m *GetRecordContributorByAddressMsg) Validate() error {
	return m.Address.Validate()
}

type FindRecordContributorByAddressMsg struct {
	TokenID uint64              `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
	Address cosmicroses.Address `protobuf:"bytes,2,opt,name=address,proto3,casttype=Address" json:"address"`
}

func (m *FindRecordContributorByAddressMsg) Reset()         { *m = FindRecordContributorByAddressMsg{} }
func (m *FindRecordContributorByAddressMsg) String() string { return proto.CompactTextString(m) }
func (*FindRecordContributorByAddressMsg) ProtoMessage()    {}

func (FindRecordContributorByAddressMsg) Path() string {
	return pathFindRecordContributorByAddressMsg
}

func (m *FindRecordContributorByAddressMsg) Validate() error {
	return m.Address.Validate()
}

type RecordContributorsCountMsg struct {
	TokenID uint64 `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *RecordContributorsCountMsg) Reset()         { *m = RecordContributorsCountMsg{} }
func (m *RecordContributorsCountMsg) String() string { return proto.CompactTextString(m) }
func (*RecordContributorsCountMsg) ProtoMessage()    {}

func (RecordContributorsCountMsg) Path() string {
	return pathRecordContributorsCountMsg
}

func (*RecordContributorsCountMsg) Validate() error {
	return nil
}

type GetWorkPayeesContractMsg struct{}

func (m *GetWorkPayeesContractMsg) Reset()         { *m = GetWorkPayeesContractMsg{} }
func (m *GetWorkPayeesContractMsg) String() string { return proto.CompactTextString(m) }
func (*GetWorkPayeesContractMsg) ProtoMessage()    {}

func (GetWorkPayeesContractMsg) Path() string {
	return pathGetWorkPayeesContractMsg
}

func (*GetWorkPayeesContractMsg) Validate() error {
	return nil
}

type SetWorkPayeesContractMsg struct {
	PayeesContract cosmicroses.Address `protobuf:"bytes,1,opt,name=payees_contract,json=payeesContract,proto3,casttype=Address" json:"payeesContract"`
}

func (m *SetWorkPayeesContractMsg) Reset()         { *m = SetWorkPayeesContractMsg{} }
func (m *SetWorkPayeesContractMsg) String() string { return proto.CompactTextString(m) }
func (*SetWorkPayeesContractMsg) ProtoMessage()    {}

func (SetWorkPayeesContractMsg) Path() string {
	return pathSetWorkPayeesContractMsg
}

func (m *SetWorkPayeesContractMsg) Validate() error {
	if err := m.PayeesContract.ValidateOwner(); err != nil {
		return errors.Wrap(err, "payees contract")
	}
	return nil
}

type GetRecordPayeesContractMsg struct {
	TokenID uint64 `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *GetRecordPayeesContractMsg) Reset()         { *m = GetRecordPayeesContractMsg{} }
func (m *GetRecordPayeesContractMsg) String() string { return proto.CompactTextString(m) }
func (*GetRecordPayeesContractMsg) ProtoMessage()    {}

func (GetRecordPayeesContractMsg) Path() string {
	return pathGetRecordPayeesContractMsg
}

func (*GetRecordPayeesContractMsg) Validate() error {
	return nil
}

type SupportsInterfaceMsg struct {
	InterfaceID uint32 `protobuf:"varint,1,opt,name=interface_id,json=interfaceId,proto3" json:"interfaceId"`
}

func (m *SupportsInterfaceMsg) Reset()         { *m = SupportsInterfaceMsg{} }
func (m *SupportsInterfaceMsg) String() string { return proto.CompactTextString(m) }
func (*SupportsInterfaceMsg) ProtoMessage()    {}

func (SupportsInterfaceMsg) Path() string {
	return pathSupportsInterfaceMsg
}

func (*SupportsInterfaceMsg) Validate() error {
	return nil
}

type NameMsg struct{}

func (m *NameMsg) Reset()         { *m = NameMsg{} }
func (m *NameMsg) String() string { return proto.CompactTextString(m) }
func (*NameMsg) ProtoMessage()    {}

func (NameMsg) Path() string {
	return pathNameMsg
}

func (*NameMsg) Validate() error {
	return nil
}

type SymbolMsg struct{}

func (m *SymbolMsg) Reset()         { *m = SymbolMsg{} }
func (m *SymbolMsg) String() string { return proto.CompactTextString(m) }
func (*SymbolMsg) ProtoMessage()    {}

func (SymbolMsg) Path() string {
	return pathSymbolMsg
}

func (*SymbolMsg) Validate() error {
	return nil
}

type OwnerOfMsg struct {
	TokenID uint64 `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *OwnerOfMsg) Reset()         { *m = OwnerOfMsg{} }
func (m *OwnerOfMsg) String() string { return proto.CompactTextString(m) }
func (*OwnerOfMsg) ProtoMessage()    {}

func (OwnerOfMsg) Path() string {
	return pathOwnerOfMsg
}

func (*OwnerOfMsg) Validate() error {
	return nil
}

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
	if err := m.Owner.ValidateOwner(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

type TokenURIMsg struct {
	TokenID uint64 `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *TokenURIMsg) Reset()         { *m = TokenURIMsg{} }
func (m *TokenURIMsg) String() string { return proto.CompactTextString(m) }
func (*TokenURIMsg) ProtoMessage()    {}

func (TokenURIMsg) Path() string {
	return pathTokenURIMsg
}

func (*TokenURIMsg) Validate() error {
	return nil
}

// ApproveMsg allows the spender to transfer a record of the caller. An
// empty spender clears the approval.
type ApproveMsg struct {
	Spender cosmicroses.Address `protobuf:"bytes,1,opt,name=spender,proto3,casttype=Address" json:"spender,omitempty"`
	TokenID uint64              `protobuf:"varint,2,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveMsg) ProtoMessage()    {}

func (ApproveMsg) Path() string {
	return pathApproveMsg
}

func (m *ApproveMsg) Validate() error {
	if len(m.Spender) == 0 {
		return nil
	}
	if err := m.Spender.ValidateOwner(); err != nil {
		return errors.Wrap(err, "spender")
	}
	return nil
}

type GetApprovedMsg struct {
	TokenID uint64 `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *GetApprovedMsg) Reset()         { *m = GetApprovedMsg{} }
func (m *GetApprovedMsg) String() string { return proto.CompactTextString(m) }
func (*GetApprovedMsg) ProtoMessage()    {}

func (GetApprovedMsg) Path() string {
	return pathGetApprovedMsg
}

func (*GetApprovedMsg) Validate() error {
	return nil
}

type TransferFromMsg struct {
	From    cosmicroses.Address `protobuf:"bytes,1,opt,name=from,proto3,casttype=Address" json:"from"`
	To      cosmicroses.Address `protobuf:"bytes,2,opt,name=to,proto3,casttype=Address" json:"to"`
	TokenID uint64              `protobuf:"varint,3,opt,name=token_id,json=tokenId,proto3" json:"tokenId"`
}

func (m *TransferFromMsg) Reset()         { *m = TransferFromMsg{} }
func (m *TransferFromMsg) String() string { return proto.CompactTextString(m) }
func (*TransferFromMsg) ProtoMessage()    {}

func (TransferFromMsg) Path() string {
	return pathTransferFromMsg
}

func (m *TransferFromMsg) Validate() error {
	if err := m.From.ValidateOwner(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := m.To.ValidateOwner(); err != nil {
		return errors.Wrap(err, "to")
	}
	return nil
}

type PauseMsg struct{}

func (m *PauseMsg) Reset()         { *m = PauseMsg{} }
func (m *PauseMsg) String() string { return proto.CompactTextString(m) }
func (*PauseMsg) ProtoMessage()    {}

func (PauseMsg) Path() string {
	return pathPauseMsg
}

func (*PauseMsg) Validate() error {
	return nil
}

type UnpauseMsg struct{}

func (m *UnpauseMsg) Reset()         { *m = UnpauseMsg{} }
func (m *UnpauseMsg) String() string { return proto.CompactTextString(m) }
func (*UnpauseMsg) ProtoMessage()    {}

func (UnpauseMsg) Path() string {
	return pathUnpauseMsg
}

func (*UnpauseMsg) Validate() error {
	return nil
}

type PausedMsg struct{}

func (m *PausedMsg) Reset()         { *m = PausedMsg{} }
func (m *PausedMsg) String() string { return proto.CompactTextString(m) }
func (*PausedMsg) ProtoMessage()    {}

func (PausedMsg) Path() string {
	return pathPausedMsg
}

func (*PausedMsg) Validate() error {
	return nil
}

// SetVarMsg is available since version 2.0.0.
type SetVarMsg struct {
	Var uint64 `protobuf:"varint,1,opt,name=var,proto3" json:"var"`
}

func (m *SetVarMsg) Reset()         { *m = SetVarMsg{} }
func (m *SetVarMsg) String() string { return proto.CompactTextString(m) }
func (*SetVarMsg) ProtoMessage()    {}

func (SetVarMsg) Path() string {
	return pathSetVarMsg
}

func (*SetVarMsg) Validate() error {
	return nil
}

// GetVarMsg is available since version 2.0.0.
type GetVarMsg struct{}

func (m *GetVarMsg) Reset()         { *m = GetVarMsg{} }
func (m *GetVarMsg) String() string { return proto.CompactTextString(m) }
func (*GetVarMsg) ProtoMessage()    {}

func (GetVarMsg) Path() string {
	return pathGetVarMsg
}

func (*GetVarMsg) Validate() error {
	return nil
}
