package token

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

const packageName = "token"

// Config describes the token. It is kept as a configuration singleton.
type Config struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" json:"name"`
	Symbol   string `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol"`
	Decimals uint32 `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

func (m *Config) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if !isSymbol(m.Symbol) {
		return errors.Wrapf(errors.ErrInput, "invalid symbol %q", m.Symbol)
	}
	if m.Decimals > 18 {
		return errors.Wrap(errors.ErrInput, "too many decimals")
	}
	return nil
}

func isSymbol(s string) bool {
	if len(s) < 2 || len(s) > 8 {
		return false
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Wallet is the balance of an owner.
type Wallet struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    cosmicroses.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=Address" json:"owner"`
	Amount   uint64                `protobuf:"varint,3,opt,name=amount,proto3" json:"amount"`
}

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

func (m *Wallet) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Wallet) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return m.Owner.Validate()
}

// Supply is the amount of all issued tokens.
type Supply struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   uint64                `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
}

func (m *Supply) Reset()         { *m = Supply{} }
func (m *Supply) String() string { return proto.CompactTextString(m) }
func (*Supply) ProtoMessage()    {}

func (m *Supply) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Supply) Validate() error {
	return m.Metadata.Validate()
}

var supplyKey = []byte("total")

// Controller keeps balances of a token instance.
type Controller struct {
	wallets orm.ModelBucket
	supply  orm.ModelBucket
}

// NewController returns a controller operating on the token buckets.
func NewController() *Controller {
	return &Controller{
		wallets: migration.NewModelBucket(packageName, orm.NewModelBucket("wallet", &Wallet{})),
		supply:  migration.NewModelBucket(packageName, orm.NewModelBucket("supply", &Supply{})),
	}
}

// Balance returns the amount held by the owner. Unknown owners hold zero.
func (c *Controller) Balance(db cosmicroses.ReadOnlyKVStore, owner cosmicroses.Address) (uint64, error) {
	w, err := c.wallet(db, owner)
	if err != nil {
		return 0, err
	}
	return w.Amount, nil
}

// TotalSupply returns the amount of all issued tokens.
func (c *Controller) TotalSupply(db cosmicroses.ReadOnlyKVStore) (uint64, error) {
	var s Supply
	switch err := c.supply.One(db, supplyKey, &s); {
	case err == nil:
		return s.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// Move transfers the amount from src to dest. It fails with
// ErrInsufficientAmount if src does not hold enough.
func (c *Controller) Move(db cosmicroses.KVStore, src, dest cosmicroses.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	from, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if from.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", from.Amount, amount)
	}
	from.Amount -= amount
	if err := c.wallets.Put(db, src, from); err != nil {
		return errors.Wrap(err, "sender wallet")
	}

	to, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	if to.Amount+amount < to.Amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	to.Amount += amount
	if err := c.wallets.Put(db, dest, to); err != nil {
		return errors.Wrap(err, "recipient wallet")
	}
	return nil
}

// Issue creates new tokens owned by dest.
func (c *Controller) Issue(db cosmicroses.KVStore, dest cosmicroses.Address, amount uint64) error {
	total, err := c.TotalSupply(db)
	if err != nil {
		return err
	}
	if total+amount < total {
		return errors.Wrap(errors.ErrOverflow, "total supply")
	}
	w, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	w.Amount += amount
	if err := c.wallets.Put(db, dest, w); err != nil {
		return errors.Wrap(err, "wallet")
	}
	s := &Supply{Metadata: &cosmicroses.Metadata{}, Amount: total + amount}
	if err := c.supply.Put(db, supplyKey, s); err != nil {
		return errors.Wrap(err, "supply")
	}
	return nil
}

func (c *Controller) wallet(db cosmicroses.ReadOnlyKVStore, owner cosmicroses.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.wallets.One(db, owner, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{Metadata: &cosmicroses.Metadata{}, Owner: owner}, nil
	default:
		return nil, errors.Wrap(err, "wallet")
	}
}
