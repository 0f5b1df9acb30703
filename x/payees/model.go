package payees

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

const packageName = "payees"

// Released is the amount of a token already transferred to a payee.
type Released struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token    cosmicroses.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=Address" json:"token"`
	Payee    cosmicroses.Address   `protobuf:"bytes,3,opt,name=payee,proto3,casttype=Address" json:"payee"`
	Amount   uint64                `protobuf:"varint,4,opt,name=amount,proto3" json:"amount"`
}

func (m *Released) Reset()         { *m = Released{} }
func (m *Released) String() string { return proto.CompactTextString(m) }
func (*Released) ProtoMessage()    {}

func (m *Released) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Released) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := m.Payee.Validate(); err != nil {
		return errors.Wrap(err, "payee")
	}
	return nil
}

// TotalReleased is the amount of a token transferred to all payees.
type TotalReleased struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token    cosmicroses.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=Address" json:"token"`
	Amount   uint64                `protobuf:"varint,3,opt,name=amount,proto3" json:"amount"`
}

func (m *TotalReleased) Reset()         { *m = TotalReleased{} }
func (m *TotalReleased) String() string { return proto.CompactTextString(m) }
func (*TotalReleased) ProtoMessage()    {}

func (m *TotalReleased) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *TotalReleased) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	return nil
}

// Ledger keeps the amounts released by a splitter. Amounts are created
// lazily and never decrease.
type Ledger struct {
	released orm.ModelBucket
	total    orm.ModelBucket
}

// NewLedger returns a ledger operating on the payees buckets.
func NewLedger() *Ledger {
	return &Ledger{
		released: migration.NewModelBucket(packageName, orm.NewModelBucket("released", &Released{})),
		total:    migration.NewModelBucket(packageName, orm.NewModelBucket("totalrel", &TotalReleased{})),
	}
}

func releasedKey(token, payee cosmicroses.Address) []byte {
	key := make([]byte, 0, len(token)+len(payee))
	key = append(key, token...)
	return append(key, payee...)
}

// Released returns the amount of the token transferred to the payee.
func (l *Ledger) Released(db cosmicroses.ReadOnlyKVStore, token, payee cosmicroses.Address) (uint64, error) {
	var r Released
	switch err := l.released.One(db, releasedKey(token, payee), &r); {
	case err == nil:
		return r.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "released")
	}
}

// TotalReleased returns the amount of the token transferred to all payees.
func (l *Ledger) TotalReleased(db cosmicroses.ReadOnlyKVStore, token cosmicroses.Address) (uint64, error) {
	var r TotalReleased
	switch err := l.total.One(db, token, &r); {
	case err == nil:
		return r.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "total released")
	}
}

// Credit records a transfer of the amount to the payee.
func (l *Ledger) Credit(db cosmicroses.KVStore, token, payee cosmicroses.Address, amount uint64) error {
	released, err := l.Released(db, token, payee)
	if err != nil {
		return err
	}
	total, err := l.TotalReleased(db, token)
	if err != nil {
		return err
	}
	if released+amount < released || total+amount < total {
		return errors.Wrap(errors.ErrOverflow, "released amount")
	}

	r := &Released{
		Metadata: &cosmicroses.Metadata{},
		Token:    token,
		Payee:    payee,
		Amount:   released + amount,
	}
	if err := l.released.Put(db, releasedKey(token, payee), r); err != nil {
		return errors.Wrap(err, "released")
	}
	tr := &TotalReleased{
		Metadata: &cosmicroses.Metadata{},
		Token:    token,
		Amount:   total + amount,
	}
	if err := l.total.Put(db, token, tr); err != nil {
		return errors.Wrap(err, "total released")
	}
	return nil
}
