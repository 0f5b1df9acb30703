package access

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/migration"
	"github.com/charlieabtbl/cosmicroses/orm"
	"github.com/gogo/protobuf/proto"
)

// Grant is stored for every role held by an account.
type Grant struct {
	Metadata *cosmicroses.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Role     Role                  `protobuf:"bytes,2,opt,name=role,proto3,casttype=Role" json:"role"`
	Account  cosmicroses.Address   `protobuf:"bytes,3,opt,name=account,proto3,casttype=Address" json:"account"`
}

func (m *Grant) Reset()         { *m = Grant{} }
func (m *Grant) String() string { return proto.CompactTextString(m) }
func (*Grant) ProtoMessage()    {}

func (m *Grant) GetMetadata() *cosmicroses.Metadata {
	return m.Metadata
}

func (m *Grant) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Role.Validate(); err != nil {
		return errors.Wrap(err, "role")
	}
	if err := m.Account.ValidateOwner(); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}

// Bootstrap is the configuration singleton recording the first admin of an
// instance.
type Bootstrap struct {
	Admin cosmicroses.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=Address" json:"admin"`
}

func (m *Bootstrap) Reset()         { *m = Bootstrap{} }
func (m *Bootstrap) String() string { return proto.CompactTextString(m) }
func (*Bootstrap) ProtoMessage()    {}

func (m *Bootstrap) Validate() error {
	if err := m.Admin.ValidateOwner(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

// GrantBucket stores role grants, indexed by the role and the account.
type GrantBucket struct {
	orm.ModelBucket
}

// NewGrantBucket returns a bucket for managing role grants.
func NewGrantBucket() *GrantBucket {
	b := orm.NewModelBucket("grant", &Grant{})
	return &GrantBucket{
		ModelBucket: migration.NewModelBucket(packageName, b),
	}
}

func grantKey(role Role, account cosmicroses.Address) []byte {
	key := make([]byte, 0, len(role)+len(account))
	key = append(key, role...)
	return append(key, account...)
}
