package access

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"

	"github.com/charlieabtbl/cosmicroses/errors"
	"golang.org/x/crypto/sha3"
)

// RoleLength is the size of every role identifier.
const RoleLength = 32

// Role is an opaque identifier derived from a human readable name.
type Role []byte

// DefaultAdminRole is held by the addresses allowed to grant and revoke
// roles.
var DefaultAdminRole = Role(make([]byte, RoleLength))

var (
	namesMu sync.RWMutex
	names   = make(map[string]string)
)

// NewRole returns the role identifier for given name. The identifier is the
// keccak256 hash of the domain separated name.
func NewRole(name string) Role {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte("cosmicroses/role:" + name))
	r := Role(h.Sum(nil))

	namesMu.Lock()
	names[string(r)] = name
	namesMu.Unlock()
	return r
}

// ParseRole decodes a role from its text representation. "0" is the default
// admin role, a 0x prefixed string is a hex encoded identifier, any other
// value is a role name.
func ParseRole(s string) (Role, error) {
	switch {
	case s == "0":
		return DefaultAdminRole, nil
	case strings.HasPrefix(s, "0x"):
		raw, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "role: %s", err)
		}
		r := Role(raw)
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	case s == "":
		return nil, errors.Wrap(errors.ErrEmpty, "role")
	default:
		return NewRole(s), nil
	}
}

// IsAdmin returns true for the default admin role.
func (r Role) IsAdmin() bool {
	return bytes.Equal(r, DefaultAdminRole)
}

// Equals returns true if both identifiers are the same.
func (r Role) Equals(o Role) bool {
	return bytes.Equal(r, o)
}

// Validate returns an error if the identifier is not of the role size.
func (r Role) Validate() error {
	if len(r) != RoleLength {
		return errors.Wrapf(errors.ErrInput, "role must be %d bytes, got %d", RoleLength, len(r))
	}
	return nil
}

// String returns the name of the role if it is known, the hex encoded
// identifier otherwise.
func (r Role) String() string {
	if r.IsAdmin() {
		return "0"
	}
	namesMu.RLock()
	name, ok := names[string(r)]
	namesMu.RUnlock()
	if ok {
		return name
	}
	return "0x" + hex.EncodeToString(r)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot decode json")
	}
	role, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// MissingRoleError is returned when the caller does not hold a role
// required by an entry point.
type MissingRoleError struct {
	Role Role
}

func (e *MissingRoleError) Error() string {
	return "caller is missing role " + e.Role.String() + ": " + errors.ErrUnauthorized.Error()
}

// Cause makes the error an instance of errors.ErrUnauthorized.
func (e *MissingRoleError) Cause() error {
	return errors.ErrUnauthorized
}
