package access

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/gconf"
	"github.com/charlieabtbl/cosmicroses/x"
)

const packageName = "access"

// Controller manages role membership of a contract instance. Use it from
// handlers of other packages to gate their entry points.
type Controller struct {
	auth   x.Authenticator
	bucket *GrantBucket
}

// NewController returns a controller that identifies callers using given
// authenticator.
func NewController(auth x.Authenticator) *Controller {
	return &Controller{
		auth:   auth,
		bucket: NewGrantBucket(),
	}
}

// HasRole returns true if the account holds the role.
func (c *Controller) HasRole(db cosmicroses.ReadOnlyKVStore, role Role, account cosmicroses.Address) (bool, error) {
	err := c.bucket.Has(db, grantKey(role, account))
	switch {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Grant gives the role to the account. Granting a role that is already held
// is a no-op.
func (c *Controller) Grant(db cosmicroses.KVStore, role Role, account cosmicroses.Address) error {
	if ok, err := c.HasRole(db, role, account); err != nil || ok {
		return err
	}
	g := &Grant{
		Metadata: &cosmicroses.Metadata{},
		Role:     role,
		Account:  account,
	}
	if err := c.bucket.Put(db, grantKey(role, account), g); err != nil {
		return errors.Wrap(err, "grant")
	}
	return nil
}

// Revoke takes the role from the account. Revoking a role that is not held
// is a no-op.
func (c *Controller) Revoke(db cosmicroses.KVStore, role Role, account cosmicroses.Address) error {
	ok, err := c.HasRole(db, role, account)
	if err != nil || !ok {
		return err
	}
	if err := c.bucket.Delete(db, grantKey(role, account)); err != nil {
		return errors.Wrap(err, "revoke")
	}
	return nil
}

// RequireRole returns the address of the caller if it holds the role. It
// fails with a MissingRoleError otherwise.
func (c *Controller) RequireRole(ctx cosmicroses.Context, db cosmicroses.ReadOnlyKVStore, role Role) (cosmicroses.Address, error) {
	caller, err := x.Caller(ctx, c.auth)
	if err != nil {
		return nil, &MissingRoleError{Role: role}
	}
	ok, err := c.HasRole(db, role, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingRoleError{Role: role}
	}
	return caller, nil
}

// Bootstrap grants the default admin role to the first admin of the
// instance. It can be called only once per instance.
func (c *Controller) Bootstrap(db cosmicroses.KVStore, admin cosmicroses.Address) error {
	switch ok, err := gconf.Exists(db, packageName); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrAlreadyInitialized, "admin already bootstrapped")
	}
	if err := gconf.Save(db, packageName, &Bootstrap{Admin: admin}); err != nil {
		return errors.Wrap(err, "bootstrap")
	}
	return c.Grant(db, DefaultAdminRole, admin)
}

// BootstrapAdmin returns the first admin of the instance.
func (c *Controller) BootstrapAdmin(db cosmicroses.ReadOnlyKVStore) (cosmicroses.Address, error) {
	var b Bootstrap
	if err := gconf.Load(db, packageName, &b); err != nil {
		return nil, err
	}
	return b.Admin, nil
}
