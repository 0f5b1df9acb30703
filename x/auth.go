package x

import (
	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/auth for all contract codes.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(cosmicroses.Context) []cosmicroses.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(cosmicroses.Context, cosmicroses.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx cosmicroses.Context) []cosmicroses.Condition {
	var res []cosmicroses.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx cosmicroses.Context, addr cosmicroses.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx cosmicroses.Context, auth Authenticator) []cosmicroses.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]cosmicroses.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx cosmicroses.Context, auth Authenticator) cosmicroses.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// Caller returns the address of the main signer. It fails with
// ErrUnauthorized when the call is not signed.
func Caller(ctx cosmicroses.Context, auth Authenticator) (cosmicroses.Address, error) {
	signer := MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	return signer.Address(), nil
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx cosmicroses.Context, auth Authenticator, required []cosmicroses.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}
