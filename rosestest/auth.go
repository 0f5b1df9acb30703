package rosestest

import (
	"context"
	"fmt"

	"github.com/charlieabtbl/cosmicroses"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. Each time all signers (regardless which attribute) are
// considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer cosmicroses.Condition

	// Signers represents an authentication of multiple signers.
	Signers []cosmicroses.Condition
}

func (a *Auth) GetConditions(cosmicroses.Context) []cosmicroses.Condition {
	if a.Signer != nil {
		return append([]cosmicroses.Condition{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx cosmicroses.Context, addr cosmicroses.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx cosmicroses.Context, permissions ...cosmicroses.Condition) cosmicroses.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

func (a *CtxAuth) GetConditions(ctx cosmicroses.Context) []cosmicroses.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]cosmicroses.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []cosmicroses.Condition got %T", ctx.Value(a.Key)))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx cosmicroses.Context, addr cosmicroses.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
