/*
Package auth carries the conditions of the caller of a contract through the
context. The runtime sets them for every call: a key holder for a top level
call, the calling contract instance for a nested invocation.
*/
package auth

import (
	"context"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/x"
)

type contextKey int // local to the auth module

const (
	contextKeyConditions contextKey = iota
)

// WithConditions returns a context with the caller set to given conditions.
// Previously set conditions are replaced, so that a nested call is never
// authorized by the conditions of the outer call.
func WithConditions(ctx cosmicroses.Context, conds ...cosmicroses.Condition) cosmicroses.Context {
	return context.WithValue(ctx, contextKeyConditions, conds)
}

// GetConditions returns who signed the current Context.
// May be empty.
func GetConditions(ctx cosmicroses.Context) []cosmicroses.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyConditions).([]cosmicroses.Condition)
	return val
}

// Authenticate implements x.Authenticator over the context conditions.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the conditions set on the context.
func (Authenticate) GetConditions(ctx cosmicroses.Context) []cosmicroses.Condition {
	return GetConditions(ctx)
}

// HasAddress returns true if any of the context conditions matches the
// address.
func (a Authenticate) HasAddress(ctx cosmicroses.Context, addr cosmicroses.Address) bool {
	for _, c := range GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
