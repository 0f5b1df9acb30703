package cosmicroses

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is passed between the runtime, decorators and handlers.
//
// There should exist two functions for every XYZ of type T that we want to
// support in Context:
//
//	WithXYZ(Context, T) Context
//	GetXYZ(Context) (val T, ok bool)
type Context = context.Context

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyContract
	contextKeyInvoker
)

// DefaultLogger is used for all context that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// WithContract sets the condition of the contract instance that is being
// executed.
func WithContract(ctx Context, self Condition) Context {
	return context.WithValue(ctx, contextKeyContract, self)
}

// GetContract returns the condition of the contract instance that is being
// executed. The address of the contract is the address of this condition.
func GetContract(ctx Context) (Condition, bool) {
	val, ok := ctx.Value(contextKeyContract).(Condition)
	return val, ok
}

// Invoker executes a message against another contract instance. The callee
// sees the currently executing contract as its caller. An invocation is part
// of the current call and shares its atomicity.
type Invoker interface {
	Invoke(ctx Context, contract Address, msg Msg) (*DeliverResult, error)
}

// WithInvoker sets the invoker available to the handlers.
func WithInvoker(ctx Context, inv Invoker) Context {
	return context.WithValue(ctx, contextKeyInvoker, inv)
}

// GetInvoker returns the invoker set for this context.
func GetInvoker(ctx Context) (Invoker, bool) {
	val, ok := ctx.Value(contextKeyInvoker).(Invoker)
	return val, ok
}
