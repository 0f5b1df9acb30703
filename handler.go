package cosmicroses

import (
	"encoding/json"
	"reflect"

	"github.com/charlieabtbl/cosmicroses/errors"
)

// Handler is a core engine that can process a few specific messages.
// This could represent "release a payment", or "mint a record".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like logging, or atomic execution, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult captures any non-error result of a check call.
type CheckResult struct {
	// Log is human-readable informational string
	Log string
}

// DeliverResult captures any non-error result of a deliver call.
type DeliverResult struct {
	// Data is a machine-parseable return value, the serialized result
	// message of the entry point, if any.
	Data []byte
	// Log is human-readable informational string
	Log string
}

// Msg is a single entry point call. Path names the entry point, for example
// "payees/release".
type Msg interface {
	Persistent

	// Path returns the path of the entry point this message is routed to.
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one of the fields is invalid.
	Validate() error
}

// Tx represents a single call. The runtime extends it with the target
// contract address.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}

	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "nil message")
	}

	// Big reflect magic below.
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "cannot assign %T to %T", msg, destination)
	}
	dest.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// Options are the genesis options.
// Each contract can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "read %q: %s", key, err)
	}
	return nil
}
