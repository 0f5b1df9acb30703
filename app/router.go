package app

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-z][a-z0-9_]*/[a-zA-Z][a-zA-Z0-9_]*$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes   map[string]cosmicroses.Handler
	fallback cosmicroses.Handler
}

var _ cosmicroses.Registry = (*Router)(nil)
var _ cosmicroses.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]cosmicroses.Handler, 10),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered.
func (r *Router) Handle(path string, h cosmicroses.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// HandleFallback sets the handler used for all paths that were not
// registered.
func (r *Router) HandleFallback(h cosmicroses.Handler) {
	r.fallback = h
}

// Handler returns the registered Handler for this path. If no path is found,
// the fallback handler is returned. Without a fallback a handler failing
// with ErrNotFound is returned.
func (r *Router) Handler(path string) cosmicroses.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	if r.fallback != nil {
		return r.fallback
	}
	return notFoundHandler(path)
}

// Has returns true if a handler is registered for given path.
func (r *Router) Has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Paths returns all registered paths in lexicographical order.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the
// arguments.
type notFoundHandler string

func (path notFoundHandler) Check(cosmicroses.Context, cosmicroses.KVStore, cosmicroses.Tx) (*cosmicroses.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "unsupported operation %q", string(path))
}

func (path notFoundHandler) Deliver(cosmicroses.Context, cosmicroses.KVStore, cosmicroses.Tx) (*cosmicroses.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "unsupported operation %q", string(path))
}
