/*
Package cosmicroses defines the interfaces shared by the contract runtime and
every contract code: storage, messages, handlers, decorators, addresses and
the context helpers.

A contract code is a set of handlers registered under message paths. The
runtime in the app package deploys codes as instances, each owning a private
storage namespace, and routes every call to the handler registered for the
message path. Look into this package to get a brief overview of the building
blocks, and into x/ for the contract codes themselves.
*/
package cosmicroses
