/*
Package access implements role based access control for contracts.

A role is granted to an address by a holder of the default admin role. The
first admin of a contract instance is bootstrapped exactly once, by the
constructor or the initializer of the code. Handlers of other packages gate
their mutating entry points using Controller.RequireRole.
*/
package access
