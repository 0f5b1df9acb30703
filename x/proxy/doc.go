/*
Package proxy implements an upgradeable contract.

A proxy instance owns a storage namespace and delegates every call it does
not serve itself to the code of its current implementation. The
implementation runs against the proxy namespace, so replacing it with a
newer code keeps all data. The storage schema of the implementation is
migrated forward on every upgrade.

The initializer path of the implementation can be called through the proxy
only once. Any other implementation call before that fails.
*/
package proxy
