/*
Package shares implements an ordered registry of addresses and their shares.

A registry is bound to a scope, so that many independent registries can be
kept in a single contract namespace. Entries keep the insertion order and the
sum of all shares is updated with every write.
*/
package shares
