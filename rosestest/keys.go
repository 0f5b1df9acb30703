package rosestest

import (
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/crypto"
)

// NewKey returns a new random ed25519 key.
func NewKey() *crypto.PrivateKey {
	key, err := crypto.GenPrivKeyEd25519(nil)
	if err != nil {
		panic(err)
	}
	return key
}

// NewCondition returns the condition of a new random key.
func NewCondition() cosmicroses.Condition {
	return NewKey().PublicKey().Condition()
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation.
func ParseAddress(t testing.TB, encodedAddress string) cosmicroses.Address {
	t.Helper()

	addr, err := cosmicroses.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
