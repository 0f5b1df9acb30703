package crypto

import (
	"bytes"
	"testing"

	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private, err := GenPrivKeyEd25519(nil)
	assert.Nil(t, err)
	public := private.PublicKey()

	msg := []byte("foobar")
	sig := private.Sign(msg)

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if public.Verify([]byte("dingbooms"), sig) {
		t.Fatal("verified message signature of the wrong message")
	}
	if PublicKey(nil).Verify(msg, sig) {
		t.Fatal("verified with an empty key")
	}
}

func TestEd25519Condition(t *testing.T) {
	k1, err := GenPrivKeyEd25519(nil)
	assert.Nil(t, err)
	k2, err := GenPrivKeyEd25519(nil)
	assert.Nil(t, err)

	assert.Nil(t, k1.PublicKey().Condition().Validate())
	if bytes.Equal(k1.PublicKey().Condition(), k2.PublicKey().Condition()) {
		t.Fatal("two keys share a condition")
	}
	assert.Nil(t, k1.PublicKey().Address().ValidateOwner())
}

func TestPrivateKeyEncoding(t *testing.T) {
	key, err := GenPrivKeyEd25519(nil)
	assert.Nil(t, err)

	parsed, err := ParsePrivateKey(key.String())
	assert.Nil(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())

	_, err = ParsePrivateKey("abcd")
	assert.IsErr(t, errors.ErrInput, err)
	_, err = ParsePrivateKey("not hex")
	assert.IsErr(t, errors.ErrInput, err)
}
