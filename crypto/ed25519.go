package crypto

import (
	"encoding/hex"
	"io"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from keys
const ExtensionName = "sigs"

// PrivateKey is an ed25519 private key identifying a caller.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenPrivKeyEd25519 returns a random new private key. When rand is nil,
// crypto/rand is used as the source of randomness.
func GenPrivKeyEd25519(rand io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "generate key: %s", err)
	}
	return &PrivateKey{key: priv}, nil
}

// ParsePrivateKey decodes the hex representation of a private key as
// returned by the String method.
func ParsePrivateKey(enc string) (*PrivateKey, error) {
	raw, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "private key hex")
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "private key length %d", len(raw))
	}
	return &PrivateKey{key: ed25519.PrivateKey(raw)}, nil
}

// String returns the hex representation of this key.
func (p *PrivateKey) String() string {
	return hex.EncodeToString(p.key)
}

// PublicKey returns the corresponding public key.
func (p *PrivateKey) PublicKey() PublicKey {
	return PublicKey(p.key.Public().(ed25519.PublicKey))
}

// Sign returns a signature of the message.
func (p *PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(p.key, message)
}

// PublicKey is an ed25519 public key.
type PublicKey []byte

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message, sig []byte) bool {
	if len(p) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// Condition encodes the public key into a condition
func (p PublicKey) Condition() cosmicroses.Condition {
	return cosmicroses.NewCondition(ExtensionName, "ed25519", p)
}

// Address returns the address of the key holder.
func (p PublicKey) Address() cosmicroses.Address {
	return p.Condition().Address()
}
