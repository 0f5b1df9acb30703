package cosmicroses

import (
	"encoding/json"
	"testing"

	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    Condition
		wantExt string
		wantTyp string
		wantErr *errors.Error
	}{
		"signature condition": {
			cond:    NewCondition("sigs", "ed25519", []byte{1, 2, 3}),
			wantExt: "sigs",
			wantTyp: "ed25519",
		},
		"contract condition": {
			cond:    NewCondition("contract", "instance", []byte{0, 0, 0, 1}),
			wantExt: "contract",
			wantTyp: "instance",
		},
		"missing data": {
			cond:    Condition("sigs/ed25519/"),
			wantErr: errors.ErrInput,
		},
		"extension too short": {
			cond:    Condition("x/ed25519/01"),
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, _, err := tc.cond.Parse()
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExt, ext)
			assert.Equal(t, tc.wantTyp, typ)
		})
	}
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte("alice")).Address()
	b := NewCondition("sigs", "ed25519", []byte("bob")).Address()

	assert.Len(t, a, AddressLength)
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(NewCondition("sigs", "ed25519", []byte("alice")).Address()))
	assert.NoError(t, a.ValidateOwner())
}

func TestAddressValidation(t *testing.T) {
	cases := map[string]struct {
		addr    Address
		wantErr *errors.Error
	}{
		"valid": {
			addr: NewCondition("sigs", "ed25519", []byte("x")).Address(),
		},
		"empty": {
			addr:    nil,
			wantErr: errors.ErrInvalidAddress,
		},
		"zero": {
			addr:    make(Address, AddressLength),
			wantErr: errors.ErrInvalidAddress,
		},
		"too short": {
			addr:    Address{1, 2, 3},
			wantErr: errors.ErrInvalidAddress,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.addr.ValidateOwner()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
			}
		})
	}
}

func TestParseAddress(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{0xde, 0xad})
	addr := cond.Address()
	b32, err := addr.Bech32()
	require.NoError(t, err)

	cases := map[string]struct {
		input   string
		want    Address
		wantErr *errors.Error
	}{
		"plain hex": {
			input: addr.String(),
			want:  addr,
		},
		"hex with prefix": {
			input: "hex:" + addr.String(),
			want:  addr,
		},
		"0x hex": {
			input: "0x" + addr.String(),
			want:  addr,
		},
		"condition": {
			input: "cond:" + cond.String(),
			want:  addr,
		},
		"bech32 with prefix": {
			input: "bech32:" + b32,
			want:  addr,
		},
		"bech32 detected": {
			input: b32,
			want:  addr,
		},
		"empty": {
			input: "",
			want:  nil,
		},
		"malformed hex": {
			input:   "zz",
			wantErr: errors.ErrInvalidAddress,
		},
		"wrong length": {
			input:   "0102",
			wantErr: errors.ErrInvalidAddress,
		},
		"unknown format": {
			input:   "base64:AAAA",
			wantErr: errors.ErrType,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(tc.input)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := NewCondition("sigs", "ed25519", []byte("carol")).Address()

	var payload struct {
		Owner Address `json:"owner"`
	}
	raw, err := json.Marshal(map[string]Address{"owner": addr})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, addr, payload.Owner)
}
