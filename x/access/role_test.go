package access

import (
	"encoding/json"
	"testing"

	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	minter := NewRole("MINTER")
	assert.Len(t, minter, RoleLength)
	assert.Equal(t, minter, NewRole("MINTER"))
	assert.NotEqual(t, minter, NewRole("PAUSER"))
	assert.False(t, minter.IsAdmin())
	assert.True(t, DefaultAdminRole.IsAdmin())

	assert.Equal(t, "MINTER", minter.String())
	assert.Equal(t, "0", DefaultAdminRole.String())
	unknown := Role(make([]byte, RoleLength))
	unknown[0] = 0xff
	assert.Equal(t, "0xff00000000000000000000000000000000000000000000000000000000000000", unknown.String())
}

func TestParseRole(t *testing.T) {
	cases := map[string]struct {
		input   string
		want    Role
		wantErr *errors.Error
	}{
		"admin": {
			input: "0",
			want:  DefaultAdminRole,
		},
		"name": {
			input: "RECORDING_LICENSEE",
			want:  NewRole("RECORDING_LICENSEE"),
		},
		"hex": {
			input: "0x" + "0000000000000000000000000000000000000000000000000000000000000000",
			want:  DefaultAdminRole,
		},
		"hex of invalid length": {
			input:   "0xff",
			wantErr: errors.ErrInput,
		},
		"malformed hex": {
			input:   "0xzz",
			wantErr: errors.ErrInput,
		},
		"empty": {
			input:   "",
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseRole(tc.input)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestRoleJSON(t *testing.T) {
	type holder struct {
		Role Role `json:"role"`
	}
	raw, err := json.Marshal(holder{Role: NewRole("PAUSER")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role": "PAUSER"}`, string(raw))

	var h holder
	require.NoError(t, json.Unmarshal(raw, &h))
	assert.Equal(t, NewRole("PAUSER"), h.Role)
}

func TestMissingRoleError(t *testing.T) {
	err := errors.Wrap(&MissingRoleError{Role: NewRole("PAUSER")}, "pause")
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Contains(t, err.Error(), "caller is missing role PAUSER")

	code, _ := errors.Info(err, false)
	assert.Equal(t, errors.ErrUnauthorized.Code(), code)
}
