package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig writes a configuration file using a fresh directory and
// returns its path.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("db: %s\nkey: %s\nlog_level: none\n",
		filepath.Join(dir, "state.db"), filepath.Join(dir, "priv.key"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func run(t *testing.T, cmd func(input io.Reader, output io.Writer, args []string) error, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := cmd(nil, &out, args); err != nil {
		t.Fatalf("command failed: %+v", err)
	}
	return out.String()
}

func TestLoadConfig(t *testing.T) {
	conf, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *conf)

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0600))
	conf, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, defaultConfig().DB, conf.DB)

	require.NoError(t, os.WriteFile(path, []byte("log_level: [\n"), 0600))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "error")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestKeygen(t *testing.T) {
	conf := testConfig(t)

	addr := strings.TrimSpace(run(t, cmdKeygen, "-config", conf))
	if err := cmdKeygen(nil, &bytes.Buffer{}, []string{"-config", conf}); err == nil {
		t.Fatal("existing key must not be overwritten")
	}

	lines := strings.Split(strings.TrimSpace(run(t, cmdKeyaddr, "-config", conf)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, addr, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], cosmicroses.AddressPrefix+"1"), lines[1])

	a, err := cosmicroses.ParseAddress(lines[0])
	require.NoError(t, err)
	b, err := cosmicroses.ParseAddress(lines[1])
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeployAndExec(t *testing.T) {
	conf := testConfig(t)
	addr := strings.TrimSpace(run(t, cmdKeygen, "-config", conf))

	initMsg := fmt.Sprintf(`{"name": "Rose", "symbol": "ROSE", "decimals": 2, "initialSupply": 100, "recipient": %q}`, addr)
	contract := strings.TrimSpace(run(t, cmdDeploy, "-config", conf, "-code", "token@1.0.0", "-msg", initMsg))

	balance := run(t, cmdExec, "-config", conf, "-query",
		"-contract", contract,
		"-path", "token/balanceOf",
		"-msg", fmt.Sprintf(`{"owner": %q}`, addr),
		"-result", "uint64")
	assert.Equal(t, `{"value":100}`, strings.TrimSpace(balance))

	other := cosmicroses.NewCondition("sigs", "ed25519", []byte("other")).Address()
	run(t, cmdExec, "-config", conf,
		"-contract", contract,
		"-path", "token/transfer",
		"-msg", fmt.Sprintf(`{"recipient": %q, "amount": 40}`, other.String()))

	balance = run(t, cmdExec, "-config", conf, "-query",
		"-contract", contract,
		"-path", "token/balanceOf",
		"-msg", fmt.Sprintf(`{"owner": %q}`, other.String()),
		"-result", "uint64")
	assert.Equal(t, `{"value":40}`, strings.TrimSpace(balance))

	instances := run(t, cmdInstances, "-config", conf)
	assert.Contains(t, instances, contract)
	assert.Contains(t, instances, "token@1.0.0")
}

func TestCodes(t *testing.T) {
	out := run(t, cmdCodes)
	for _, id := range []string{"payees@1.0.0", "proxy@1.0.0", "token@1.0.0", "work@1.0.0", "work@2.0.0"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, run(t, cmdCodes, "-paths"), "payees/release")
}

func TestPayeesFlag(t *testing.T) {
	addr := cosmicroses.NewCondition("sigs", "ed25519", []byte("payee")).Address()

	cases := map[string]struct {
		raw     string
		wantErr bool
	}{
		"hex address": {
			raw: addr.String() + ":150",
		},
		"bech32 address": {
			raw: mustBech32(t, addr) + ":150",
		},
		"missing shares": {
			raw:     addr.String(),
			wantErr: true,
		},
		"invalid shares": {
			raw:     addr.String() + ":many",
			wantErr: true,
		},
		"invalid address": {
			raw:     "zz:1",
			wantErr: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var p payeesFlag
			err := p.Set(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, p, 1)
			assert.Equal(t, addr, p[0].Address)
			assert.EqualValues(t, 150, p[0].Shares)
		})
	}
}

func mustBech32(t *testing.T, a cosmicroses.Address) string {
	t.Helper()
	s, err := a.Bech32()
	require.NoError(t, err)
	return s
}
