package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testConfig = `
rpc: http://localhost:30333
wallet: /path/to/wallet.json
address: NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP
password: secret
contract: "0x8f4a5e1b1e1f6f5a0f0e0d0c0b0a090807060504"
nef: custody.nef
manifest: custody.manifest.json
timeout: 15s
`

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		require.Equal(t, defaultTimeout, cfg.Timeout)
		require.Empty(t, cfg.RPC)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})

	t.Run("invalid file", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "rpc: [unclosed"))
		require.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		cfg, err := loadConfig(writeConfig(t, testConfig))
		require.NoError(t, err)
		require.Equal(t, Config{
			RPC:      "http://localhost:30333",
			Wallet:   "/path/to/wallet.json",
			Address:  "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP",
			Password: "secret",
			Contract: "0x8f4a5e1b1e1f6f5a0f0e0d0c0b0a090807060504",
			NEF:      "custody.nef",
			Manifest: "custody.manifest.json",
			Timeout:  15 * time.Second,
		}, cfg)
	})

	t.Run("password from env", func(t *testing.T) {
		t.Setenv(passwordEnv, "from env")

		cfg, err := loadConfig(writeConfig(t, testConfig))
		require.NoError(t, err)
		require.Equal(t, "from env", cfg.Password)
	})
}

func TestApplyFlags(t *testing.T) {
	cfg := Config{
		RPC:      "http://file:30333",
		Wallet:   "file.json",
		Address:  "file address",
		Contract: "file contract",
	}

	opts := &RootOptions{
		RPC:      "http://flag:30333",
		Wallet:   "flag.json",
		Address:  "",
		Contract: "flag contract",
	}

	changed := map[string]bool{"rpc": true, "contract": true}
	cfg.applyFlags(opts, func(name string) bool { return changed[name] })

	require.Equal(t, "http://flag:30333", cfg.RPC)
	require.Equal(t, "file.json", cfg.Wallet)
	require.Equal(t, "file address", cfg.Address)
	require.Equal(t, "flag contract", cfg.Contract)
}

func TestRequire(t *testing.T) {
	var cfg Config
	require.ErrorIs(t, cfg.requireRPC(), errMissingConfigValue)
	require.ErrorIs(t, cfg.requireWallet(), errMissingConfigValue)
	require.ErrorIs(t, cfg.requireContract(), errMissingConfigValue)

	cfg.Wallet = "w.json"
	cfg.Contract = "c"
	require.ErrorIs(t, cfg.requireWallet(), errMissingConfigValue)
	require.ErrorIs(t, cfg.requireContract(), errMissingConfigValue)

	cfg.RPC = "http://localhost:30333"
	require.NoError(t, cfg.requireWallet())
	require.NoError(t, cfg.requireContract())
}
