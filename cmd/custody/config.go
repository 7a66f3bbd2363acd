package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// passwordEnv is an environment variable with the wallet password. It takes
// precedence over the configuration file.
const passwordEnv = "CUSTODY_WALLET_PASSWORD"

const defaultTimeout = time.Minute

// Config is a configuration of the CLI read from YAML file. Command line
// flags override values from the file.
type Config struct {
	// Neo RPC server endpoint.
	RPC string `yaml:"rpc"`

	// Path to NEP-6 wallet file.
	Wallet string `yaml:"wallet"`

	// Wallet account address. Default wallet account is used if empty.
	Address string `yaml:"address"`

	// Wallet account password.
	Password string `yaml:"password"`

	// Custody contract address (LE hex string or Neo address).
	Contract string `yaml:"contract"`

	// Paths to compiled contract used by deploy command.
	NEF      string `yaml:"nef"`
	Manifest string `yaml:"manifest"`

	// Timeout of RPC requests and transaction awaiting.
	Timeout time.Duration `yaml:"timeout"`
}

var errMissingConfigValue = errors.New("missing required configuration value")

// loadConfig reads configuration from the YAML file. Empty path means no
// configuration file.
func loadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	if p, ok := os.LookupEnv(passwordEnv); ok {
		cfg.Password = p
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return cfg, nil
}

// applyFlags overrides configuration values by the explicitly set flags.
func (c *Config) applyFlags(opts *RootOptions, changed func(string) bool) {
	for _, f := range []struct {
		name string
		dst  *string
		src  string
	}{
		{"rpc", &c.RPC, opts.RPC},
		{"wallet", &c.Wallet, opts.Wallet},
		{"address", &c.Address, opts.Address},
		{"contract", &c.Contract, opts.Contract},
	} {
		if changed(f.name) {
			*f.dst = f.src
		}
	}
}

func (c Config) requireRPC() error {
	if c.RPC == "" {
		return fmt.Errorf("%w: rpc", errMissingConfigValue)
	}
	return nil
}

func (c Config) requireWallet() error {
	if c.Wallet == "" {
		return fmt.Errorf("%w: wallet", errMissingConfigValue)
	}
	return c.requireRPC()
}

func (c Config) requireContract() error {
	if c.Contract == "" {
		return fmt.Errorf("%w: contract", errMissingConfigValue)
	}
	return c.requireRPC()
}
