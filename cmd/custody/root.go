package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	RPC        string
	Wallet     string
	Address    string
	Contract   string
	Verbose    bool

	// resolved before any subcommand runs
	cfg Config
	log *zap.Logger
}

// NewRootCommand creates the root command of the custody CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "custody",
		Short: "GAS custody contract client",
		Long: `Deploy the GAS custody contract and interact with it: deposit and withdraw
GAS, inspect party balances, ledger records and emitted events.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}

			cfg.applyFlags(opts, cmd.Flags().Changed)
			opts.cfg = cfg

			opts.log, err = newLogger(opts.Verbose)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.RPC, "rpc", "r", "", "Neo RPC server endpoint")
	cmd.PersistentFlags().StringVarP(&opts.Wallet, "wallet", "w", "", "path to NEP-6 wallet")
	cmd.PersistentFlags().StringVarP(&opts.Address, "address", "a", "", "wallet account address (default account if empty)")
	cmd.PersistentFlags().StringVar(&opts.Contract, "contract", "", "custody contract address (LE hash or Neo address)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewDeployCommand(opts))
	cmd.AddCommand(NewDepositCommand(opts))
	cmd.AddCommand(NewWithdrawCommand(opts))
	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewAccountsCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
