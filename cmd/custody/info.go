package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print custody contract parameters",
		Long:  "Print capacity, withdrawal limit, total deposited amount and version of the custody contract.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInfo(cmd, rootOpts)
		},
	}

	return cmd
}

func runInfo(cmd *cobra.Command, rootOpts *RootOptions) error {
	cfg := rootOpts.cfg

	if err := cfg.requireContract(); err != nil {
		return err
	}

	contract, err := parseHash160(cfg.Contract)
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}

	b, err := dialBlockchain(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer b.close()

	r := b.reader(contract)

	for _, v := range []struct {
		name string
		get  func() (*big.Int, error)
	}{
		{"Capacity", r.Capacity},
		{"Withdrawal limit", r.WithdrawalLimit},
		{"Total deposited", r.TotalDeposited},
	} {
		res, err := v.get()
		if err != nil {
			return fmt.Errorf("get %s: %w", v.name, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s:\t%s GAS\n", v.name, formatAmount(res))
	}

	ver, err := r.Version()
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Version:\t%s\n", formatVersion(ver))

	return nil
}

// formatVersion formats version number encoded as major*1_000_000 +
// minor*1_000 + patch.
func formatVersion(v *big.Int) string {
	if !v.IsInt64() || v.Sign() < 0 {
		return v.String()
	}

	n := v.Int64()

	return fmt.Sprintf("%d.%d.%d", n/1_000_000, n/1_000%1_000, n%1_000)
}
