package main

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
)

// NewBalanceCommand creates the balance command.
func NewBalanceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [party]",
		Short: "Print party balance in the custody",
		Long: `Print withdrawable balance and deposit/withdrawal counters of the party.

Party is given as Neo address or script hash. Configured account address is
used if omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var party string
			if len(args) > 0 {
				party = args[0]
			}
			return runBalance(cmd, rootOpts, party)
		},
	}

	return cmd
}

func runBalance(cmd *cobra.Command, rootOpts *RootOptions, partyStr string) error {
	cfg := rootOpts.cfg

	if partyStr == "" {
		partyStr = cfg.Address
	}

	party, err := parseHash160(partyStr)
	if err != nil {
		return fmt.Errorf("party: %w", err)
	}

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

	fmt.Fprintf(cmd.OutOrStdout(), "Party:\t%s\n", address.Uint160ToString(party))

	for _, v := range []struct {
		name string
		get  func(util.Uint160) (*big.Int, error)
		gas  bool
	}{
		{"Balance", r.BalanceOf, true},
		{"Deposits", r.DepositCount, false},
		{"Withdrawals", r.WithdrawalCount, false},
	} {
		res, err := v.get(party)
		if err != nil {
			return fmt.Errorf("get %s: %w", v.name, err)
		}

		if v.gas {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\t%s GAS\n", v.name, formatAmount(res))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\t%s\n", v.name, res)
		}
	}

	return nil
}
