package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neofs-custody/rpc/custody"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewAccountsCommand creates the accounts command.
func NewAccountsCommand(rootOpts *RootOptions) *cobra.Command {
	var batch int

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List all custody ledger records",
		Long:  "List balances and deposit/withdrawal counters of all parties known to the custody contract.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAccounts(cmd, rootOpts, batch)
		},
	}

	cmd.Flags().IntVar(&batch, "batch", custody.DefaultIteratorBatch, "number of records requested at once")

	return cmd
}

func runAccounts(cmd *cobra.Command, rootOpts *RootOptions, batch int) error {
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

	recs, err := b.reader(contract).Accounts(batch)
	if errors.Is(err, custody.ErrTruncated) {
		rootOpts.log.Warn("ledger listing is incomplete, RPC server doesn't support sessions",
			zap.Int("records", len(recs)))
	} else if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PARTY\tBALANCE\tDEPOSITS\tWITHDRAWALS")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", address.Uint160ToString(r.Party),
			formatAmount(r.Balance), r.Deposits, r.Withdrawals)
	}

	return w.Flush()
}
