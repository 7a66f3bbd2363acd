package main

import (
	"fmt"

	"github.com/nspcc-dev/neofs-custody/rpc/custody"
	"github.com/spf13/cobra"
)

// NewWithdrawCommand creates the withdraw command.
func NewWithdrawCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw GAS from the custody",
		Long: `Withdraw GAS from the custody contract back to the wallet account.

Amount must not exceed account balance and the per-withdrawal limit of the
contract.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithdraw(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runWithdraw(cmd *cobra.Command, rootOpts *RootOptions, amountStr string) error {
	cfg := rootOpts.cfg

	amount, err := parseAmount(amountStr)
	if err != nil {
		return err
	}

	if err := cfg.requireContract(); err != nil {
		return err
	}

	contract, err := parseHash160(cfg.Contract)
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}

	acc, err := openAccount(cfg)
	if err != nil {
		return err
	}

	b, err := dialBlockchain(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer b.close()

	act, err := b.actor(acc)
	if err != nil {
		return err
	}

	txID, vub, err := custody.New(act, contract).Withdraw(acc.ScriptHash(), amount)
	if err != nil {
		return fmt.Errorf("send withdrawal transaction: %w", custody.CheckError(err))
	}

	rootOpts.log.Debug("withdrawal transaction sent")

	res, err := await(cmd.Context(), act, txID, vub, cfg.Timeout)
	if err != nil {
		return err
	}

	events, err := custody.WithdrawalEventsFromApplicationLog(contractLog(res, contract))
	if err != nil {
		return err
	}

	for _, e := range events {
		fmt.Fprintf(cmd.OutOrStdout(), "Withdrawn %s GAS (tx %s)\n", formatAmount(e.Amount), txID.StringLE())
	}

	return nil
}
