package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neofs-custody/rpc/custody"
	"github.com/spf13/cobra"
)

// NewDepositCommand creates the deposit command.
func NewDepositCommand(rootOpts *RootOptions) *cobra.Command {
	var transfer bool

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit GAS to the custody",
		Long: `Deposit GAS from the wallet account to the custody contract.

By default contract deposit method is called and the contract pulls GAS from
the account. With --transfer flag GAS is sent to the contract with a plain
NEP-17 transfer instead. Both ways credit the account the same way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeposit(cmd, rootOpts, args[0], transfer)
		},
	}

	cmd.Flags().BoolVar(&transfer, "transfer", false, "send GAS with NEP-17 transfer instead of calling deposit")

	return cmd
}

func runDeposit(cmd *cobra.Command, rootOpts *RootOptions, amountStr string, transfer bool) error {
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

	// contract pulls GAS from the account, so GAS contract must accept
	// the witness too
	act, err := b.actor(acc, gas.Hash)
	if err != nil {
		return err
	}

	var (
		txID util.Uint256
		vub  uint32
	)

	if transfer {
		txID, vub, err = gas.New(act).Transfer(acc.ScriptHash(), contract, amount, nil)
	} else {
		txID, vub, err = custody.New(act, contract).Deposit(acc.ScriptHash(), amount)
	}
	if err != nil {
		return fmt.Errorf("send deposit transaction: %w", custody.CheckError(err))
	}

	rootOpts.log.Debug("deposit transaction sent")

	res, err := await(cmd.Context(), act, txID, vub, cfg.Timeout)
	if err != nil {
		return err
	}

	events, err := custody.DepositEventsFromApplicationLog(contractLog(res, contract))
	if err != nil {
		return err
	}

	for _, e := range events {
		fmt.Fprintf(cmd.OutOrStdout(), "Deposited %s GAS (tx %s)\n", formatAmount(e.Amount), txID.StringLE())
	}

	return nil
}
