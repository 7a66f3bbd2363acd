package main

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neofs-custody/rpc/custody"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events <tx-hash>",
		Short: "Print custody events of the transaction",
		Long: `Print Deposit and Withdrawal notifications produced by the transaction.

If contract address is configured, only notifications of this contract are
printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runEvents(cmd *cobra.Command, rootOpts *RootOptions, txStr string) error {
	cfg := rootOpts.cfg

	txID, err := util.Uint256DecodeStringLE(strings.TrimPrefix(txStr, "0x"))
	if err != nil {
		return fmt.Errorf("invalid transaction hash: %w", err)
	}

	var contract *util.Uint160
	if cfg.Contract != "" {
		h, err := parseHash160(cfg.Contract)
		if err != nil {
			return fmt.Errorf("contract: %w", err)
		}
		contract = &h
	}

	b, err := dialBlockchain(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer b.close()

	log, err := b.rpc.GetApplicationLog(txID, nil)
	if err != nil {
		return fmt.Errorf("get application log: %w", err)
	}

	return printEvents(cmd, filterLog(log, contract))
}

func printEvents(cmd *cobra.Command, log *result.ApplicationLog) error {
	deposits, err := custody.DepositEventsFromApplicationLog(log)
	if err != nil {
		return err
	}

	withdrawals, err := custody.WithdrawalEventsFromApplicationLog(log)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	for _, e := range deposits {
		fmt.Fprintf(w, "Deposit\t%s\t%s\n", address.Uint160ToString(e.Party), formatAmount(e.Amount))
	}

	for _, e := range withdrawals {
		fmt.Fprintf(w, "Withdrawal\t%s\t%s\n", address.Uint160ToString(e.Party), formatAmount(e.Amount))
	}

	if len(deposits)+len(withdrawals) == 0 {
		fmt.Fprintln(w, "No custody events")
	}

	return nil
}

// filterLog returns a copy of the log with notifications of the given
// contract only. Nil contract means no filtering.
func filterLog(log *result.ApplicationLog, contract *util.Uint160) *result.ApplicationLog {
	if contract == nil || log == nil {
		return log
	}

	res := &result.ApplicationLog{
		Container:  log.Container,
		Executions: make([]state.Execution, len(log.Executions)),
	}

	for i, ex := range log.Executions {
		res.Executions[i] = ex
		res.Executions[i].Events = nil

		for _, e := range ex.Events {
			if e.ScriptHash.Equals(*contract) {
				res.Executions[i].Events = append(res.Executions[i].Events, e)
			}
		}
	}

	return res
}

func appLog(res *state.AppExecResult) *result.ApplicationLog {
	return &result.ApplicationLog{
		Container:  res.Container,
		Executions: []state.Execution{res.Execution},
	}
}

// contractLog returns the execution result with notifications of the given
// contract only.
func contractLog(res *state.AppExecResult, contract util.Uint160) *result.ApplicationLog {
	return filterLog(appLog(res), &contract)
}
