package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neofs-custody/contracts"
	"github.com/nspcc-dev/neofs-custody/deploy"
	"github.com/spf13/cobra"
)

// DeployOptions holds flags of the deploy command.
type DeployOptions struct {
	Capacity        string
	WithdrawalLimit string
	NEF             string
	Manifest        string
}

// NewDeployCommand creates the deploy command.
func NewDeployCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeployOptions{}

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy custody contract",
		Long: `Deploy compiled custody contract signed by the wallet account.

Capacity and withdrawal limit are fixed at deployment and can't be changed
afterwards. If the contract is already deployed by the account, nothing is
sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeploy(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Capacity, "capacity", "", "maximum total amount of GAS the contract accepts")
	cmd.Flags().StringVar(&opts.WithdrawalLimit, "limit", "", "maximum amount of GAS per single withdrawal")
	cmd.Flags().StringVar(&opts.NEF, "nef", "", "path to contract NEF file (overrides config)")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "path to contract manifest (overrides config)")
	_ = cmd.MarkFlagRequired("capacity")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func runDeploy(cmd *cobra.Command, rootOpts *RootOptions, opts *DeployOptions) error {
	cfg := rootOpts.cfg
	if opts.NEF != "" {
		cfg.NEF = opts.NEF
	}
	if opts.Manifest != "" {
		cfg.Manifest = opts.Manifest
	}

	capacity, err := parseAmount(opts.Capacity)
	if err != nil {
		return fmt.Errorf("capacity: %w", err)
	}

	limit, err := parseAmount(opts.WithdrawalLimit)
	if err != nil {
		return fmt.Errorf("withdrawal limit: %w", err)
	}

	if !capacity.IsInt64() || !limit.IsInt64() {
		return fmt.Errorf("capacity and limit must fit int64")
	}

	var ctr contracts.Contract
	if cfg.NEF != "" || cfg.Manifest != "" {
		ctr, err = contracts.ReadFiles(cfg.NEF, cfg.Manifest)
	} else {
		ctr, err = contracts.ReadDir(contracts.CustodyDir)
	}
	if err != nil {
		return fmt.Errorf("read contract: %w", err)
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

	addr, err := deploy.Deploy(cmd.Context(), deploy.Prm{
		Logger:          rootOpts.log,
		Blockchain:      b.rpc,
		LocalAccount:    acc,
		Contract:        ctr,
		Capacity:        capacity.Int64(),
		WithdrawalLimit: limit.Int64(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Contract: %s (%s)\n", addr.StringLE(), address.Uint160ToString(addr))

	return nil
}
