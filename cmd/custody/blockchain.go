package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/neofs-custody/rpc/custody"
)

// gasDecimals is a precision of GAS amounts.
const gasDecimals = 8

// wrapper over Neo RPC client providing services needed for CLI commands.
type remoteBlockchain struct {
	rpc *rpcclient.Client
}

// dialBlockchain dials Neo RPC server. Connection and all requests are done
// within configured timeout.
func dialBlockchain(ctx context.Context, cfg Config) (*remoteBlockchain, error) {
	if err := cfg.requireRPC(); err != nil {
		return nil, err
	}

	c, err := rpcclient.New(ctx, cfg.RPC, rpcclient.Options{
		DialTimeout:    cfg.Timeout,
		RequestTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	if err := c.Init(); err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{rpc: c}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

func (x *remoteBlockchain) reader(contract util.Uint160) *custody.ContractReader {
	return custody.NewReader(invoker.New(x.rpc, nil), contract)
}

// actor returns transaction sender signing with the account. Witness is valid
// for the entry script and the listed contracts called deeper.
func (x *remoteBlockchain) actor(acc *wallet.Account, allowed ...util.Uint160) (*actor.Actor, error) {
	if len(allowed) == 0 {
		act, err := actor.NewSimple(x.rpc, acc)
		if err != nil {
			return nil, fmt.Errorf("init actor: %w", err)
		}
		return act, nil
	}

	act, err := actor.New(x.rpc, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account:          acc.ScriptHash(),
			Scopes:           transaction.CalledByEntry | transaction.CustomContracts,
			AllowedContracts: allowed,
		},
		Account: acc,
	}})
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}
	return act, nil
}

// await waits for the transaction acceptance and checks its execution result.
func await(ctx context.Context, act *actor.Actor, txID util.Uint256, vub uint32, timeout time.Duration) (*state.AppExecResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := act.WaitAny(ctx, vub, txID)
	if err != nil {
		return nil, fmt.Errorf("await transaction %s: %w", txID.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return res, fmt.Errorf("transaction %s: %w", txID.StringLE(), custody.FaultError(res.FaultException))
	}

	return res, nil
}

// openAccount opens wallet account configured for the signing.
func openAccount(cfg Config) (*wallet.Account, error) {
	if err := cfg.requireWallet(); err != nil {
		return nil, err
	}

	w, err := wallet.NewWalletFromFile(cfg.Wallet)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var h util.Uint160
	if cfg.Address == "" {
		h = w.GetChangeAddress()
	} else {
		h, err = address.StringToUint160(cfg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s not found in the wallet", address.Uint160ToString(h))
	}

	if err := acc.Decrypt(cfg.Password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// parseHash160 parses script hash given either as LE hex string (optionally
// prefixed with 0x) or as Neo address.
func parseHash160(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("empty script hash")
	}

	if h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x")); err == nil {
		return h, nil
	}

	h, err := address.StringToUint160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("%q is neither script hash nor address", s)
	}

	return h, nil
}

// parseAmount parses GAS amount given in decimal form (e.g. "1.5") and returns
// it in GAS fractions. Amount must be positive.
func parseAmount(s string) (*big.Int, error) {
	v, err := fixedn.FromString(s, gasDecimals)
	if err != nil {
		return nil, fmt.Errorf("invalid GAS amount %q: %w", s, err)
	}

	if v.Sign() <= 0 {
		return nil, fmt.Errorf("invalid GAS amount %q: must be positive", s)
	}

	return v, nil
}

func formatAmount(v *big.Int) string {
	return fixedn.ToString(v, gasDecimals)
}
