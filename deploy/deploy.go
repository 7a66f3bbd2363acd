package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/neofs-custody/contracts"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the custody contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)

	// GetApplicationLog returns execution results of the transaction. It's
	// used to await transaction acceptance.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)
}

// Prm groups all parameters of the custody contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// The account pays for the deployment and determines contract address.
	LocalAccount *wallet.Account

	// Compiled contract artifacts.
	Contract contracts.Contract

	// Maximum total amount of GAS the contract accepts (in GAS fractions).
	Capacity int64

	// Maximum amount of a single withdrawal (in GAS fractions).
	WithdrawalLimit int64
}

var (
	errInvalidParameters = errors.New("invalid deployment parameters")
	errFault             = errors.New("transaction faulted")
)

// ContractAddress returns address the contract gets being deployed by the
// specified sender.
func ContractAddress(sender util.Uint160, c contracts.Contract) util.Uint160 {
	return state.CreateContractHash(sender, c.NEF.Checksum, c.Manifest.Name)
}

// Deploy deploys custody contract to the blockchain and returns its address.
// If the contract is already deployed by the local account, Deploy does
// nothing and returns its address. Construction parameters are checked
// locally before any transaction is sent.
//
// Deploy aborts by context while awaiting transaction acceptance.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if err := checkPrm(prm); err != nil {
		return util.Uint160{}, err
	}

	addr := ContractAddress(prm.LocalAccount.ScriptHash(), prm.Contract)
	l := prm.Logger.With(zap.Stringer("address", addr))

	deployed, err := isDeployed(prm.Blockchain, addr)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check contract presence: %w", err)
	}

	if deployed {
		l.Info("custody contract is already deployed, skip")
		return addr, nil
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	l.Info("sending contract deployment transaction...",
		zap.Int64("capacity", prm.Capacity), zap.Int64("withdrawal limit", prm.WithdrawalLimit))

	txID, vub, err := management.New(act).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest,
		[]any{prm.Capacity, prm.WithdrawalLimit})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	l.Info("transaction sent, waiting for acceptance...",
		zap.Stringer("tx", txID), zap.Uint32("vub", vub))

	res, err := act.WaitAny(ctx, vub, txID)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("await deployment transaction %s: %w", txID.StringLE(), err)
	}

	if err := checkExecution(res); err != nil {
		return util.Uint160{}, fmt.Errorf("deployment transaction %s: %w", txID.StringLE(), err)
	}

	l.Info("custody contract successfully deployed", zap.Stringer("tx", txID))

	return addr, nil
}

func checkPrm(prm Prm) error {
	switch {
	case prm.Logger == nil:
		return fmt.Errorf("%w: missing logger", errInvalidParameters)
	case prm.Blockchain == nil:
		return fmt.Errorf("%w: missing blockchain", errInvalidParameters)
	case prm.LocalAccount == nil:
		return fmt.Errorf("%w: missing local account", errInvalidParameters)
	case prm.Capacity <= 0:
		return fmt.Errorf("%w: non-positive capacity %d", errInvalidParameters, prm.Capacity)
	case prm.WithdrawalLimit <= 0:
		return fmt.Errorf("%w: non-positive withdrawal limit %d", errInvalidParameters, prm.WithdrawalLimit)
	}

	return nil
}

// contractStateReader is a part of Blockchain used to check contract presence.
type contractStateReader interface {
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

func isDeployed(b contractStateReader, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err == nil {
		return true, nil
	}

	if strings.Contains(err.Error(), "Unknown contract") {
		return false, nil
	}

	return false, err
}

// checkExecution returns an error if the transaction wasn't executed
// successfully.
func checkExecution(res *state.AppExecResult) error {
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("%w: state %s, exception: %s", errFault, res.VMState, res.FaultException)
	}

	return nil
}
