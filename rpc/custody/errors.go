package custody

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neofs-custody/common"
	"github.com/nspcc-dev/neofs-custody/contracts/custody/custodyconst"
)

// Errors returned by the contract methods. Use errors.Is to check the result
// of FaultError and CheckError.
var (
	ErrZeroAmount              = errors.New(custodyconst.ErrZeroAmount)
	ErrCapacityExceeded        = errors.New(custodyconst.ErrCapacityExceeded)
	ErrInsufficientBalance     = errors.New(custodyconst.ErrInsufficientBalance)
	ErrWithdrawalLimitExceeded = errors.New(custodyconst.ErrWithdrawalLimitExceeded)
	ErrTransferFailed          = errors.New(custodyconst.ErrTransferFailed)
	ErrReentrancy              = errors.New(custodyconst.ErrReentrancy)
	ErrInvalidParameters       = errors.New(custodyconst.ErrInvalidParameters)
	ErrUnsupportedToken        = errors.New(custodyconst.ErrUnsupportedToken)
	ErrInvalidSender           = errors.New(custodyconst.ErrInvalidSender)
	ErrWitness                 = errors.New(common.ErrOwnerWitnessFailed)
)

var knownErrors = []error{
	ErrZeroAmount,
	ErrCapacityExceeded,
	ErrInsufficientBalance,
	ErrWithdrawalLimitExceeded,
	ErrTransferFailed,
	ErrReentrancy,
	ErrInvalidParameters,
	ErrUnsupportedToken,
	ErrInvalidSender,
	ErrWitness,
}

// FaultError converts VM fault exception to the error. Known contract
// failures are wrapped into corresponding sentinel errors. Returns nil for
// an empty exception.
func FaultError(exception string) error {
	if exception == "" {
		return nil
	}

	for _, err := range knownErrors {
		if strings.Contains(exception, err.Error()) {
			return fmt.Errorf("%w (%s)", err, exception)
		}
	}

	return errors.New(exception)
}

// CheckError maps an error returned by the RPC actor (e.g. failed test
// invocation) to the contract error if possible. Other errors are returned
// as is.
func CheckError(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range knownErrors {
		if strings.Contains(err.Error(), known.Error()) {
			return fmt.Errorf("%w: %w", known, err)
		}
	}

	return err
}
