/*
Package custodyconst holds values shared by the Custody contract and off-chain
code working with it.
*/
package custodyconst

// Exception messages the contract panics with. Every failure kind has its own
// message, so callers can tell them apart by the FAULT exception text.
const (
	// ErrZeroAmount is thrown when deposited or withdrawn amount is not positive.
	ErrZeroAmount = "amount must be positive"
	// ErrCapacityExceeded is thrown when a deposit would bring total deposited
	// amount above the capacity of the contract.
	ErrCapacityExceeded = "custody capacity exceeded"
	// ErrInsufficientBalance is thrown when a party withdraws more than it owns.
	ErrInsufficientBalance = "insufficient balance"
	// ErrWithdrawalLimitExceeded is thrown when a single withdrawal is bigger
	// than the per-withdrawal limit.
	ErrWithdrawalLimitExceeded = "withdrawal limit exceeded"
	// ErrTransferFailed is thrown when native GAS contract rejects a transfer.
	ErrTransferFailed = "GAS transfer failed"
	// ErrReentrancy is thrown when a deposit or withdrawal is attempted while a
	// withdrawal is still transferring funds.
	ErrReentrancy = "reentrant call"
	// ErrInvalidParameters is thrown by the deployment with bad capacity or
	// withdrawal limit.
	ErrInvalidParameters = "invalid parameters"
	// ErrUnsupportedToken is thrown when a token other than GAS is sent to the
	// contract.
	ErrUnsupportedToken = "only GAS can be accepted for deposit"
	// ErrInvalidSender is thrown for GAS payments without a sender account.
	ErrInvalidSender = "invalid sender"
)

// Notification names.
const (
	DepositEvent    = "Deposit"
	WithdrawalEvent = "Withdrawal"
)
