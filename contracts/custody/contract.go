package custody

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-custody/common"
	"github.com/nspcc-dev/neofs-custody/contracts/custody/custodyconst"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	if data == nil {
		panic(custodyconst.ErrInvalidParameters)
	}

	args := data.([]any)
	if len(args) != 2 {
		panic(custodyconst.ErrInvalidParameters)
	}

	capacity := args[0].(int)
	limit := args[1].(int)

	if capacity <= 0 || limit <= 0 {
		panic(custodyconst.ErrInvalidParameters)
	}

	ctx := storage.GetContext()
	storage.Put(ctx, capacityKey, capacity)
	storage.Put(ctx, limitKey, limit)

	runtime.Log("custody contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// GAS sent to the contract is credited to the sender the same way Deposit
// does it. Other tokens are rejected.
//
// It produces Deposit notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic(custodyconst.ErrUnsupportedToken)
	}

	if len(from) != interop.Hash160Len {
		panic(custodyconst.ErrInvalidSender)
	}

	ctx := storage.GetContext()

	checkGuard(ctx)
	checkDeposit(ctx, amount)

	credit(ctx, from, amount)
	bumpDepositCount(ctx, from)

	runtime.Notify(custodyconst.DepositEvent, from, amount)
}

// Deposit transfers amount of GAS from the specified account to the contract
// and credits it to the account balance. It can be invoked only by the account
// owner. Total deposited amount must not exceed the contract capacity.
//
// It produces Deposit notification.
func Deposit(from interop.Hash160, amount int) {
	ctx := storage.GetContext()

	checkGuard(ctx)
	common.CheckOwnerWitness(from)
	checkDeposit(ctx, amount)

	// Crediting happens in OnNEP17Payment called back by GAS contract.
	if !gas.Transfer(from, runtime.GetExecutingScriptHash(), amount, nil) {
		panic(custodyconst.ErrTransferFailed)
	}
}

// Withdraw transfers amount of GAS from the contract back to the specified
// account. It can be invoked only by the account owner. Amount must not exceed
// the account balance and the per-withdrawal limit.
//
// Deposits and withdrawals are rejected while the GAS is being transferred,
// so the recipient can't reenter the contract from its payment callback. The
// lock is released only after a successful transfer, any failure reverts it
// together with the rest of the call.
//
// It produces Withdrawal notification.
func Withdraw(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	acquireGuard(ctx)

	common.CheckOwnerWitness(to)

	if amount <= 0 {
		panic(custodyconst.ErrZeroAmount)
	}

	acc := getAccount(ctx, to)
	if amount > acc.Balance {
		panic(custodyconst.ErrInsufficientBalance)
	}

	if amount > getWithdrawalLimit(ctx) {
		panic(custodyconst.ErrWithdrawalLimitExceeded)
	}

	// ledger must be settled before the funds leave the contract
	debit(ctx, to, amount)
	bumpWithdrawalCount(ctx, to)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil) {
		panic(custodyconst.ErrTransferFailed)
	}

	releaseGuard(ctx)

	runtime.Notify(custodyconst.WithdrawalEvent, to, amount)
}

// BalanceOf returns withdrawable GAS amount of the party.
func BalanceOf(party interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	acc := getAccount(ctx, party)

	return acc.Balance
}

// DepositCount returns the number of successful deposits made by the party.
func DepositCount(party interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	acc := getAccount(ctx, party)

	return acc.Deposits
}

// WithdrawalCount returns the number of successful withdrawals made by the
// party.
func WithdrawalCount(party interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	acc := getAccount(ctx, party)

	return acc.Withdrawals
}

// TotalDeposited returns the sum of all party balances.
func TotalDeposited() int {
	ctx := storage.GetReadOnlyContext()
	return getTotal(ctx)
}

// Capacity returns the maximum total amount of GAS the contract accepts.
func Capacity() int {
	ctx := storage.GetReadOnlyContext()
	return getCapacity(ctx)
}

// WithdrawalLimit returns the maximum amount of a single withdrawal.
func WithdrawalLimit() int {
	ctx := storage.GetReadOnlyContext()
	return getWithdrawalLimit(ctx)
}

// ListAccounts returns an iterator over all ledger records. Iteration is
// through key-value pair, where key is party script hash and value is
// Account structure.
func ListAccounts() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{accPrefix}, storage.RemovePrefix|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkDeposit panics if amount can't be accepted.
func checkDeposit(ctx storage.Context, amount int) {
	if amount <= 0 {
		panic(custodyconst.ErrZeroAmount)
	}

	if getTotal(ctx)+amount > getCapacity(ctx) {
		panic(custodyconst.ErrCapacityExceeded)
	}
}
