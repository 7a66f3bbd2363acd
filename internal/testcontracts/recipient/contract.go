package recipient

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Reactions to incoming GAS.
const (
	ModeAccept = iota
	ModeWithdraw
	ModeDeposit
	ModeReject
)

// ErrRejected is thrown by OnNEP17Payment in ModeReject.
const ErrRejected = "payment rejected"

const (
	modeKey   = "mode"
	targetKey = "target"
	resultKey = "result"

	// stored when the nested call returned normally.
	noError = "ok"
)

func SetMode(mode int) {
	storage.Put(storage.GetContext(), modeKey, mode)
}

// Deposit sends GAS of the contract to custody.
func Deposit(custody interop.Hash160, amount int) {
	storage.Put(storage.GetContext(), targetKey, custody)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), custody, amount, nil) {
		panic("deposit failed")
	}
}

// Withdraw takes GAS of the contract back from custody.
func Withdraw(custody interop.Hash160, amount int) {
	storage.Put(storage.GetContext(), targetKey, custody)

	contract.Call(custody, "withdraw", contract.All, runtime.GetExecutingScriptHash(), amount)
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	var mode int
	if m := storage.Get(ctx, modeKey); m != nil {
		mode = m.(int)
	}

	switch mode {
	case ModeWithdraw:
		tryWithdraw(ctx)
	case ModeDeposit:
		tryDeposit(ctx)
	case ModeReject:
		panic(ErrRejected)
	}
}

// LastResult returns the exception caught from the nested call or "ok".
func LastResult() string {
	val := storage.Get(storage.GetReadOnlyContext(), resultKey)
	if val == nil {
		return ""
	}
	return val.(string)
}

func tryWithdraw(ctx storage.Context) {
	defer func() {
		if r := recover(); r != nil {
			storage.Put(storage.GetContext(), resultKey, r)
		}
	}()

	custody := storage.Get(ctx, targetKey).(interop.Hash160)
	contract.Call(custody, "withdraw", contract.All, runtime.GetExecutingScriptHash(), 1)
	storage.Put(ctx, resultKey, noError)
}

func tryDeposit(ctx storage.Context) {
	defer func() {
		if r := recover(); r != nil {
			storage.Put(storage.GetContext(), resultKey, r)
		}
	}()

	custody := storage.Get(ctx, targetKey).(interop.Hash160)
	contract.Call(custody, "deposit", contract.All, runtime.GetExecutingScriptHash(), 1)
	storage.Put(ctx, resultKey, noError)
}
