package custody

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-custody/common"
)

// Account is a ledger record of a single custody party.
type Account struct {
	// Withdrawable amount of GAS.
	Balance int
	// Number of successful deposits.
	Deposits int
	// Number of successful withdrawals.
	Withdrawals int
}

const (
	accPrefix = 'a'

	totalKey    = "total"
	capacityKey = "capacity"
	limitKey    = "limit"
)

func accountKey(party interop.Hash160) []byte {
	return append([]byte{accPrefix}, party...)
}

// getAccount returns the ledger record of the party. Unknown parties get
// a zero record.
func getAccount(ctx storage.Context, party interop.Hash160) Account {
	data := storage.Get(ctx, accountKey(party))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

func putAccount(ctx storage.Context, party interop.Hash160, acc Account) {
	common.SetSerialized(ctx, accountKey(party), acc)
}

func getTotal(ctx storage.Context) int {
	return common.GetInt(ctx, totalKey)
}

// credit increases party balance and total deposited amount together.
func credit(ctx storage.Context, party interop.Hash160, amount int) {
	acc := getAccount(ctx, party)
	acc.Balance += amount
	putAccount(ctx, party, acc)

	storage.Put(ctx, totalKey, getTotal(ctx)+amount)
}

// debit decreases party balance and total deposited amount together.
func debit(ctx storage.Context, party interop.Hash160, amount int) {
	acc := getAccount(ctx, party)
	acc.Balance -= amount
	putAccount(ctx, party, acc)

	storage.Put(ctx, totalKey, getTotal(ctx)-amount)
}

func bumpDepositCount(ctx storage.Context, party interop.Hash160) {
	acc := getAccount(ctx, party)
	acc.Deposits += 1
	putAccount(ctx, party, acc)
}

func bumpWithdrawalCount(ctx storage.Context, party interop.Hash160) {
	acc := getAccount(ctx, party)
	acc.Withdrawals += 1
	putAccount(ctx, party, acc)
}

func getCapacity(ctx storage.Context) int {
	return common.GetInt(ctx, capacityKey)
}

func getWithdrawalLimit(ctx storage.Context) int {
	return common.GetInt(ctx, limitKey)
}
