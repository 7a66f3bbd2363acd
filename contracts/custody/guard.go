package custody

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-custody/contracts/custody/custodyconst"
)

// guardKey is present in the storage while a withdrawal transfers funds out.
const guardKey = "guard"

// checkGuard panics if a guarded call is in progress.
func checkGuard(ctx storage.Context) {
	if storage.Get(ctx, guardKey) != nil {
		panic(custodyconst.ErrReentrancy)
	}
}

// acquireGuard locks the contract for nested deposits and withdrawals. Every
// successful acquireGuard must be followed by releaseGuard unless the call
// fails.
func acquireGuard(ctx storage.Context) {
	checkGuard(ctx)
	storage.Put(ctx, guardKey, []byte{1})
}

func releaseGuard(ctx storage.Context) {
	storage.Delete(ctx, guardKey)
}
