package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrOwnerWitnessFailed appears when the method must be called by an
// owner of some assets but was not.
const ErrOwnerWitnessFailed = "owner witness check failed"

// CheckOwnerWitness checks that owner either signed the transaction or is the
// contract calling the current one. It panics with ErrOwnerWitnessFailed
// message on fail.
func CheckOwnerWitness(owner interop.Hash160) {
	if !IsOwner(owner) {
		panic(ErrOwnerWitnessFailed)
	}
}

// IsOwner checks if addr is either a correct account witnessing the
// transaction or the script hash of the calling contract.
func IsOwner(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	if runtime.CheckWitness(addr) {
		return true
	}

	return runtime.GetCallingScriptHash().Equals(addr)
}
