package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/neofs-custody/contracts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testBlockchain implements Blockchain. Any transaction-related call panics
// since embedded actor.RPCActor is nil.
type testBlockchain struct {
	actor.RPCActor

	requested []util.Uint160
	state     *state.Contract
	err       error
}

func (x *testBlockchain) GetContractStateByHash(addr util.Uint160) (*state.Contract, error) {
	x.requested = append(x.requested, addr)
	return x.state, x.err
}

func (x *testBlockchain) GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error) {
	panic("unexpected call")
}

func anyContract(t testing.TB) contracts.Contract {
	f, err := nef.NewFile(make([]byte, 32))
	require.NoError(t, err)

	return contracts.Contract{
		NEF:      *f,
		Manifest: *manifest.NewManifest("Custody"),
	}
}

func anyPrm(t testing.TB, b Blockchain) Prm {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	return Prm{
		Logger:          zaptest.NewLogger(t),
		Blockchain:      b,
		LocalAccount:    acc,
		Contract:        anyContract(t),
		Capacity:        1000,
		WithdrawalLimit: 300,
	}
}

func TestCheckPrm(t *testing.T) {
	for _, tc := range []struct {
		name   string
		modify func(*Prm)
	}{
		{name: "missing logger", modify: func(p *Prm) { p.Logger = nil }},
		{name: "missing blockchain", modify: func(p *Prm) { p.Blockchain = nil }},
		{name: "missing account", modify: func(p *Prm) { p.LocalAccount = nil }},
		{name: "zero capacity", modify: func(p *Prm) { p.Capacity = 0 }},
		{name: "negative capacity", modify: func(p *Prm) { p.Capacity = -1 }},
		{name: "zero limit", modify: func(p *Prm) { p.WithdrawalLimit = 0 }},
		{name: "negative limit", modify: func(p *Prm) { p.WithdrawalLimit = -1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := new(testBlockchain)
			prm := anyPrm(t, b)
			tc.modify(&prm)

			_, err := Deploy(context.Background(), prm)
			require.ErrorIs(t, err, errInvalidParameters)
			require.Empty(t, b.requested)
		})
	}

	require.NoError(t, checkPrm(anyPrm(t, new(testBlockchain))))
}

func TestDeployAlreadyDeployed(t *testing.T) {
	b := &testBlockchain{state: new(state.Contract)}
	prm := anyPrm(t, b)

	addr, err := Deploy(context.Background(), prm)
	require.NoError(t, err)

	expected := state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.Contract.NEF.Checksum, "Custody")
	require.Equal(t, expected, addr)
	require.Equal(t, []util.Uint160{expected}, b.requested)
}

func TestDeployStateFailure(t *testing.T) {
	errState := errors.New("connection refused")

	b := &testBlockchain{err: errState}

	_, err := Deploy(context.Background(), anyPrm(t, b))
	require.ErrorIs(t, err, errState)
}

func TestIsDeployed(t *testing.T) {
	var addr util.Uint160

	ok, err := isDeployed(&testBlockchain{state: new(state.Contract)}, addr)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = isDeployed(&testBlockchain{err: errors.New("Unknown contract")}, addr)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = isDeployed(&testBlockchain{err: errors.New("any")}, addr)
	require.Error(t, err)
}

func TestContractAddress(t *testing.T) {
	c := anyContract(t)

	acc1, err := wallet.NewAccount()
	require.NoError(t, err)
	acc2, err := wallet.NewAccount()
	require.NoError(t, err)

	require.Equal(t, ContractAddress(acc1.ScriptHash(), c), ContractAddress(acc1.ScriptHash(), c))
	require.NotEqual(t, ContractAddress(acc1.ScriptHash(), c), ContractAddress(acc2.ScriptHash(), c))
}

func TestCheckExecution(t *testing.T) {
	var res state.AppExecResult

	res.VMState = vmstate.Halt
	require.NoError(t, checkExecution(&res))

	res.VMState = vmstate.Fault
	res.FaultException = "custody capacity exceeded"

	err := checkExecution(&res)
	require.ErrorIs(t, err, errFault)
	require.ErrorContains(t, err, res.FaultException)
}
