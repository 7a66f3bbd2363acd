package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "custody", cmd.Use)
	assert.Contains(t, cmd.Long, "custody contract")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"deploy", "deposit", "withdraw", "balance", "info", "accounts", "events"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"config", "rpc", "wallet", "address", "contract", "verbose"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)
}

func TestDeployCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	deployCmd, _, err := cmd.Find([]string{"deploy"})
	require.NoError(t, err)

	for _, name := range []string{"capacity", "limit", "nef", "manifest"} {
		require.NotNil(t, deployCmd.Flags().Lookup(name), name)
	}
}

func TestDepositCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	depositCmd, _, err := cmd.Find([]string{"deposit"})
	require.NoError(t, err)

	transferFlag := depositCmd.Flags().Lookup("transfer")
	require.NotNil(t, transferFlag)
	assert.Equal(t, "false", transferFlag.DefValue)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Setenv(passwordEnv, "")

	var out bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCommandValidation(t *testing.T) {
	t.Run("missing contract", func(t *testing.T) {
		for _, args := range [][]string{
			{"info"},
			{"accounts"},
			{"balance", "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"},
			{"deposit", "1"},
			{"withdraw", "1"},
		} {
			_, err := execute(t, args...)
			require.ErrorIs(t, err, errMissingConfigValue, args)
		}
	})

	t.Run("missing rpc", func(t *testing.T) {
		_, err := execute(t, "--contract", "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP", "info")
		require.ErrorIs(t, err, errMissingConfigValue)
	})

	t.Run("invalid amount", func(t *testing.T) {
		for _, args := range [][]string{
			{"deposit", "abc"},
			{"withdraw", "0"},
			{"withdraw", "--", "-1"},
			{"deploy", "--capacity", "0", "--limit", "1"},
			{"deploy", "--capacity", "10", "--limit", "x"},
		} {
			_, err := execute(t, args...)
			require.ErrorContains(t, err, "invalid GAS amount", args)
		}
	})

	t.Run("invalid tx hash", func(t *testing.T) {
		_, err := execute(t, "events", "not a hash")
		require.ErrorContains(t, err, "invalid transaction hash")
	})

	t.Run("missing party", func(t *testing.T) {
		_, err := execute(t, "balance")
		require.Error(t, err)
	})

	t.Run("wrong arguments", func(t *testing.T) {
		_, err := execute(t, "deposit")
		require.Error(t, err)

		_, err = execute(t, "info", "extra")
		require.Error(t, err)
	})
}
