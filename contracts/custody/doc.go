/*
Package custody implements Custody contract which keeps GAS of many parties.

Custody contract accepts GAS deposits from any account or contract and tracks
withdrawable balance of every depositor. Total deposited amount can't exceed
the capacity and a single withdrawal can't exceed the withdrawal limit, both
are set once on deployment and never change.

GAS can be deposited either by a plain NEP-17 transfer to the contract address
or by Deposit method that pulls GAS from the witnessed account. Withdraw
settles the ledger first and transfers GAS after that. The contract stays
locked until the transfer returns, so a recipient contract calling Deposit
or Withdraw from its payment callback fails.

# Contract notifications

Deposit notification. This notification is produced when GAS is credited to
the party balance.

	Deposit:
	  - name: party
	    type: Hash160
	  - name: amount
	    type: Integer

Withdrawal notification. This notification is produced when GAS is
transferred back to the party.

	Withdrawal:
	  - name: party
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package custody

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'capacity' -> int
   maximum total amount of deposited GAS
 - 'limit' -> int
   maximum amount of a single withdrawal
 - 'total' -> int
   sum of all party balances
 - 'guard' -> []byte{1}
   present only while Withdraw transfers GAS out
 - a<interop.Hash160> -> std.Serialize(Account)
   balance sheet of all parties (here Account is a structure defined in current package)

# Accounting
Contract stores information about all custody accounts. Records are never
deleted, so deposit and withdrawal counters survive zero balance.
*/
