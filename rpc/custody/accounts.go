package custody

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// DefaultIteratorBatch is a number of accounts requested from the iterator
// session at once.
const DefaultIteratorBatch = 100

// MaxExpandedAccounts is a number of accounts requested in a single call when
// the RPC server has no sessions. It is bounded by the VM stack size.
const MaxExpandedAccounts = 250

// ErrTruncated is returned by Accounts along with the records that were read
// when the ledger could not be listed completely.
var ErrTruncated = errors.New("account list is truncated")

// AccountRecord is a ledger record of the particular party.
type AccountRecord struct {
	Party util.Uint160
	Account
}

// Accounts returns all ledger records. Records are read through iterator
// session in batches of the given size. If the RPC server doesn't support
// sessions, it expands the iterator by itself up to its own limit. When that
// limit is hit, the iterator is expanded in the VM with MaxExpandedAccounts
// items instead. ErrTruncated is returned together with the records if the
// list is still incomplete.
func (c *ContractReader) Accounts(batch int) ([]AccountRecord, error) {
	if batch <= 0 {
		batch = DefaultIteratorBatch
	}

	sessionID, iter, err := c.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("call listAccounts: %w", err)
	}

	var (
		items     []stackitem.Item
		truncated bool
	)

	if iter.ID == nil {
		items = iter.Values

		if iter.Truncated {
			items, err = c.ListAccountsExpanded(MaxExpandedAccounts)
			if err != nil {
				return nil, fmt.Errorf("call listAccounts with expanded iterator: %w", err)
			}

			truncated = len(items) >= MaxExpandedAccounts
		}
	} else {
		defer func() {
			_ = c.invoker.TerminateSession(sessionID)
		}()

		for {
			page, err := c.invoker.TraverseIterator(sessionID, &iter, batch)
			if err != nil {
				return nil, fmt.Errorf("traverse iterator: %w", err)
			}

			items = append(items, page...)

			if len(page) < batch {
				break
			}
		}
	}

	res := make([]AccountRecord, 0, len(items))

	for i := range items {
		var rec AccountRecord

		if err := rec.FromStackItem(items[i]); err != nil {
			return nil, fmt.Errorf("invalid record #%d: %w", i, err)
		}

		res = append(res, rec)
	}

	if truncated {
		return res, ErrTruncated
	}

	return res, nil
}

// FromStackItem decodes key-value pair produced by the listAccounts iterator.
func (r *AccountRecord) FromStackItem(item stackitem.Item) error {
	kv, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not a key-value pair")
	}

	if len(kv) != 2 {
		return fmt.Errorf("wrong number of pair elements %d", len(kv))
	}

	var err error

	r.Party, err = uint160FromStackItem(kv[0])
	if err != nil {
		return fmt.Errorf("party: %w", err)
	}

	if err = r.Account.FromStackItem(kv[1]); err != nil {
		return fmt.Errorf("account: %w", err)
	}

	return nil
}
