package ledger

import (
	"bytes"
	"sort"

	"github.com/shopspring/decimal"
)

// Entry pairs a transaction with the cumulative ledger balance after it is
// applied.
type Entry struct {
	Transaction  Transaction
	BalanceAfter decimal.Decimal
}

// RunningBalances reconstructs the chronological balance trajectory of one
// ledger: filter to transactions affecting it, sort ascending by date with
// createdAt then ID as tie-breaks, and fold from the opening balance,
// attaching the cumulative balance after each transaction.
//
// The result is independent of input order. Consumers wanting newest-first
// reverse the slice; BalanceAfter values must not be recomputed after
// reversal. An empty result means the current balance is the opening value.
func RunningBalances(opening decimal.Decimal, txns []Transaction, l Ledger) ([]Entry, error) {
	filtered := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		effect, err := Classify(txn.Kind)
		if err != nil {
			return nil, err
		}
		if effect.Affects(l) {
			filtered = append(filtered, txn)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return bytes.Compare(a.ID.Bytes(), b.ID.Bytes()) < 0
	})

	entries := make([]Entry, len(filtered))
	balance := opening
	for i, txn := range filtered {
		// Classify cannot fail here; the filter pass already vetted every kind.
		effect, _ := Classify(txn.Kind)
		if effect.Sign(l) > 0 {
			balance = balance.Add(txn.Amount)
		} else {
			balance = balance.Sub(txn.Amount)
		}
		entries[i] = Entry{Transaction: txn, BalanceAfter: balance}
	}
	return entries, nil
}
