package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CustomerOutstanding computes one customer's outstanding credit from that
// customer's transactions. Per-customer ledgers have no opening balance of
// their own, so the fold starts at zero.
func CustomerOutstanding(txns []Transaction, customerID uuid.UUID) (decimal.Decimal, error) {
	scoped := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.CustomerID.Valid && txn.CustomerID.UUID == customerID {
			scoped = append(scoped, txn)
		}
	}
	return CurrentBalance(decimal.Zero, scoped, LedgerOutstanding)
}

// TotalOutstanding computes the aggregate outstanding across every customer
// of the owner whose transactions are supplied. It equals the sum of
// CustomerOutstanding over all customers; both formulations are the same
// zero-opening fold over the outstanding ledger.
func TotalOutstanding(txns []Transaction) (decimal.Decimal, error) {
	return CurrentBalance(decimal.Zero, txns, LedgerOutstanding)
}

// CustomerRunningBalances reconstructs one customer's outstanding
// trajectory, oldest first, for statement rendering.
func CustomerRunningBalances(txns []Transaction, customerID uuid.UUID) ([]Entry, error) {
	scoped := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.CustomerID.Valid && txn.CustomerID.UUID == customerID {
			scoped = append(scoped, txn)
		}
	}
	return RunningBalances(decimal.Zero, scoped, LedgerOutstanding)
}
