package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RecentActivityLimit is the number of transactions in the dashboard feed.
const RecentActivityLimit = 5

// Summary is the dashboard view of one owner's books.
type Summary struct {
	BankBalance        decimal.Decimal
	TotalOutstanding   decimal.Decimal
	AachiMasalaBalance decimal.Decimal
	// TotalPurchases sums CUSTOMER_PURCHASE and AACHI_MASALA_PURCHASE
	// amounts. OWN_PURCHASE is intentionally excluded: own purchases are
	// tracked for the bank ledger only and the purchases view reports them
	// separately.
	TotalPurchases decimal.Decimal
	CustomerCount  int
	Recent         []Transaction
}

// Summarize composes the per-ledger balances and simple totals for the
// dashboard. Read-only; txns must already be scoped to one owner.
func Summarize(openings Openings, txns []Transaction, customerCount int) (Summary, error) {
	bank, err := CurrentBalance(openings.Bank, txns, LedgerBank)
	if err != nil {
		return Summary{}, err
	}
	outstanding, err := TotalOutstanding(txns)
	if err != nil {
		return Summary{}, err
	}
	aachi, err := CurrentBalance(openings.AachiMasala, txns, LedgerAachiMasala)
	if err != nil {
		return Summary{}, err
	}

	purchases := decimal.Zero
	for _, txn := range txns {
		if txn.Kind == KindCustomerPurchase || txn.Kind == KindAachiMasalaPurchase {
			purchases = purchases.Add(txn.Amount)
		}
	}

	return Summary{
		BankBalance:        bank,
		TotalOutstanding:   outstanding,
		AachiMasalaBalance: aachi,
		TotalPurchases:     purchases,
		CustomerCount:      customerCount,
		Recent:             RecentActivity(txns, RecentActivityLimit),
	}, nil
}

// RecentActivity returns the n most recent transactions across all kinds,
// date descending with createdAt descending as the tie-break.
func RecentActivity(txns []Transaction, n int) []Transaction {
	sorted := make([]Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
