package ledger

import "github.com/shopspring/decimal"

// CurrentBalance folds the signed amounts of every transaction affecting
// the given ledger onto the opening balance. Summation is commutative, so
// input order is irrelevant; callers that need the trajectory use
// RunningBalances instead.
func CurrentBalance(opening decimal.Decimal, txns []Transaction, l Ledger) (decimal.Decimal, error) {
	balance := opening
	for _, txn := range txns {
		effect, err := Classify(txn.Kind)
		if err != nil {
			return decimal.Decimal{}, err
		}
		switch effect.Sign(l) {
		case +1:
			balance = balance.Add(txn.Amount)
		case -1:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance, nil
}
