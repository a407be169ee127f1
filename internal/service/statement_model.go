package service

import (
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
)

// Statement is an ordered running-balance view of one ledger, newest
// first for display. Entries carry the balance after each transaction
// computed in chronological order; reversing for presentation does not
// change them.
type Statement struct {
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Entries        []ledger.Entry
}

func newStatement(opening decimal.Decimal, chronological []ledger.Entry) Statement {
	current := opening
	if len(chronological) > 0 {
		current = chronological[len(chronological)-1].BalanceAfter
	}

	reversed := make([]ledger.Entry, len(chronological))
	for i, entry := range chronological {
		reversed[len(chronological)-1-i] = entry
	}

	return Statement{
		OpeningBalance: opening,
		CurrentBalance: current,
		Entries:        reversed,
	}
}
