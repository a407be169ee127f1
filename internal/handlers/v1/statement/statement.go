package statement

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/service"
)

// Entry is one statement line: a transaction plus the balance after it.
type Entry struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	Kind         string `json:"kind" doc:"Transaction kind"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	Description  string `json:"description,omitempty" doc:"Free-text description"`
	CustomerName string `json:"customerName,omitempty" doc:"Customer name for customer kinds"`
	BalanceAfter string `json:"balanceAfter" doc:"Ledger balance after this transaction in chronological order"`
}

// Statement is the API response model for a running-balance statement.
// Entries are newest first; balances were computed chronologically.
type Statement struct {
	OpeningBalance string  `json:"openingBalance" doc:"Ledger opening balance"`
	CurrentBalance string  `json:"currentBalance" doc:"Ledger balance after the latest transaction"`
	Entries        []Entry `json:"entries" doc:"Statement lines, newest first"`
}

func fromService(stmt *service.Statement) Statement {
	out := Statement{
		OpeningBalance: stmt.OpeningBalance.String(),
		CurrentBalance: stmt.CurrentBalance.String(),
		Entries:        make([]Entry, len(stmt.Entries)),
	}
	for i, entry := range stmt.Entries {
		out.Entries[i] = Entry{
			ID:           entry.Transaction.ID.String(),
			Kind:         string(entry.Transaction.Kind),
			Amount:       entry.Transaction.Amount.String(),
			Date:         entry.Transaction.Date.Format(time.RFC3339),
			Description:  entry.Transaction.Description,
			CustomerName: entry.Transaction.CustomerName,
			BalanceAfter: entry.BalanceAfter.String(),
		}
	}
	return out
}

func parseOwnerID(header string) (uuid.UUID, error) {
	ownerID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	return ownerID, nil
}
