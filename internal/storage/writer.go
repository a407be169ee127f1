package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// Writer exposes the storage tables bound to one open transaction. Every
// action performed by the operator runs against exactly one Writer.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionTable
	Customers    sqlconfig.ICustomerTable
	Settings     sqlconfig.ISettingsTable
}

func NewWriter(tx bob.Tx) *Writer {
	transactions := sqlconfig.NewTransactionsTable(tx)
	customers := sqlconfig.NewCustomersTable(tx)
	settings := sqlconfig.NewSettingsTable(tx)

	return &Writer{
		tx:           tx,
		Transactions: &transactions,
		Customers:    &customers,
		Settings:     &settings,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
