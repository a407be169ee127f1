package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"id", "owner_id", "kind", "amount", "txn_date", "description", "customer_id", "created_at",
}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable bound to the given
// executor, which may be a database handle or an open transaction.
func NewTransactionsTable(exec bob.Executor) TransactionsTable {
	return TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key, scoped to one owner.
func (t *TransactionsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, mapRowError(err)
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	txnDate := create.TxnDate
	if txnDate.IsZero() {
		txnDate = time.Now().UTC()
	}
	q := psql.Insert(
		im.Into("transactions", "owner_id", "kind", "amount", "txn_date", "description", "customer_id"),
		im.Values(psql.Arg(create.OwnerID, string(create.Kind), create.Amount, txnDate, create.Description, create.CustomerID)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update amends the mutable fields of a transaction. Kind and customer
// binding are immutable and have no setters here.
func (t *TransactionsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
	}
	if update.Amount.IsValue() {
		mods = append(mods, um.SetCol("amount").ToArg(update.Amount.MustGet()))
	}
	if update.TxnDate.IsValue() {
		mods = append(mods, um.SetCol("txn_date").ToArg(update.TxnDate.MustGet()))
	}
	if update.Description.IsValue() {
		mods = append(mods, um.SetCol("description").ToArg(update.Description.MustGet()))
	}
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	res, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a transaction. Balances are always derived, so the delete
// is immediately reflected everywhere with no cache to invalidate.
func (t *TransactionsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns transactions matching the filter, date descending with
// created_at descending as the tie-break.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
	}
	if filter.Kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(string(*filter.Kind)))))
	}
	if filter.CustomerID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("customer_id").EQ(psql.Arg(*filter.CustomerID))))
	}
	if filter.FromDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("txn_date").GTE(psql.Arg(*filter.FromDate))))
	}
	if filter.ToDate != nil {
		endOfDay := time.Date(
			filter.ToDate.Year(), filter.ToDate.Month(), filter.ToDate.Day(),
			23, 59, 59, int(time.Second-time.Nanosecond), filter.ToDate.Location(),
		)
		queryMods = append(queryMods, sm.Where(psql.Quote("txn_date").LTE(psql.Arg(endOfDay))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("txn_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// CountForCustomer counts every transaction referencing the customer,
// across all kinds. Used by the customer deletion guard.
func (t *TransactionsTable) CountForCustomer(ctx context.Context, ownerID, customerID uuid.UUID) (int, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Where(psql.Quote("customer_id").EQ(psql.Arg(customerID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int])
}
