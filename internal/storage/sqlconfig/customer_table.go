package sqlconfig

import (
	"context"

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

var _ ICustomerTable = (*CustomersTable)(nil)

var customerColumns = []any{"id", "owner_id", "name", "phone", "created_at"}

// CustomersTable provides access to the customers table.
type CustomersTable struct {
	exec bob.Executor
}

// NewCustomersTable creates a CustomersTable bound to the given executor.
func NewCustomersTable(exec bob.Executor) CustomersTable {
	return CustomersTable{exec: exec}
}

// FindByID retrieves a customer by primary key, scoped to one owner.
func (t *CustomersTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Customer, error) {
	q := psql.Select(
		sm.Columns(customerColumns...),
		sm.From("customers"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Customer]())
	if err != nil {
		return nil, mapRowError(err)
	}
	return row, nil
}

// FindByName looks a customer up by exact name. The match is case
// sensitive, mirroring the unique index used at creation.
func (t *CustomersTable) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*Customer, error) {
	q := psql.Select(
		sm.Columns(customerColumns...),
		sm.From("customers"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Customer]())
	if err != nil {
		return nil, mapRowError(err)
	}
	return row, nil
}

// Insert creates a new customer and returns its generated ID.
func (t *CustomersTable) Insert(ctx context.Context, create *CustomerCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("customers", "owner_id", "name", "phone"),
		im.Values(psql.Arg(create.OwnerID, create.Name, create.Phone)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, mapCustomerWriteError(err)
	}
	return id, nil
}

// Update renames or re-phones a customer.
func (t *CustomersTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *CustomerUpdate) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("customers"),
	}
	if update.Name.IsValue() {
		mods = append(mods, um.SetCol("name").ToArg(update.Name.MustGet()))
	}
	if update.Phone.IsValue() {
		mods = append(mods, um.SetCol("phone").ToArg(update.Phone.MustGet()))
	}
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	res, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return mapCustomerWriteError(err)
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

// Delete removes a customer row. The dependent-records guard lives in the
// action layer, which checks CountForCustomer first inside the same
// transaction.
func (t *CustomersTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("customers"),
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

// List returns every customer of the owner, name ascending.
func (t *CustomersTable) List(ctx context.Context, ownerID uuid.UUID) ([]*Customer, error) {
	q := psql.Select(
		sm.Columns(customerColumns...),
		sm.From("customers"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Customer]())
}

// Count returns the owner's customer count for the dashboard.
func (t *CustomersTable) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("customers"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int])
}
