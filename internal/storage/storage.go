package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/ThangaBalajiS/biz-book/internal/config"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// Storage owns the database handle and the per-table access objects used
// for reads. Writes go through Write, which opens a transaction.
type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Transactions sqlconfig.ITransactionTable
	Customers    sqlconfig.ICustomerTable
	Settings     sqlconfig.ISettingsTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)
	transactions := sqlconfig.NewTransactionsTable(bobDB)
	customers := sqlconfig.NewCustomersTable(bobDB)
	settings := sqlconfig.NewSettingsTable(bobDB)

	return &Storage{
		DB:           db,
		bobDB:        bobDB,
		Transactions: &transactions,
		Customers:    &customers,
		Settings:     &settings,
	}
}

// Write begins a transaction and returns a Writer with the same tables
// bound to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
