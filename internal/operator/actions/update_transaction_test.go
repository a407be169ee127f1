package actions

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

func TestUpdateTransaction_AmendsFields(t *testing.T) {
	writer, transactions, _, _ := newMockedWriter()

	ownerID := uuid.Must(uuid.NewV4())
	txnID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	transactions.On("Update", mock.Anything, ownerID, txnID, mock.MatchedBy(func(u *sqlconfig.TransactionUpdate) bool {
		return u.Amount.IsValue() && u.Amount.MustGet().Equal(decimal.RequireFromString("250")) &&
			u.TxnDate.IsValue() && u.TxnDate.MustGet().Equal(date) &&
			!u.Description.IsValue()
	})).Return(nil)

	action := &UpdateTransaction{
		OwnerID:       ownerID,
		TransactionID: txnID,
		Amount:        omit.From(decimal.RequireFromString("250")),
		Date:          omit.From(date),
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	transactions.AssertExpectations(t)
}

func TestUpdateTransaction_NonPositiveAmountRejected(t *testing.T) {
	writer, transactions, _, _ := newMockedWriter()

	action := &UpdateTransaction{
		OwnerID:       uuid.Must(uuid.NewV4()),
		TransactionID: uuid.Must(uuid.NewV4()),
		Amount:        omit.From(decimal.Zero),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	transactions.AssertNotCalled(t, "Update")
}

func TestUpdateTransaction_MissingTransaction(t *testing.T) {
	writer, transactions, _, _ := newMockedWriter()

	transactions.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(sqlconfig.ErrNotFound)

	action := &UpdateTransaction{
		OwnerID:       uuid.Must(uuid.NewV4()),
		TransactionID: uuid.Must(uuid.NewV4()),
		Description:   omit.From("late fee"),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	writer, transactions, _, _ := newMockedWriter()

	ownerID := uuid.Must(uuid.NewV4())
	txnID := uuid.Must(uuid.NewV4())
	transactions.On("Delete", mock.Anything, ownerID, txnID).Return(nil)

	action := &DeleteTransaction{OwnerID: ownerID, TransactionID: txnID}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	transactions.AssertExpectations(t)
}
