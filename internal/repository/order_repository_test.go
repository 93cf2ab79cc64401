package repository_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
)

func TestRecordOrderCreatesUnknownCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	msg := model.OrderMessage{
		CustomerID:     0,
		CustomerName:   "Ana",
		CustomerEmail:  "ana@example.com",
		MobileNumber:   254700000009,
		PurchaseAmount: 49.99,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
		WithArgs("Ana", "ana@example.com", int64(254700000009)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(17))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(17, 49.99, date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE customers")).
		WithArgs(49.99, date, 17).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := &repository.OrderRepository{DB: db}
	order, err := repo.RecordOrder(msg, date)

	require.NoError(t, err)
	assert.Equal(t, 4, order.ID)
	assert.Equal(t, 17, order.CustomerID, "order adopts the generated customer id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOrderKnownCustomerSkipsCreation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	msg := model.OrderMessage{CustomerID: 17, PurchaseAmount: 25}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(17, 25.0, date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE customers")).
		WithArgs(25.0, date, 17).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := &repository.OrderRepository{DB: db}
	order, err := repo.RecordOrder(msg, date)

	require.NoError(t, err)
	assert.Equal(t, 17, order.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOrderRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	msg := model.OrderMessage{CustomerID: 0, CustomerName: "Ana", CustomerEmail: "a@e.com", MobileNumber: 1, PurchaseAmount: 25}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
		WithArgs("Ana", "a@e.com", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(17))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(17, 25.0, date).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	repo := &repository.OrderRepository{DB: db}
	_, err = repo.RecordOrder(msg, date)

	// The customer insert must not survive: no partial state is reachable.
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
