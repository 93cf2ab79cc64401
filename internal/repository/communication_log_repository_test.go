package repository_test

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/minicrm/mini-crm-be/internal/errors"
	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
)

func TestBulkInsertWritesAllRowsInOneStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logs := []model.CommunicationLog{
		{CustomerID: 7, CampaignID: 3, Message: "Hi Alice", Status: model.StatusSent},
		{CustomerID: 9, CampaignID: 3, Message: "Hi Bob", Status: model.StatusFailed},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO communication_logs")).
		WithArgs(
			7, 3, "Hi Alice", model.StatusSent, sqlmock.AnyArg(),
			9, 3, "Hi Bob", model.StatusFailed, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := &repository.CommunicationLogRepository{DB: db}
	require.NoError(t, repo.BulkInsert(logs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertNothingToDo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &repository.CommunicationLogRepository{DB: db}
	require.NoError(t, repo.BulkInsert(nil))
	assert.NoError(t, mock.ExpectationsWereMet(), "empty batch must not touch the store")
}

func TestGetByCampaignAndCustomerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM communication_logs")).
		WithArgs(3, 9).
		WillReturnError(sql.ErrNoRows)

	repo := &repository.CommunicationLogRepository{DB: db}
	_, err = repo.GetByCampaignAndCustomer(3, 9)

	assert.True(t, appErrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
