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

func TestSegmentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM segments WHERE id=$1")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	repo := &repository.SegmentRepository{DB: db}
	_, err = repo.GetByID(42)

	assert.True(t, appErrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveAudiencePassesBandsThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	segment := &model.Segment{
		ID:            1,
		LowPar:        0,
		HighPar:       1000,
		LeastVisits:   0,
		MostVisits:    10,
		LastVisitDays: 30,
	}

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(7, "Alice").
		AddRow(9, "Bob")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM customers")).
		WithArgs(segment.LowPar, segment.HighPar, segment.LeastVisits, segment.MostVisits, segment.LastVisitDays).
		WillReturnRows(rows)

	repo := &repository.SegmentRepository{DB: db}
	members, err := repo.ResolveAudience(segment)

	require.NoError(t, err)
	assert.Equal(t, []model.AudienceMember{{ID: 7, Name: "Alice"}, {ID: 9, Name: "Bob"}}, members)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveAudienceInvertedBandIsEmptyNotError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// lowPar > highPar is stored as-is; the predicate just matches nothing.
	segment := &model.Segment{LowPar: 500, HighPar: 100, MostVisits: 10, LastVisitDays: 30}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM customers")).
		WithArgs(segment.LowPar, segment.HighPar, segment.LeastVisits, segment.MostVisits, segment.LastVisitDays).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	repo := &repository.SegmentRepository{DB: db}
	members, err := repo.ResolveAudience(segment)

	require.NoError(t, err)
	assert.Empty(t, members)
	assert.NoError(t, mock.ExpectationsWereMet())
}
