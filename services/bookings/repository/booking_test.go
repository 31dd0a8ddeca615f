package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewBookingRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func expectTripLock(mock sqlmock.Sqlmock, tripID uuid.UUID, tripRef int64, seats int) {
	mock.ExpectQuery("SELECT ref, id, seats FROM trips WHERE id = (.+) FOR UPDATE").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"ref", "id", "seats"}).
			AddRow(tripRef, tripID, seats))
}

func TestCreateInscription_Success(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	riderID := uuid.New()

	mock.ExpectBegin()
	expectTripLock(mock, tripID, 30, 3)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), int64(7), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM profiles").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(riderID))
	mock.ExpectQuery("INSERT INTO inscriptions").
		WithArgs(sqlmock.AnyArg(), int64(30), int64(7), models.InscriptionActive, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"ref"}).AddRow(int64(40)))
	mock.ExpectCommit()

	inscription, err := repo.CreateInscription(context.Background(), tripID, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(40), inscription.Ref)
	assert.Equal(t, riderID, inscription.RiderID)
	assert.Equal(t, models.InscriptionActive, inscription.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInscription_FullTripRejected(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	tripID := uuid.New()

	mock.ExpectBegin()
	expectTripLock(mock, tripID, 30, 3)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), int64(7), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	_, err := repo.CreateInscription(context.Background(), tripID, 7)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeNoSeatsAvailable))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInscription_DuplicateWinsOverFullTrip(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	tripID := uuid.New()

	// The rider already holds a seat on a trip that is also full. The
	// duplicate check runs first, so the outcome is ALREADY_INSCRIBED and
	// the capacity count is never reached.
	mock.ExpectBegin()
	expectTripLock(mock, tripID, 30, 3)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), int64(7), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateInscription(context.Background(), tripID, 7)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyInscribed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInscription_TripNotFound(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ref, id, seats FROM trips").
		WithArgs(tripID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CreateInscription(context.Background(), tripID, 7)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeTripNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInscription_UniqueIndexBackstop(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	riderID := uuid.New()

	mock.ExpectBegin()
	expectTripLock(mock, tripID, 30, 3)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), int64(7), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inscriptions").
		WithArgs(int64(30), models.InscriptionActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id FROM profiles").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(riderID))
	mock.ExpectQuery("INSERT INTO inscriptions").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})
	mock.ExpectRollback()

	_, err := repo.CreateInscription(context.Background(), tripID, 7)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyInscribed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPassengers_UnknownTrip(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectQuery("SELECT ref FROM trips").
		WithArgs(tripID).
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.ListPassengers(context.Background(), tripID, 20, 0)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeTripNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelInscription_FlipsStatus(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE inscriptions SET status").
		WithArgs(models.InscriptionCancelled, int64(40)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CancelInscription(context.Background(), 40)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
