package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
)

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAccountRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func TestCreateAccount_InsertsAccountAndProfile(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	account := &models.Account{
		ID:           uuid.New(),
		Email:        "jean@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	profile := &models.Profile{ID: uuid.New(), FirstName: "Jean", LastName: "Dupont"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.ID, account.Email, account.PasswordHash, account.Role,
			account.CreatedAt, account.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"ref"}).AddRow(int64(5)))
	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(profile.ID, int64(5), "Jean", "Dupont", "").
		WillReturnRows(sqlmock.NewRows([]string{"ref"}).AddRow(int64(9)))
	mock.ExpectCommit()

	err := repo.CreateAccount(context.Background(), account, profile)

	require.NoError(t, err)
	assert.Equal(t, int64(5), account.Ref)
	assert.Equal(t, int64(9), profile.Ref)
	assert.Equal(t, int64(5), profile.AccountRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAccountByEmail(context.Background(), "ghost@example.com")

	assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByAccountID_CarriesSoftDeleteMarker(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	accountID := uuid.New()
	profileID := uuid.New()
	deletedAt := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM profiles p").
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{
			"ref", "id", "account_ref", "first_name", "last_name", "phone", "deleted_at",
		}).AddRow(int64(9), profileID, int64(5), "", "", "", deletedAt))

	profile, err := repo.GetProfileByAccountID(context.Background(), accountID)

	require.NoError(t, err)
	assert.Equal(t, int64(9), profile.Ref)
	require.NotNil(t, profile.DeletedAt)
	assert.WithinDuration(t, deletedAt, *profile.DeletedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverByAccountID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	accountID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM driver_profiles").
		WithArgs(accountID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDriverByAccountID(context.Background(), accountID)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeDriverNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnonymizeAccount_BlanksAndMarks(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE accounts").
		WithArgs(sqlmock.AnyArg(), accountID).
		WillReturnRows(sqlmock.NewRows([]string{"ref"}).AddRow(int64(5)))
	mock.ExpectExec("UPDATE profiles").
		WithArgs(sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AnonymizeAccount(context.Background(), accountID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
