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

func setupFleetRepoTest(t *testing.T) (*FleetRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewFleetRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func TestGetBrandByName_MatchesCaseInsensitively(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	brandID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM brands WHERE LOWER\\(name\\) = LOWER\\(\\$1\\)").
		WithArgs("renault").
		WillReturnRows(sqlmock.NewRows([]string{"ref", "id", "name"}).
			AddRow(int64(2), brandID, "Renault"))

	brand, err := repo.GetBrandByName(context.Background(), "renault")

	require.NoError(t, err)
	assert.Equal(t, "Renault", brand.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBrandByName_NotFound(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM brands").
		WithArgs("NoSuchBrand").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBrandByName(context.Background(), "NoSuchBrand")

	assert.True(t, apperrors.IsCode(err, apperrors.CodeBrandNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateModel_CreatesWhenMissing(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM vehicle_models").
		WithArgs("Clio", int64(2)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO vehicle_models").
		WithArgs(sqlmock.AnyArg(), "Clio", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"ref"}).AddRow(int64(8)))

	model, err := repo.FindOrCreateModel(context.Background(), "Clio", 2)

	require.NoError(t, err)
	assert.Equal(t, int64(8), model.Ref)
	assert.Equal(t, "Clio", model.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateModel_ReturnsExisting(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	modelID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM vehicle_models").
		WithArgs("Clio", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"ref", "id", "name", "brand_ref"}).
			AddRow(int64(8), modelID, "Clio", int64(2)))

	model, err := repo.FindOrCreateModel(context.Background(), "Clio", 2)

	require.NoError(t, err)
	assert.Equal(t, int64(8), model.Ref)
	assert.Equal(t, modelID, model.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicleByID_JoinsModelAndBrand(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	vehicleID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM vehicles v").
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{"ref", "id", "plate", "model_ref", "driver_ref", "model_name", "brand_name"}).
			AddRow(int64(20), vehicleID, "AB-123-CD", int64(8), int64(4), "Clio", "Renault"))

	vehicle, err := repo.GetVehicleByID(context.Background(), vehicleID)

	require.NoError(t, err)
	assert.Equal(t, "Clio", vehicle.ModelName)
	assert.Equal(t, "Renault", vehicle.BrandName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVehicles_ReturnsTotalAndPage(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vehicles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery("SELECT (.+) FROM vehicles v").
		WithArgs(20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"ref", "id", "plate", "model_ref", "driver_ref", "model_name", "brand_name"}).
			AddRow(int64(21), uuid.New(), "AB-123-CD", int64(8), int64(4), "Clio", "Renault"))

	vehicles, total, err := repo.ListVehicles(context.Background(), 20, 20)

	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.Len(t, vehicles, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBrand_DuplicateName(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	brand := &models.Brand{ID: uuid.New(), Name: "Renault"}
	mock.ExpectQuery("INSERT INTO brands").
		WithArgs(brand.ID, brand.Name).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err := repo.CreateBrand(context.Background(), brand)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeBrandExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}
