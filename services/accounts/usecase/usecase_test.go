package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/services/accounts/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *models.Account, profile *models.Profile) error {
			assert.Equal(t, models.RoleUser, account.Role)
			assert.NotEmpty(t, account.PasswordHash)
			assert.NotEqual(t, "s3cretpass", account.PasswordHash)
			assert.Equal(t, "Jean", profile.FirstName)
			account.Ref = 1
			profile.Ref = 1
			return nil
		})

	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "jean@example.com",
		Password:  "s3cretpass",
		FirstName: "Jean",
		LastName:  "Dupont",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.Role)
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})

	require.Error(t, err)
	ae, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, ae.Code)
	assert.Contains(t, ae.Details, "email")
	assert.Contains(t, ae.Details, "password")
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.Account{
		Ref:          1,
		ID:           uuid.New(),
		Email:        "jean@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleDriver,
	}

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "jean@example.com").Return(account, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "jean@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, resp.UserID)
	assert.Equal(t, models.RoleDriver, resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "jean@example.com").
		Return(&models.Account{PasswordHash: string(hash)}, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "jean@example.com",
		Password: "wrongpass",
	})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestLogin_UnknownEmailIsUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, apperrors.AccountNotFound("ghost@example.com"))

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Missing account and wrong password look the same to the caller.
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestRegisterDriver_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()
	profile := &models.Profile{Ref: 7, AccountRef: 3}
	driver := &models.DriverProfile{Ref: 11, ID: uuid.New(), ProfileRef: 7, LicenseNumber: "B123456"}

	mockRepo.EXPECT().GetDriverByAccountID(gomock.Any(), accountID).
		Return(nil, apperrors.DriverNotFound(accountID.String()))
	mockRepo.EXPECT().GetProfileByAccountID(gomock.Any(), accountID).Return(profile, nil)
	mockRepo.EXPECT().CreateDriverProfile(gomock.Any(), int64(7), "B123456").Return(driver, nil)
	mockRepo.EXPECT().UpdateAccountRole(gomock.Any(), int64(3), models.RoleDriver).Return(nil)
	mockGW.EXPECT().DriverRegistered(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.RegisterDriver(context.Background(), accountID, &models.RegisterDriverRequest{
		LicenseNumber: "B123456",
	})

	require.NoError(t, err)
	assert.Equal(t, driver, got)
}

func TestRegisterDriver_RoleUpgradeFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()
	profile := &models.Profile{Ref: 7, AccountRef: 3}
	driver := &models.DriverProfile{Ref: 11, ID: uuid.New(), ProfileRef: 7, LicenseNumber: "B123456"}

	mockRepo.EXPECT().GetDriverByAccountID(gomock.Any(), accountID).
		Return(nil, apperrors.DriverNotFound(accountID.String()))
	mockRepo.EXPECT().GetProfileByAccountID(gomock.Any(), accountID).Return(profile, nil)
	mockRepo.EXPECT().CreateDriverProfile(gomock.Any(), int64(7), "B123456").Return(driver, nil)
	mockRepo.EXPECT().UpdateAccountRole(gomock.Any(), int64(3), models.RoleDriver).
		Return(errors.New("role update failed"))
	mockGW.EXPECT().DriverRegistered(gomock.Any(), gomock.Any()).Return(nil)

	// Driver creation succeeds even though the role upgrade failed.
	got, err := uc.RegisterDriver(context.Background(), accountID, &models.RegisterDriverRequest{
		LicenseNumber: "B123456",
	})

	require.NoError(t, err)
	assert.Equal(t, driver, got)
}

func TestRegisterDriver_AlreadyDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockAccountGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()
	mockRepo.EXPECT().GetDriverByAccountID(gomock.Any(), accountID).
		Return(&models.DriverProfile{Ref: 11}, nil)

	_, err := uc.RegisterDriver(context.Background(), accountID, &models.RegisterDriverRequest{
		LicenseNumber: "B123456",
	})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeDriverExists))
}
