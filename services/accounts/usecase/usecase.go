package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	jwtpkg "github.com/ridepool/carpool/internal/pkg/jwt"
	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/accounts"
)

// AccountUC implements accounts.AccountUC.
type AccountUC struct {
	accountRepo accounts.AccountRepo
	accountGW   accounts.AccountGW
	cfg         *models.Config
}

// NewAccountUC creates the account usecase.
func NewAccountUC(accountRepo accounts.AccountRepo, accountGW accounts.AccountGW, cfg *models.Config) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		accountGW:   accountGW,
		cfg:         cfg,
	}
}

// Register creates a new account with a USER role and its profile, and
// returns a signed token.
func (u *AccountUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	details := map[string]string{}
	if !utils.IsValidEmail(req.Email) {
		details["email"] = "a valid email is required"
	}
	if len(req.Password) < 8 {
		details["password"] = "password must be at least 8 characters"
	}
	if req.FirstName == "" {
		details["first_name"] = "first name is required"
	}
	if req.LastName == "" {
		details["last_name"] = "last name is required"
	}
	if req.Phone != "" && !utils.IsValidPhoneNumber(req.Phone) {
		details["phone"] = "invalid phone number"
	}
	if len(details) > 0 {
		return nil, apperrors.Validation(details)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &models.Account{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &models.Profile{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	if err := u.accountRepo.CreateAccount(ctx, account, profile); err != nil {
		return nil, err
	}

	return u.issueToken(account)
}

// Login verifies credentials and returns a signed token. A missing account
// and a wrong password are indistinguishable to the caller.
func (u *AccountUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	account, err := u.accountRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeAccountNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if account.DeletedAt != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	return u.issueToken(account)
}

// GetProfile returns the caller's profile.
func (u *AccountUC) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Profile, error) {
	return u.accountRepo.GetProfileByAccountID(ctx, accountID)
}

// UpdateProfile updates the caller's profile fields.
func (u *AccountUC) UpdateProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error) {
	details := map[string]string{}
	if req.FirstName == "" {
		details["first_name"] = "first name is required"
	}
	if req.LastName == "" {
		details["last_name"] = "last name is required"
	}
	if req.Phone != "" && !utils.IsValidPhoneNumber(req.Phone) {
		details["phone"] = "invalid phone number"
	}
	if len(details) > 0 {
		return nil, apperrors.Validation(details)
	}

	profile, err := u.accountRepo.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Phone = req.Phone

	if err := u.accountRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteAccount anonymizes the account and profile; rows are retained.
func (u *AccountUC) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return u.accountRepo.AnonymizeAccount(ctx, accountID)
}

// RegisterDriver creates a driver profile for the caller and then upgrades
// the account role to DRIVER. The role upgrade is a best-effort side effect:
// its failure is logged and swallowed, and driver creation still succeeds.
func (u *AccountUC) RegisterDriver(ctx context.Context, accountID uuid.UUID, req *models.RegisterDriverRequest) (*models.DriverProfile, error) {
	if req.LicenseNumber == "" {
		return nil, apperrors.Validation(map[string]string{"license_number": "license number is required"})
	}

	if _, err := u.accountRepo.GetDriverByAccountID(ctx, accountID); err == nil {
		return nil, apperrors.DriverExists()
	} else if !apperrors.IsCode(err, apperrors.CodeDriverNotFound) {
		return nil, err
	}

	profile, err := u.accountRepo.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	driver, err := u.accountRepo.CreateDriverProfile(ctx, profile.Ref, req.LicenseNumber)
	if err != nil {
		return nil, err
	}

	if err := u.accountRepo.UpdateAccountRole(ctx, profile.AccountRef, models.RoleDriver); err != nil {
		logger.Warn("role upgrade to DRIVER failed, driver profile kept",
			logger.String("account_id", accountID.String()),
			logger.ErrorField(err))
	}

	if u.accountGW != nil {
		event := &models.DriverEvent{
			DriverID:  driver.ID,
			AccountID: accountID,
			Timestamp: time.Now(),
		}
		if err := u.accountGW.DriverRegistered(ctx, event); err != nil {
			logger.Warn("failed to publish driver registered event",
				logger.String("driver_id", driver.ID.String()),
				logger.ErrorField(err))
		}
	}

	return driver, nil
}

func (u *AccountUC) issueToken(account *models.Account) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(account.ID, account.Role, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    account.ID,
		Role:      account.Role,
		ExpiresAt: expiresAt,
	}, nil
}
