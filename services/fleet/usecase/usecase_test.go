package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/services/fleet/mocks"
)

func TestCreateVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	callerID := uuid.New()
	driver := &models.DriverProfile{Ref: 4, ID: uuid.New()}
	brand := &models.Brand{Ref: 2, ID: uuid.New(), Name: "Renault"}
	model := &models.VehicleModel{Ref: 8, ID: uuid.New(), Name: "Clio", BrandRef: 2}

	mockDrivers.EXPECT().GetDriverByAccountID(gomock.Any(), callerID).Return(driver, nil)
	mockRepo.EXPECT().GetBrandByName(gomock.Any(), "Renault").Return(brand, nil)
	mockRepo.EXPECT().FindOrCreateModel(gomock.Any(), "Clio", int64(2)).Return(model, nil)
	mockRepo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Vehicle) error {
			assert.Equal(t, int64(4), v.DriverRef)
			assert.Equal(t, int64(8), v.ModelRef)
			assert.Equal(t, "AB-123-CD", v.Plate)
			v.Ref = 20
			return nil
		})

	vehicle, err := uc.CreateVehicle(context.Background(), callerID, &models.CreateVehicleRequest{
		Plate:     "AB-123-CD",
		BrandName: "Renault",
		ModelName: "Clio",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renault", vehicle.BrandName)
	assert.Equal(t, "Clio", vehicle.ModelName)
}

func TestCreateVehicle_UnknownBrandFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	callerID := uuid.New()
	mockDrivers.EXPECT().GetDriverByAccountID(gomock.Any(), callerID).
		Return(&models.DriverProfile{Ref: 4}, nil)
	mockRepo.EXPECT().GetBrandByName(gomock.Any(), "NoSuchBrand").
		Return(nil, apperrors.BrandNotFound("NoSuchBrand"))

	// Brands are never auto-created.
	_, err := uc.CreateVehicle(context.Background(), callerID, &models.CreateVehicleRequest{
		Plate:     "AB-123-CD",
		BrandName: "NoSuchBrand",
		ModelName: "Clio",
	})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeBrandNotFound))
}

func TestCreateVehicle_NonDriverFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	callerID := uuid.New()
	mockDrivers.EXPECT().GetDriverByAccountID(gomock.Any(), callerID).
		Return(nil, apperrors.DriverNotFound(callerID.String()))

	_, err := uc.CreateVehicle(context.Background(), callerID, &models.CreateVehicleRequest{
		Plate:     "AB-123-CD",
		BrandName: "Renault",
		ModelName: "Clio",
	})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeDriverNotFound))
}

func TestCreateVehicle_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	_, err := uc.CreateVehicle(context.Background(), uuid.New(), &models.CreateVehicleRequest{})

	ae, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, ae.Code)
	assert.Contains(t, ae.Details, "plate")
	assert.Contains(t, ae.Details, "brand")
	assert.Contains(t, ae.Details, "model")
}

func TestUpdateVehicle_NotOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	callerID := uuid.New()
	vehicleID := uuid.New()
	brandID := uuid.New()

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{Ref: 20, DriverRef: 99}, nil)
	mockDrivers.EXPECT().GetDriverByAccountID(gomock.Any(), callerID).
		Return(&models.DriverProfile{Ref: 4}, nil)

	_, err := uc.UpdateVehicle(context.Background(), callerID, models.RoleDriver, vehicleID, &models.CreateVehicleRequest{
		Plate:     "AB-123-CD",
		BrandID:   brandID,
		ModelName: "Clio",
	})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestUpdateVehicle_AdminBypassesOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	vehicleID := uuid.New()
	brandID := uuid.New()
	brand := &models.Brand{Ref: 2, ID: brandID, Name: "Renault"}
	model := &models.VehicleModel{Ref: 8, Name: "Megane", BrandRef: 2}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{Ref: 20, DriverRef: 99, Plate: "OLD-000"}, nil)
	mockRepo.EXPECT().GetBrandByID(gomock.Any(), brandID).Return(brand, nil)
	mockRepo.EXPECT().FindOrCreateModel(gomock.Any(), "Megane", int64(2)).Return(model, nil)
	mockRepo.EXPECT().UpdateVehicle(gomock.Any(), gomock.Any()).Return(nil)

	// An ADMIN without a driver profile may still update.
	vehicle, err := uc.UpdateVehicle(context.Background(), uuid.New(), models.RoleAdmin, vehicleID, &models.CreateVehicleRequest{
		Plate:     "AB-123-CD",
		BrandID:   brandID,
		ModelName: "Megane",
	})

	require.NoError(t, err)
	assert.Equal(t, "AB-123-CD", vehicle.Plate)
	assert.Equal(t, "Megane", vehicle.ModelName)
}

func TestDeleteVehicle_OwnerSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	callerID := uuid.New()
	vehicleID := uuid.New()

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{Ref: 20, DriverRef: 4}, nil)
	mockDrivers.EXPECT().GetDriverByAccountID(gomock.Any(), callerID).
		Return(&models.DriverProfile{Ref: 4}, nil)
	mockRepo.EXPECT().DeleteVehicle(gomock.Any(), int64(20)).Return(nil)

	err := uc.DeleteVehicle(context.Background(), callerID, models.RoleDriver, vehicleID)

	require.NoError(t, err)
}

func TestCreateBrand_EmptyNameFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockDrivers := mocks.NewMockDriverResolver(ctrl)
	uc := NewFleetUC(mockRepo, mockDrivers)

	_, err := uc.CreateBrand(context.Background(), &models.CreateBrandRequest{Name: "   "})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}
