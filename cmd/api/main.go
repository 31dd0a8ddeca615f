package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/cache"
	"github.com/ridepool/carpool/internal/pkg/config"
	"github.com/ridepool/carpool/internal/pkg/database"
	"github.com/ridepool/carpool/internal/pkg/health"
	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/middleware"
	nsqpkg "github.com/ridepool/carpool/internal/pkg/nsq"
	"github.com/ridepool/carpool/internal/pkg/server"

	accountsGateway "github.com/ridepool/carpool/services/accounts/gateway"
	accountsHandler "github.com/ridepool/carpool/services/accounts/handler"
	accountsHTTP "github.com/ridepool/carpool/services/accounts/handler/http"
	accountsRepo "github.com/ridepool/carpool/services/accounts/repository"
	accountsUC "github.com/ridepool/carpool/services/accounts/usecase"

	fleetHandler "github.com/ridepool/carpool/services/fleet/handler"
	fleetHTTP "github.com/ridepool/carpool/services/fleet/handler/http"
	fleetRepo "github.com/ridepool/carpool/services/fleet/repository"
	fleetUC "github.com/ridepool/carpool/services/fleet/usecase"

	tripsGateway "github.com/ridepool/carpool/services/trips/gateway"
	tripsHandler "github.com/ridepool/carpool/services/trips/handler"
	tripsHTTP "github.com/ridepool/carpool/services/trips/handler/http"
	tripsRepo "github.com/ridepool/carpool/services/trips/repository"
	tripsUC "github.com/ridepool/carpool/services/trips/usecase"

	bookingsGateway "github.com/ridepool/carpool/services/bookings/gateway"
	bookingsHandler "github.com/ridepool/carpool/services/bookings/handler"
	bookingsHTTP "github.com/ridepool/carpool/services/bookings/handler/http"
	bookingsRepo "github.com/ridepool/carpool/services/bookings/repository"
	bookingsUC "github.com/ridepool/carpool/services/bookings/usecase"
)

const serviceName = "carpool-api"

func main() {
	cfg := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger := logger.NewAppLogger(cfg.Logger, serviceName)
	logger.SetGlobalLogger(appLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to postgres", logger.ErrorField(err))
	}
	defer pgClient.Close()
	db := pgClient.GetDB()

	var tripCache *cache.Cache
	if cfg.Cache.Enabled {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		tripCache = cache.New(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	} else {
		logger.Warn("cache disabled, trip reads hit storage directly")
	}

	var producer *nsqpkg.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			logger.Fatal("failed to connect to nsq", logger.ErrorField(err))
		}
		defer producer.Stop()
	} else {
		logger.Warn("nsq disabled, domain events will not be published")
	}

	// Repositories
	accountRepository := accountsRepo.NewAccountRepo(db)
	fleetRepository := fleetRepo.NewFleetRepo(db)
	tripRepository := tripsRepo.NewTripRepo(db)
	cityRepository := tripsRepo.NewCityRepo(db)
	bookingRepository := bookingsRepo.NewBookingRepo(db)

	// Gateways
	accountGW := accountsGateway.NewAccountGW(producer)
	tripGW := tripsGateway.NewTripGW(producer)
	bookingGW := bookingsGateway.NewBookingGW(producer)

	// Usecases. The account repository doubles as the driver and profile
	// resolver for the other services.
	accountUsecase := accountsUC.NewAccountUC(accountRepository, accountGW, cfg)
	fleetUsecase := fleetUC.NewFleetUC(fleetRepository, accountRepository)
	tripUsecase := tripsUC.NewTripUC(tripRepository, cityRepository, accountRepository, fleetRepository, tripGW, tripCache)
	bookingUsecase := bookingsUC.NewBookingUC(bookingRepository, accountRepository, bookingGW)

	// HTTP wiring
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version)

	authMW := middleware.JWTAuthMiddleware(cfg.JWT)

	accountsHandler.NewHandler(
		accountsHTTP.NewAuthHandler(accountUsecase),
		accountsHTTP.NewAccountHandler(accountUsecase),
	).RegisterRoutes(e, authMW)

	fleetHandler.NewHandler(
		fleetHTTP.NewBrandHandler(fleetUsecase),
		fleetHTTP.NewVehicleHandler(fleetUsecase),
	).RegisterRoutes(e, authMW)

	tripsHandler.NewHandler(
		tripsHTTP.NewTripHandler(tripUsecase),
	).RegisterRoutes(e, authMW)

	bookingsHandler.NewHandler(
		bookingsHTTP.NewBookingHandler(bookingUsecase),
	).RegisterRoutes(e, authMW)

	srv := server.NewGracefulServer(e, cfg.Server.Host, cfg.Server.Port, cfg.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		logger.Fatal("server exited with error", logger.ErrorField(err))
	}
}
