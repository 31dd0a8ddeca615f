package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/logger"
)

// GracefulServer wraps an Echo server with graceful shutdown.
type GracefulServer struct {
	echo            *echo.Echo
	host            string
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, host string, port, shutdownTimeoutSeconds int) *GracefulServer {
	if shutdownTimeoutSeconds <= 0 {
		shutdownTimeoutSeconds = 30
	}
	return &GracefulServer{
		echo:            e,
		host:            host,
		port:            port,
		shutdownTimeout: time.Duration(shutdownTimeoutSeconds) * time.Second,
	}
}

// Start starts the server and blocks until an interrupt or SIGTERM arrives,
// then shuts down gracefully.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf("%s:%d", s.host, s.port)
		logger.Info("starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	logger.Info("received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", logger.ErrorField(err))
		return err
	}

	logger.Info("server shutdown completed")
	return nil
}
