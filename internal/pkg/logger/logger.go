package logger

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ridepool/carpool/internal/pkg/models"
)

// AppLogger is the structured application logger.
type AppLogger struct {
	*logrus.Logger
	service string
}

// NewAppLogger creates a logger from configuration.
func NewAppLogger(config models.LoggerConfig, service string) *AppLogger {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if config.Format == "text" {
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &AppLogger{Logger: l, service: service}
}

func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	lf := logrus.Fields{"service": al.service}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return al.Logger.WithFields(lf)
}

// Info logs an info message with structured fields.
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.entry(fields).Info(msg)
}

// Warn logs a warning message with structured fields.
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.entry(fields).Warn(msg)
}

// Error logs an error message with structured fields.
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.entry(fields).Error(msg)
}

// Debug logs a debug message with structured fields.
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.entry(fields).Debug(msg)
}

// Fatal logs a fatal message with structured fields and exits.
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.entry(fields).Fatal(msg)
}
