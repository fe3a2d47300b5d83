package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		// Use JSON handler for structured output
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for interactive sessions (more readable)
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithUserID adds user ID to logger context
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("user_id", userID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// Business logic logging methods

// LogReservationCreated logs when a reservation is created
func (l *Logger) LogReservationCreated(reservationID, flightID, passengerID string) {
	l.Logger.Info("Reservation Created",
		slog.String("reservation_id", reservationID),
		slog.String("flight_id", flightID),
		slog.String("passenger_id", passengerID),
	)
}

// LogReservationCancelled logs when a reservation is cancelled
func (l *Logger) LogReservationCancelled(reservationID, flightID string) {
	l.Logger.Info("Reservation Cancelled",
		slog.String("reservation_id", reservationID),
		slog.String("flight_id", flightID),
	)
}

// LogPaymentProcessed logs payment state transitions
func (l *Logger) LogPaymentProcessed(paymentID, status string, amount float64) {
	l.Logger.Info("Payment Processed",
		slog.String("payment_id", paymentID),
		slog.String("status", status),
		slog.Float64("amount", amount),
	)
}

// Security logging methods

// LogAuthSuccess logs successful authentication
func (l *Logger) LogAuthSuccess(userID, role string) {
	l.Logger.Info("Authentication Success",
		slog.String("user_id", userID),
		slog.String("role", role),
	)
}

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(username, reason string) {
	l.Logger.Warn("Authentication Failure",
		slog.String("username", username),
		slog.String("reason", reason),
	)
}

var defaultLogger *Logger

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}
