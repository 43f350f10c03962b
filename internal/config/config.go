package config

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// Init configures the process-wide logger from LOG_LEVEL and LOG_FORMAT.
func Init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if GetEnv("LOG_FORMAT", "text") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
}

func Logger() *logrus.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

// WithContext returns a log entry carrying the chi request id when present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger())
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger().WithError(err).Error("Failed to encode JSON response")
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic("missing required environment variable: " + key)
	}
	return v
}
