// Package config provides runtime configuration for QBoard binaries.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and storage.
type Config struct {
	HTTPAddr        string
	DBPath          string
	ShutdownTimeout time.Duration
	LogLevel        string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("QBOARD_HTTP_ADDR", ":8080"),
		DBPath:          getenv("QBOARD_DB_PATH", "qboard.db"),
		ShutdownTimeout: durenvs("QBOARD_SHUTDOWN_TIMEOUT", 15),
		LogLevel:        getenv("QBOARD_LOG_LEVEL", "info"),
	}
}
