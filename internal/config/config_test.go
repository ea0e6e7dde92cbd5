package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "qboard.db", cfg.DBPath)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QBOARD_HTTP_ADDR", ":9090")
	t.Setenv("QBOARD_DB_PATH", "/tmp/test.db")
	t.Setenv("QBOARD_SHUTDOWN_TIMEOUT", "30")
	t.Setenv("QBOARD_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("QBOARD_SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}
