package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Log.Outputs)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("SERVER_WRITE_TIMEOUT", "1m")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/proc")
	t.Setenv("DATABASE_MAX_CONNS", "25")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUTS", "stdout,./logs/app.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, "postgres://u:p@db:5432/proc", cfg.Postgres.DSN)
	assert.Equal(t, int32(25), cfg.Postgres.MaxConns)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"stdout", "./logs/app.log"}, cfg.Log.Outputs)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"zero pool", "DATABASE_MAX_CONNS", "0"},
		{"unknown format", "LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
