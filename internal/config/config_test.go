package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.MinDropPeriod)
	assert.Equal(t, 23*time.Hour, cfg.MaxDropPeriod)
	assert.Equal(t, 2, cfg.DropChance)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestLoadDropTuningOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvMinDropPeriod, "15m")
	t.Setenv(EnvMaxDropPeriod, "12h")
	t.Setenv(EnvDropChance, "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.MinDropPeriod)
	assert.Equal(t, 12*time.Hour, cfg.MaxDropPeriod)
	assert.Equal(t, 4, cfg.DropChance)
}

func TestValidateRejectsInvertedPeriods(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvMinDropPeriod, "24h")
	t.Setenv(EnvMaxDropPeriod, "1h")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvMinDropPeriod, "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMinDropPeriod)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "curio",
	}
	assert.Equal(t, "postgres://u:p@db:5433/curio?sslmode=disable", cfg.GetDBConnString())
}
