package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"WH_DB_DIR", "WH_DB_FILENAME", "WH_DB_QUERY_TIMEOUT", "WH_DB_WRITE_TIMEOUT",
		"WH_DB_DIR_PERMISSIONS", "WH_CONTRACT_HOURS", "WH_HOURLY_RATE",
		"WH_EXTRA_HOURLY_RATE", "WH_CURRENCY", "WH_APP_TIMEOUT", "WH_APP_VERBOSE",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := NewConfig()

	assert.Equal(t, "wh.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 40.0, cfg.Contract.HoursPerMonth)
	assert.Equal(t, 7.65, cfg.Contract.HourlyRate)
	assert.Equal(t, 9.0, cfg.Contract.ExtraHourlyRate)
	assert.Equal(t, "€", cfg.Display.Currency)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WH_DB_DIR", "/tmp/wh-test")
	t.Setenv("WH_DB_FILENAME", "hours.db")
	t.Setenv("WH_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("WH_CONTRACT_HOURS", "160")
	t.Setenv("WH_HOURLY_RATE", "12.5")
	t.Setenv("WH_EXTRA_HOURLY_RATE", "15")
	t.Setenv("WH_CURRENCY", "$")
	t.Setenv("WH_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wh-test", cfg.Database.Dir)
	assert.Equal(t, "hours.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 160.0, cfg.Contract.HoursPerMonth)
	assert.Equal(t, 12.5, cfg.Contract.HourlyRate)
	assert.Equal(t, 15.0, cfg.Contract.ExtraHourlyRate)
	assert.Equal(t, "$", cfg.Display.Currency)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, filepath.Join("/tmp/wh-test", "hours.db"), cfg.GetDatabasePath())
}

func TestLoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WH_CONTRACT_HOURS", "-5")
	t.Setenv("WH_HOURLY_RATE", "abc")
	t.Setenv("WH_DB_QUERY_TIMEOUT", "nope")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	// Defaults survive unparseable or out-of-range inputs
	assert.Equal(t, 40.0, cfg.Contract.HoursPerMonth)
	assert.Equal(t, 7.65, cfg.Contract.HourlyRate)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "empty db dir",
			mutate:  func(c *Config) { c.Database.Dir = "" },
			wantErr: "database.dir",
		},
		{
			name:    "zero query timeout",
			mutate:  func(c *Config) { c.Database.QueryTimeout = 0 },
			wantErr: "database.query_timeout",
		},
		{
			name:    "negative contract hours",
			mutate:  func(c *Config) { c.Contract.HoursPerMonth = -1 },
			wantErr: "contract.hours_per_month",
		},
		{
			name:    "empty currency",
			mutate:  func(c *Config) { c.Display.Currency = "" },
			wantErr: "display.currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoaderWithOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	currency := "$"

	loader := NewLoader()
	cfg, err := loader.LoadWithOverrides(&ConfigOverrides{
		DBDir:    &dir,
		Currency: &currency,
	})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Database.Dir)
	assert.Equal(t, "$", cfg.Display.Currency)
}
