package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the work hours tracker
type Config struct {
	Database    DatabaseConfig
	Contract    ContractDefaults
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WH_DB_DIR"`
	Filename       string        `env:"WH_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"WH_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WH_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"WH_DB_DIR_PERMISSIONS"`
}

// ContractDefaults holds the contract configuration used on first run,
// before any contract has been persisted.
type ContractDefaults struct {
	HoursPerMonth   float64 `env:"WH_CONTRACT_HOURS"`
	HourlyRate      float64 `env:"WH_HOURLY_RATE"`
	ExtraHourlyRate float64 `env:"WH_EXTRA_HOURLY_RATE"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Currency string `env:"WH_CURRENCY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WH_APP_TIMEOUT"`
	Verbose bool          `env:"WH_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".wh")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "wh.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Contract: ContractDefaults{
			HoursPerMonth:   40,
			HourlyRate:      7.65,
			ExtraHourlyRate: 9,
		},
		Display: DisplayConfig{
			Currency: "€",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WH_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WH_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WH_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("WH_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("WH_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Contract defaults
	if hours := os.Getenv("WH_CONTRACT_HOURS"); hours != "" {
		if h, err := strconv.ParseFloat(hours, 64); err == nil && h >= 0 {
			c.Contract.HoursPerMonth = h
		}
	}
	if rate := os.Getenv("WH_HOURLY_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil && r >= 0 {
			c.Contract.HourlyRate = r
		}
	}
	if rate := os.Getenv("WH_EXTRA_HOURLY_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil && r >= 0 {
			c.Contract.ExtraHourlyRate = r
		}
	}

	// Display configuration
	if currency := os.Getenv("WH_CURRENCY"); currency != "" {
		c.Display.Currency = currency
	}

	// Application configuration
	if timeout := os.Getenv("WH_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("WH_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Contract.HoursPerMonth < 0 {
		return &ConfigError{Field: "contract.hours_per_month", Message: "contract hours cannot be negative"}
	}
	if c.Contract.HourlyRate < 0 {
		return &ConfigError{Field: "contract.hourly_rate", Message: "hourly rate cannot be negative"}
	}
	if c.Contract.ExtraHourlyRate < 0 {
		return &ConfigError{Field: "contract.extra_hourly_rate", Message: "extra hourly rate cannot be negative"}
	}

	if c.Display.Currency == "" {
		return &ConfigError{Field: "display.currency", Message: "currency symbol cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
