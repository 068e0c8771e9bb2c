package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// ShutdownTimeout returns the graceful shutdown budget as a time.Duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the engine: "sqlite" (embedded, default) or "pgx" (PostgreSQL).
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite pgx"`
	// DSN is the driver-specific data source name.
	DSN string `mapstructure:"dsn" validate:"required"`
	// Migrate provisions the schema at startup when true.
	Migrate bool `mapstructure:"migrate"`
}

// SeedConfig controls the startup seed run.
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
