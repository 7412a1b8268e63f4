// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	TwoFactor TwoFactorConfig
	Mail      MailConfig
	Exchange  ExchangeConfig
	Directory DirectoryConfig
	Telemetry TelemetryConfig
	App       AppConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `env:"PORT"                 envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT"  envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT"  envDefault:"60s"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Driver          string        `env:"STORAGE_DRIVER"       envDefault:"postgres"`
	Host            string        `env:"DB_HOST"              envDefault:"localhost"`
	Port            string        `env:"DB_PORT"              envDefault:"5432"`
	User            string        `env:"DB_USER"              envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD"          envDefault:"postgres"`
	DBName          string        `env:"DB_NAME"              envDefault:"easydinar"`
	SSLMode         string        `env:"DB_SSLMODE"           envDefault:"disable"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    envDefault:"5"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE"      envDefault:"true"`
}

// AuthConfig holds session and credential configuration
type AuthConfig struct {
	JWTSecret               string        `env:"JWT_SECRET"                envDefault:"change-me-in-production"`
	SessionTTL              time.Duration `env:"SESSION_TTL"               envDefault:"6h"`
	ResetTokenTTL           time.Duration `env:"RESET_TOKEN_TTL"           envDefault:"1h"`
	BcryptCost              int           `env:"BCRYPT_COST"               envDefault:"12"`
	RevocationBackend       string        `env:"REVOCATION_BACKEND"        envDefault:"memory"`
	RevocationSweepInterval time.Duration `env:"REVOCATION_SWEEP_INTERVAL" envDefault:"5m"`
	PasswordResetURL        string        `env:"PASSWORD_RESET_URL"        envDefault:"http://localhost:5173/reset-password"`
}

// RedisConfig holds the shared revocation store connection
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"easydinar"`
}

// TwoFactorConfig holds the SMS verification provider settings
type TwoFactorConfig struct {
	TwilioAccountSID string        `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string        `env:"TWILIO_AUTH_TOKEN"`
	TwilioServiceSID string        `env:"TWILIO_SERVICE_SID"`
	Timeout          time.Duration `env:"OTP_TIMEOUT"        envDefault:"10s"`
}

// MailConfig holds the outbound SMTP relay. Email is logged and dropped when Host is empty.
type MailConfig struct {
	Host      string `env:"SMTP_HOST"`
	Port      int    `env:"SMTP_PORT"       envDefault:"587"`
	Username  string `env:"SMTP_USERNAME"`
	Password  string `env:"SMTP_PASSWORD"`
	From      string `env:"MAIL_FROM"       envDefault:"EasyDinar <no-reply@easydinar.tn>"`
	TLSPolicy string `env:"SMTP_TLS_POLICY" envDefault:"mandatory"` // mandatory, opportunistic, none
}

// ExchangeConfig holds the exchange rate provider settings
type ExchangeConfig struct {
	BaseURL string        `env:"EXCHANGE_RATE_BASE_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
	APIKey  string        `env:"EXCHANGE_RATE_API_KEY"`
	Timeout time.Duration `env:"EXCHANGE_RATE_TIMEOUT"  envDefault:"5s"`
}

// DirectoryConfig holds the branch and ATM directory settings
type DirectoryConfig struct {
	// SeedFile is an optional GeoJSON export of bank and ATM amenities loaded at startup
	SeedFile string `env:"BRANCHES_SEED_FILE"`
}

// TelemetryConfig holds tracing export settings. Tracing is off when Endpoint is empty.
type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"easydinar"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	AccountNumberAttempts int           `env:"ACCOUNT_NUMBER_ATTEMPTS" envDefault:"8"`
	MailTimeout           time.Duration `env:"MAIL_TIMEOUT"            envDefault:"10s"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"` // debug, info, warn, error
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	switch c.Database.Driver {
	case "memory":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host cannot be empty")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database name cannot be empty")
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be postgres or memory)", c.Database.Driver)
	}

	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("jwt secret must be at least 16 bytes")
	}
	if c.Auth.SessionTTL <= 0 || c.Auth.ResetTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31, got %d", c.Auth.BcryptCost)
	}

	switch c.Auth.RevocationBackend {
	case "memory":
		if c.Auth.RevocationSweepInterval <= 0 {
			return fmt.Errorf("revocation sweep interval must be positive")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis address cannot be empty when revocation backend is redis")
		}
	default:
		return fmt.Errorf("invalid revocation backend: %s (must be memory or redis)", c.Auth.RevocationBackend)
	}

	if c.TwoFactor.Timeout <= 0 {
		return fmt.Errorf("otp timeout must be positive")
	}

	if c.Mail.Host != "" {
		if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
			return fmt.Errorf("invalid smtp port: %d", c.Mail.Port)
		}
		switch c.Mail.TLSPolicy {
		case "mandatory", "opportunistic", "none":
		default:
			return fmt.Errorf("invalid smtp tls policy: %s (must be mandatory, opportunistic, or none)", c.Mail.TLSPolicy)
		}
	}

	if c.Exchange.Timeout <= 0 {
		return fmt.Errorf("exchange rate timeout must be positive")
	}

	if c.App.AccountNumberAttempts < 1 {
		return fmt.Errorf("account number attempts must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
