// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// Data source kinds.
const (
	DataSourceMock = "mock"
	DataSourceLive = "live"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	App        AppConfig
	DataSource DataSourceConfig
	Provider   ProviderConfig
	Auth       AuthConfig
	Store      StoreConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level        string `env:"LOG_LEVEL" envDefault:"info"`
	Format       string `env:"LOG_FORMAT" envDefault:"json"`
	EnableCaller bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"flight-finder"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// DataSourceConfig selects and tunes the flight data source.
type DataSourceConfig struct {
	// Kind is "mock" for the bundled fixtures or "live" for the upstream API
	Kind string `env:"DATA_SOURCE" envDefault:"mock"`

	// Latency is the simulated delay of the mock source
	Latency time.Duration `env:"MOCK_LATENCY" envDefault:"500ms"`

	// Seed makes mock results reproducible; 0 picks a random seed
	Seed int64 `env:"MOCK_SEED" envDefault:"0"`

	// Timezone is the IANA zone synthetic departure times are generated in
	Timezone string `env:"MOCK_TIMEZONE" envDefault:"UTC"`

	// SearchTimeout bounds a single call to the data source
	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`
}

// ProviderConfig holds the live flight API settings.
type ProviderConfig struct {
	BaseURL string        `env:"PROVIDER_BASE_URL" envDefault:"https://sky-scrapper.p.rapidapi.com"`
	APIKey  string        `env:"PROVIDER_API_KEY"`
	Host    string        `env:"PROVIDER_HOST" envDefault:"sky-scrapper.p.rapidapi.com"`
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

// AuthConfig holds session and sign-in settings.
type AuthConfig struct {
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`
	Latency    time.Duration `env:"AUTH_LATENCY" envDefault:"0s"`
	BcryptCost int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	NodeID     int64         `env:"ID_NODE" envDefault:"1"`
}

// StoreConfig selects the key-value store backing sessions and recent searches.
type StoreConfig struct {
	Driver        string `env:"STORE_DRIVER" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix     string `env:"STORE_KEY_PREFIX" envDefault:"flight-finder:"`
}

// CORSConfig holds cross-origin settings for the mobile and web clients.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"SEARCH_TIMEOUT", cfg.DataSource.SearchTimeout},
		{"PROVIDER_TIMEOUT", cfg.Provider.Timeout},
		{"AUTH_SESSION_TTL", cfg.Auth.SessionTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.DataSource.Latency < 0 {
		return fmt.Errorf("MOCK_LATENCY must not be negative")
	}
	if cfg.Auth.Latency < 0 {
		return fmt.Errorf("AUTH_LATENCY must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	switch cfg.DataSource.Kind {
	case DataSourceMock:
		if _, err := time.LoadLocation(cfg.DataSource.Timezone); err != nil {
			return fmt.Errorf("MOCK_TIMEZONE %q is not a valid IANA zone", cfg.DataSource.Timezone)
		}
	case DataSourceLive:
		if strings.TrimSpace(cfg.Provider.APIKey) == "" {
			return fmt.Errorf("PROVIDER_API_KEY is required when DATA_SOURCE is live")
		}
		if !strings.HasPrefix(cfg.Provider.BaseURL, "http://") && !strings.HasPrefix(cfg.Provider.BaseURL, "https://") {
			return fmt.Errorf("PROVIDER_BASE_URL must be an http or https URL, got %q", cfg.Provider.BaseURL)
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of: mock, live; got %q", cfg.DataSource.Kind)
	}

	// bcrypt accepts costs from 4 to 31
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
		return fmt.Errorf("AUTH_BCRYPT_COST must be between 4 and 31, got %d", cfg.Auth.BcryptCost)
	}

	// snowflake reserves 10 bits for the node
	if cfg.Auth.NodeID < 0 || cfg.Auth.NodeID > 1023 {
		return fmt.Errorf("ID_NODE must be between 0 and 1023, got %d", cfg.Auth.NodeID)
	}

	switch cfg.Store.Driver {
	case StoreMemory:
	case StoreRedis:
		if strings.TrimSpace(cfg.Store.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORE_DRIVER is redis")
		}
		if cfg.Store.RedisDB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative, got %d", cfg.Store.RedisDB)
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: memory, redis; got %q", cfg.Store.Driver)
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	return nil
}

// LoggerConfig converts the logging settings into a logger configuration.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:        c.Logging.Level,
		Format:       c.Logging.Format,
		EnableCaller: c.Logging.EnableCaller,
		ServiceName:  c.Logging.ServiceName,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// UsesLiveData reports whether searches go to the upstream API.
func (c *Config) UsesLiveData() bool {
	return c.DataSource.Kind == DataSourceLive
}
