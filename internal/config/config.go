package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	Upstream UpstreamConfig
	Store    StoreConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int    // Number of days to forecast
	DefaultCity  string // City looked up on first start
}

// UpstreamConfig holds the external service endpoints
type UpstreamConfig struct {
	GeocodingURL        string
	ReverseGeocodingURL string
	ForecastURL         string
	UserAgent           string        // Nominatim requires an identifying User-Agent
	Timeout             time.Duration // 0 disables the client timeout
	ReverseRPS          float64       // Nominatim allows at most one request per second
	CacheTTL            time.Duration
}

// StoreConfig selects the key-value backend for preferences and saved cities
type StoreConfig struct {
	Driver    string // memory, sqlite, redis
	Path      string // sqlite database file
	RedisAddr string
	RedisDB   int
}

// Load reads configuration from .env, file and environment variables
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.pixel-weather")

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("PIXEL_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.forecastDays", 5)
	v.SetDefault("app.defaultCity", "New York")
	v.SetDefault("upstream.geocodingURL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("upstream.reverseGeocodingURL", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("upstream.forecastURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("upstream.userAgent", "PixelWeatherApp/1.0")
	v.SetDefault("upstream.timeout", 0)
	v.SetDefault("upstream.reverseRPS", 1.0)
	v.SetDefault("upstream.cacheTTL", 10*time.Minute)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "pixel-weather.db")
	v.SetDefault("store.redisAddr", "localhost:6379")
	v.SetDefault("store.redisDB", 0)
}

// Validate checks values that would otherwise fail far from where they were set
func (c *Config) Validate() error {
	if c.App.ForecastDays < 1 || c.App.ForecastDays > 16 {
		return fmt.Errorf("app.forecastDays must be between 1 and 16, got %d", c.App.ForecastDays)
	}
	switch strings.ToLower(c.Store.Driver) {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
