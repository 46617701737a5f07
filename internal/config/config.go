package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port            int
	Env             string
	LogLevel        string
	FrontendURL     string
	DefaultLanguage string
}

// StorageConfig selects and configures the key-value store backend.
type StorageConfig struct {
	Driver   string // memory, postgres, redis
	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// AuthConfig holds the single-user access gate. Auth is disabled when
// PINHash is empty.
type AuthConfig struct {
	PINHash          string
	JWTSecret        string
	AccessExpiration string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "vi"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Storage = StorageConfig{
		Driver: getEnv("STORAGE_DRIVER", "memory"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "timekeeper"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        redisDB,
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "timekeeper"),
		},
	}

	config.Auth = AuthConfig{
		PINHash:          getEnv("AUTH_PIN_HASH", ""),
		JWTSecret:        getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "redis":
	case "postgres":
		if c.Storage.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.Storage.Driver)
	}

	if c.Auth.Enabled() && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required when AUTH_PIN_HASH is set")
	}

	switch c.App.DefaultLanguage {
	case "vi", "en":
	default:
		return fmt.Errorf("unsupported DEFAULT_LANGUAGE: %s", c.App.DefaultLanguage)
	}

	return nil
}

// Enabled reports whether the API requires a bearer token.
func (a AuthConfig) Enabled() bool {
	return a.PINHash != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Storage.Database.User,
		c.Storage.Database.Password,
		c.Storage.Database.Host,
		c.Storage.Database.Port,
		c.Storage.Database.Name,
		c.Storage.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
