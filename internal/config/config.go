package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Redis    RedisConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeWebhookSecret string
	ResendAPIKey        string
	DefaultEmailSender  string
	AIProvider          string
	GoogleAIAPIKey      string
	GoogleAIModel       string
	OpenAIAPIKey        string
	OpenAIModel         string
	WebAppURI           string
}

// RedisConfig holds Redis connection settings used by the rate limiter and the job queue
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	MaxUploadBytes int64
	// Requests per minute allowed per client on rate limited routes
	RateLimitRPM int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.StripeWebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	cfg.Services.AIProvider = getEnvWithDefault("AI_PROVIDER", "gemini")
	switch cfg.Services.AIProvider {
	case "gemini":
		if cfg.Services.GoogleAIAPIKey, err = requireEnv("GEMINI_API_KEY"); err != nil {
			return nil, err
		}
	case "openai":
		if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q", cfg.Services.AIProvider)
	}
	cfg.Services.GoogleAIModel = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.Services.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	maxUpload := getEnvWithDefault("MAX_UPLOAD_BYTES", "10485760")
	cfg.Server.MaxUploadBytes, err = strconv.ParseInt(maxUpload, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MAX_UPLOAD_BYTES: %w", err)
	}

	cfg.Server.RateLimitRPM, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "60"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the host:port address of the Redis server
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
