package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key for authentication

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is
	// believed when resolving client addresses.
	TrustedProxies []string

	// Drop tuning. Defaults match the forum economy rules; overridable
	// per environment for ops experiments.
	MinDropPeriod time.Duration
	MaxDropPeriod time.Duration
	DropChance    int // 1-in-N chance per eligible trigger
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		DBUser:      getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvDBPort, DefaultDBPort),
		DBName:      getEnv(EnvDBName, DefaultDBName),
		APIKey:      getEnv(EnvAPIKey, ""),
	}

	if proxies := getEnv(EnvTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	port, err := getEnvInt(EnvPort, DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.MinDropPeriod, err = getEnvDuration(EnvMinDropPeriod, DefaultMinDropPeriod)
	if err != nil {
		return nil, err
	}
	cfg.MaxDropPeriod, err = getEnvDuration(EnvMaxDropPeriod, DefaultMaxDropPeriod)
	if err != nil {
		return nil, err
	}
	cfg.DropChance, err = getEnvInt(EnvDropChance, DefaultDropChance)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration for consistency.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s environment variable must be set for security", EnvAPIKey)
	}
	if c.MinDropPeriod <= 0 || c.MaxDropPeriod <= 0 {
		return fmt.Errorf("drop periods must be positive")
	}
	if c.MinDropPeriod >= c.MaxDropPeriod {
		return fmt.Errorf("%s must be shorter than %s", EnvMinDropPeriod, EnvMaxDropPeriod)
	}
	if c.DropChance < 1 {
		return fmt.Errorf("%s must be at least 1", EnvDropChance)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
