package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"estatedesk/internal/logger"
	"estatedesk/internal/tokenstore"
)

// Config holds application configuration
type Config struct {
	// Server
	Env         string
	Port        string
	FrontendURL string
	UploadDir   string

	// Database
	DatabaseURL    string
	DBMaxIdleConns int
	DBMaxOpenConns int
	MigrationsDir  string

	// Cache
	RedisURL string

	// JWT
	JWTSecret    string
	JWTExpiresIn string
	TokenTTL     time.Duration

	// Business rules
	MaintenanceRatePerMeter float64

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Proxies whose X-Forwarded-For is believed; nil trusts none
	TrustedProxies []string

	// Scheduler; empty disables the redemption sweep job
	RedemptionSweepCron string
}

var required = []string{
	"DATABASE_URL",
	"JWT_ACCESS_TOKEN_SECRET_KEY",
	"JWT_ACCESS_TOKEN_EXPIRES_IN",
	"FRONTEND_URL",
	"REDIS_URL",
}

// Load loads configuration from the environment, reading a .env file first
// when one exists. Every missing or malformed variable is reported.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug("no .env file found, using process environment")
	}

	var errs []error
	for _, key := range required {
		if os.Getenv(key) == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	config := &Config{
		Env:         getEnv("ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret:    os.Getenv("JWT_ACCESS_TOKEN_SECRET_KEY"),
		JWTExpiresIn: os.Getenv("JWT_ACCESS_TOKEN_EXPIRES_IN"),

		RedemptionSweepCron: getEnv("REDEMPTION_SWEEP_CRON", "@daily"),
	}
	if v, ok := os.LookupEnv("REDEMPTION_SWEEP_CRON"); ok && v == "" {
		config.RedemptionSweepCron = ""
	}

	var err error
	if config.DBMaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		errs = append(errs, err)
	}
	if config.DBMaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 100); err != nil {
		errs = append(errs, err)
	}
	if config.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 40); err != nil {
		errs = append(errs, err)
	}
	if config.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 20); err != nil {
		errs = append(errs, err)
	}
	if config.MaintenanceRatePerMeter, err = getEnvFloat("MAINTENANCE_RATE_PER_METER", 120); err != nil {
		errs = append(errs, err)
	} else if config.MaintenanceRatePerMeter < 1 {
		errs = append(errs, fmt.Errorf("MAINTENANCE_RATE_PER_METER must be at least 1, got %v", config.MaintenanceRatePerMeter))
	}

	if config.TrustedProxies, err = getEnvProxies("TRUSTED_PROXIES"); err != nil {
		errs = append(errs, err)
	}

	if config.JWTExpiresIn != "" {
		if config.TokenTTL, err = tokenstore.ParseTTL(config.JWTExpiresIn); err != nil {
			errs = append(errs, fmt.Errorf("JWT_ACCESS_TOKEN_EXPIRES_IN: %w", err))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return f, nil
}

// getEnvProxies reads a comma-separated list of IPs or CIDRs.
func getEnvProxies(key string) ([]string, error) {
	value := os.Getenv(key)
	if value == "" {
		return nil, nil
	}
	var proxies []string
	for _, p := range strings.Split(value, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("%s: %q is not an IP or CIDR", key, p)
			}
		}
		proxies = append(proxies, p)
	}
	return proxies, nil
}
