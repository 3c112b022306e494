package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is built once at startup and passed to the components that need it.
type Config struct {
	Port              string
	GinMode           string
	LogLevel          string
	DBDriver          string
	DatabaseURL       string
	SQLitePath        string
	AutoMigrate       bool
	JWTSecret         string
	BcryptCost        int
	CORSAllowedOrigin string
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBDriver:          getEnv("DB_DRIVER", DriverPostgres),
		DatabaseURL:       getEnv("DATABASE_URL", postgresDSNFromParts()),
		SQLitePath:        getEnv("SQLITE_PATH", "restaurant_menu.db"),
		AutoMigrate:       getEnvBool("DB_AUTO_MIGRATE", false),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", c.GinMode)
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL or DB_HOST/DB_NAME is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func postgresDSNFromParts() string {
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if host == "" || name == "" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		name,
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
