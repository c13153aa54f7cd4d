package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvProduction = "production"
)

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

// Config enumerates every recognized option. Values come from the process
// environment, optionally seeded from a .env file.
type Config struct {
	// postgres | sqlite. Optional, default postgres.
	StorageDriver string

	// Required when StorageDriver is postgres.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	// Optional, default 5432.
	DBPort int
	// Optional, default disable.
	DBSSLMode string
	// Optional, default 10. Acquisition beyond the limit waits for a free connection.
	DBMaxConns int32
	// Optional, default 10s. Applied to every store call made by a request.
	DBQueryTimeout time.Duration

	// Optional, default salatchecker.db. Used when StorageDriver is sqlite.
	SQLitePath string
	// Optional, default true.
	MigrateOnStart bool

	// Required in production.
	JWTSecret string

	// Optional, default http://localhost:5173. FRONTEND_URL, comma separated.
	AllowedOrigins []string
	// Optional, default 3000.
	Port int
	// Optional, default development.
	Environment string

	// Optional, default https://api.aladhan.com/v1.
	PrayerTimesBaseURL string
	// Optional, default 2 (ISNA).
	PrayerTimesMethod int
	// Optional. Empty keeps the prayer times cache in process.
	RedisAddr     string
	RedisPassword string

	LogLevel string
	LogDev   bool
}

// Load reads configuration once per process. The .env file is optional.
func Load() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load(envFiles()...)
		instance, loadErr = FromEnv()
	})
	return instance, loadErr
}

func envFiles() []string {
	files := make([]string, 0, 2)
	for _, f := range []string{".env", "./configs/.env"} {
		if _, err := os.Stat(f); err == nil {
			files = append(files, f)
		}
	}
	return files
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() (*Config, error) {
	var errs []error
	cfg := &Config{
		StorageDriver:      strings.ToLower(getString("STORAGE_DRIVER", DriverPostgres)),
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSSLMode:          getString("DB_SSLMODE", "disable"),
		SQLitePath:         getString("SQLITE_PATH", "salatchecker.db"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AllowedOrigins:     splitList(getString("FRONTEND_URL", "http://localhost:5173")),
		Environment:        firstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"), "development"),
		PrayerTimesBaseURL: getString("PRAYER_TIMES_URL", "https://api.aladhan.com/v1"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		LogDev:             os.Getenv("LOG_DEV") == "1",
	}
	var err error
	if cfg.DBPort, err = getInt("DB_PORT", 5432); err != nil {
		errs = append(errs, err)
	}
	maxConns, err := getInt("DB_MAX_CONNS", 10)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.DBMaxConns = int32(maxConns)
	if cfg.DBQueryTimeout, err = getDuration("DB_QUERY_TIMEOUT", 10*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.Port, err = getInt("PORT", 3000); err != nil {
		errs = append(errs, err)
	}
	if cfg.PrayerTimesMethod, err = getInt("PRAYER_TIMES_METHOD", 2); err != nil {
		errs = append(errs, err)
	}
	switch cfg.StorageDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver))
	}
	if cfg.IsProduction() && cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if cfg.DBMaxConns < 1 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be positive"))
	}
	return cfg, errors.Join(errs...)
}

// MissingDatabaseVars lists required database variables that are not set.
func (c *Config) MissingDatabaseVars() []string {
	if c.StorageDriver != DriverPostgres {
		return nil
	}
	missing := make([]string, 0, 4)
	for _, v := range []struct {
		name  string
		value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_PASSWORD", c.DBPassword},
		{"DB_NAME", c.DBName},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c *Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
