package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StoreDriver string

const (
	DriverMemory   StoreDriver = "memory"
	DriverSQLite   StoreDriver = "sqlite"
	DriverPostgres StoreDriver = "postgres"
	DriverRedis    StoreDriver = "redis"
)

const devJWTSecret = "kanso-dev-secret-change-me"

var (
	ErrUnknownDriver       = errors.New("unknown STORE_DRIVER (must be memory, sqlite, postgres or redis)")
	ErrInvalidReminderTick = errors.New("REMINDER_INTERVAL must be between 1s and 1m")
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Timezone       string

	StoreDriver StoreDriver
	SQLitePath  string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBDriver   string
	DBTable    string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	RateLimit     int

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	AMQPURL          string
	ReminderInterval time.Duration
}

// RedisEnabled reports whether any component needs a Redis connection.
func (c Config) RedisEnabled() bool {
	return c.RedisHost != "" || c.StoreDriver == DriverRedis
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Location resolves Timezone, falling back to the process local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[CONFIG] Unknown TIMEZONE %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

// Load reads the optional .env file at path and then the environment.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		Timezone:       os.Getenv("TIMEZONE"),

		StoreDriver: StoreDriver(strings.ToLower(getEnv("STORE_DRIVER", string(DriverMemory)))),
		SQLitePath:  getEnv("SQLITE_PATH", "kanso.db"),

		DBUser:     getEnv("DB_USER", "kanso_user"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "kanso_db"),
		DBDriver:   getEnv("DB_DRIVER", "pgx"),
		DBTable:    getEnv("DB_TABLE", "kanso_kv"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: getEnv("JWT_ISSUER", "kanso-tracker"),

		AMQPURL: os.Getenv("AMQP_URL"),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return cfg, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 100); err != nil {
		return cfg, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.ReminderInterval, err = getDuration("REMINDER_INTERVAL", 30*time.Second); err != nil {
		return cfg, err
	}
	if cfg.ReminderInterval < time.Second || cfg.ReminderInterval > time.Minute {
		return cfg, fmt.Errorf("%w, got %s", ErrInvalidReminderTick, cfg.ReminderInterval)
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
	}
	if cfg.DBDriver != "pgx" && cfg.DBDriver != "postgres" {
		return cfg, fmt.Errorf("config: DB_DRIVER must be pgx or postgres, got %q", cfg.DBDriver)
	}
	if cfg.StoreDriver == DriverRedis && cfg.RedisHost == "" {
		cfg.RedisHost = "localhost"
	}

	if cfg.JWTSecret == "" {
		log.Println("[CONFIG] JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration like 30s or 5m: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
