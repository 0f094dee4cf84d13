package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         string
	CORSAllowOrigins []string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel  string
	LogFormat string

	DisplayTimezone string

	FirebaseStorageBucket  string
	FirebaseStorageBaseURL string
	FirebaseCredentials    string
	ImageStoreTimeout      time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ImageCacheTTL time.Duration

	DriverReconciliationSchedule string
}

// LoadConfig reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:         env("HTTP_PORT", "8080"),
		CORSAllowOrigins: listEnv("CORS_ALLOW_ORIGINS", []string{"*"}),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", "commerce"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		LogLevel:  env("LOG_LEVEL", "info"),
		LogFormat: env("LOG_FORMAT", "json"),

		DisplayTimezone: env("DISPLAY_TIMEZONE", "Asia/Yerevan"),

		FirebaseStorageBucket:  env("FIREBASE_STORAGE_BUCKET", ""),
		FirebaseStorageBaseURL: env("FIREBASE_STORAGE_BASE_URL", ""),
		FirebaseCredentials:    env("FIREBASE_CREDENTIALS_FILE", ""),

		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPassword: env("REDIS_PASSWORD", ""),

		DriverReconciliationSchedule: env("DRIVER_RECONCILIATION_SCHEDULE", "0 * * * * *"),
	}

	var err error
	if cfg.ImageStoreTimeout, err = durationEnv("IMAGE_STORE_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ImageCacheTTL, err = durationEnv("IMAGE_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// DisplayLocation resolves DisplayTimezone. The embedded tzdata keeps this
// working on images without a zoneinfo database.
func (c Config) DisplayLocation() (*time.Location, error) {
	return time.LoadLocation(c.DisplayTimezone)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func listEnv(key string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(env(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
