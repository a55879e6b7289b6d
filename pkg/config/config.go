package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Store drivers supported for the planning document.
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Sheets   SheetsConfig
	Calendar CalendarConfig
	Sync     SyncConfig
	CORS     CORSConfig
	Log      LogConfig
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver string
	File   string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig governs the read-through document cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// SheetsConfig configures the one-way Google Sheets mirror. An empty
// SpreadsheetID disables the sync entirely.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	WorksheetTitle  string
}

// CalendarConfig bounds the visible window of the weekly schedule grid.
type CalendarConfig struct {
	DayStartHour  int
	DayEndHour    int
	PixelsPerHour int
}

// SyncConfig tunes the background sheet-sync queue.
type SyncConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{
		Driver: v.GetString("STORE_DRIVER"),
		File:   v.GetString("STORE_FILE"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Sheets = SheetsConfig{
		SpreadsheetID:   v.GetString("GOOGLE_SHEETS_ID"),
		CredentialsFile: v.GetString("GOOGLE_SHEETS_CREDENTIALS"),
		WorksheetTitle:  v.GetString("GOOGLE_SHEETS_WORKSHEET"),
	}

	cfg.Calendar = CalendarConfig{
		DayStartHour:  v.GetInt("CALENDAR_DAY_START_HOUR"),
		DayEndHour:    v.GetInt("CALENDAR_DAY_END_HOUR"),
		PixelsPerHour: v.GetInt("CALENDAR_PIXELS_PER_HOUR"),
	}

	cfg.Sync = SyncConfig{
		Workers:    v.GetInt("SYNC_WORKERS"),
		MaxRetries: v.GetInt("SYNC_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("SYNC_RETRY_DELAY"), 5*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 5001)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_DRIVER", StoreDriverFile)
	v.SetDefault("STORE_FILE", "schedule_data.json")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "naraigoto")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("GOOGLE_SHEETS_ID", "")
	v.SetDefault("GOOGLE_SHEETS_CREDENTIALS", "credentials.json")
	v.SetDefault("GOOGLE_SHEETS_WORKSHEET", "習い事候補")

	v.SetDefault("CALENDAR_DAY_START_HOUR", 7)
	v.SetDefault("CALENDAR_DAY_END_HOUR", 22)
	v.SetDefault("CALENDAR_PIXELS_PER_HOUR", 64)

	v.SetDefault("SYNC_WORKERS", 1)
	v.SetDefault("SYNC_MAX_RETRIES", 3)
	v.SetDefault("SYNC_RETRY_DELAY", "5s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
