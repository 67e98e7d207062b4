package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// JWTConfig holds the settings used to validate (and, for development, mint) bearer tokens.
type JWTConfig struct {
	Secret          string
	Issuer          string
	ExpirationHours int
}

// AssistConfig selects and configures the language-model provider behind the AI assist bridge.
// An empty Provider disables the bridge; every call then returns its fallback value.
type AssistConfig struct {
	Provider string
	BaseURL  string
	APIKey   string
	Model    string
}

// AutosaveConfig tunes edit-session save pipelines.
type AutosaveConfig struct {
	DebounceMs        int
	MergePending      bool
	RequeueOnFailure  bool
	SessionIdleTTLSec int
}

// Debounce returns the debounce delay as a duration.
func (c AutosaveConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// SessionIdleTTL returns how long an untouched edit session is kept open.
func (c AutosaveConfig) SessionIdleTTL() time.Duration {
	return time.Duration(c.SessionIdleTTLSec) * time.Second
}

// VoiceConfig toggles server-side relay of browser speech recognition.
type VoiceConfig struct {
	Enabled bool
}

// ExportConfig holds headless Chrome and download link settings for PDF export.
type ExportConfig struct {
	ChromePath   string
	TimeoutSec   int
	URLExpirySec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Timezone    string
	LogLevel    string
	StoreDriver string
	Database    DatabaseConfig
	MinIO       MinIOConfig
	JWT         JWTConfig
	Assist      AssistConfig
	Autosave    AutosaveConfig
	Voice       VoiceConfig
	Export      ExportConfig
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDriver: getEnv("STORE_DRIVER", "postgres"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", ""),
			Issuer:          getEnv("JWT_ISSUER", "resumeapi"),
			ExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		},
		Assist: AssistConfig{
			Provider: getEnv("ASSIST_PROVIDER", ""),
			BaseURL:  getEnv("ASSIST_BASE_URL", "https://api.openai.com/v1"),
			APIKey:   getEnv("ASSIST_API_KEY", ""),
			Model:    getEnv("ASSIST_MODEL", "gpt-4.1-nano"),
		},
		Autosave: AutosaveConfig{
			DebounceMs:        getEnvInt("AUTOSAVE_DEBOUNCE_MS", 1000),
			MergePending:      getEnvBool("AUTOSAVE_MERGE_PENDING", true),
			RequeueOnFailure:  getEnvBool("AUTOSAVE_REQUEUE_ON_FAILURE", true),
			SessionIdleTTLSec: getEnvInt("AUTOSAVE_SESSION_IDLE_TTL_SEC", 1800),
		},
		Voice: VoiceConfig{
			Enabled: getEnvBool("VOICE_ENABLED", true),
		},
		Export: ExportConfig{
			ChromePath:   getEnv("EXPORT_CHROME_PATH", ""),
			TimeoutSec:   getEnvInt("EXPORT_TIMEOUT_SEC", 30),
			URLExpirySec: getEnvInt("EXPORT_URL_EXPIRY_SEC", 900),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
