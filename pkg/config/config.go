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

type Config struct {
	Env  string
	Port int

	Sheets    SheetsConfig
	Twilio    TwilioConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Directory DirectoryConfig
	CORS      CORSConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

// SheetsConfig addresses the two spreadsheets backing the system: the
// read-only student directory and the outing-request ledger.
type SheetsConfig struct {
	CredentialsFile  string
	DirectorySheetID string
	LedgerSheetID    string
	TabName          string
}

// TwilioConfig holds SMS dispatch credentials. CountryCode is prefixed to the
// local-format numbers stored in the directory before sending.
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	FromNumber  string
	CountryCode string
}

// AuthConfig carries the static warden/guard credentials and JWT settings.
// WardenPassword may be a bcrypt hash; plaintext comparison is the fallback.
type AuthConfig struct {
	WardenUsername string
	WardenPassword string
	GuardPIN       string
	JWTSecret      string
	TokenExpiry    time.Duration
	RequireToken   bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DirectoryConfig tunes the student-directory lookup cache.
type DirectoryConfig struct {
	CacheTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles Prometheus exposure.
type MetricsConfig struct {
	Enabled bool
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

	cfg.Sheets = SheetsConfig{
		CredentialsFile:  v.GetString("SHEETS_CREDENTIALS_FILE"),
		DirectorySheetID: v.GetString("SHEETS_DIRECTORY_ID"),
		LedgerSheetID:    v.GetString("SHEETS_LEDGER_ID"),
		TabName:          v.GetString("SHEETS_TAB_NAME"),
	}

	cfg.Twilio = TwilioConfig{
		AccountSID:  v.GetString("TWILIO_SID"),
		AuthToken:   v.GetString("TWILIO_AUTH_TOKEN"),
		FromNumber:  v.GetString("TWILIO_PHONE_NUMBER"),
		CountryCode: v.GetString("SMS_COUNTRY_CODE"),
	}

	cfg.Auth = AuthConfig{
		WardenUsername: v.GetString("WARDEN_USERNAME"),
		WardenPassword: v.GetString("WARDEN_PASSWORD"),
		GuardPIN:       v.GetString("GUARD_PIN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenExpiry:    parseDuration(v.GetString("JWT_EXPIRATION"), 12*time.Hour),
		RequireToken:   v.GetBool("AUTH_REQUIRE_TOKEN"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Directory = DirectoryConfig{
		CacheTTL: parseDuration(v.GetString("DIRECTORY_CACHE_TTL"), 15*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("SHEETS_CREDENTIALS_FILE", "credentials.json")
	v.SetDefault("SHEETS_DIRECTORY_ID", "")
	v.SetDefault("SHEETS_LEDGER_ID", "")
	v.SetDefault("SHEETS_TAB_NAME", "Sheet1")

	v.SetDefault("TWILIO_SID", "")
	v.SetDefault("TWILIO_AUTH_TOKEN", "")
	v.SetDefault("TWILIO_PHONE_NUMBER", "")
	v.SetDefault("SMS_COUNTRY_CODE", "+91")

	v.SetDefault("WARDEN_USERNAME", "warden")
	v.SetDefault("WARDEN_PASSWORD", "")
	v.SetDefault("GUARD_PIN", "")
	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "12h")
	v.SetDefault("AUTH_REQUIRE_TOKEN", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("DIRECTORY_CACHE_TTL", "15m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", false)
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
