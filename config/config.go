package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	MongoDB           string `mapstructure:"MONGO_DB"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	FrontendURL       string `mapstructure:"FRONTEND_URL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisTokenDB  int    `mapstructure:"REDIS_TOKEN_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Notification providers.
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	ResendFrom   string `mapstructure:"RESEND_FROM"`
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`
	MailFromName string `mapstructure:"MAIL_FROM_NAME"`
	AdminEmail   string `mapstructure:"ADMIN_EMAIL"`

	// Admin API guard.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	// Pricing constants.
	TaxRate            float64 `mapstructure:"TAX_RATE"`
	ExtraAdultRate     float64 `mapstructure:"EXTRA_ADULT_RATE"`
	MaxAdultsPerRoom   int     `mapstructure:"MAX_ADULTS_PER_ROOM"`
	DefaultNightlyRate float64 `mapstructure:"DEFAULT_NIGHTLY_RATE"`

	// Booking behaviour.
	BookingRefPrefix   string `mapstructure:"BOOKING_REF_PREFIX"`
	CoerceInvalidDates bool   `mapstructure:"COERCE_INVALID_DATES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "hillescape")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_TOKEN_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("RESEND_FROM", "HillEscape <booking@hillescape.com>")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "noreply@hillescape.com")
	viper.SetDefault("MAIL_FROM_NAME", "HillEscape Resorts")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("TAX_RATE", 0.18)
	viper.SetDefault("EXTRA_ADULT_RATE", 800.0)
	viper.SetDefault("MAX_ADULTS_PER_ROOM", 2)
	viper.SetDefault("DEFAULT_NIGHTLY_RATE", 2603.0)
	viper.SetDefault("BOOKING_REF_PREFIX", "HILL")
	viper.SetDefault("COERCE_INVALID_DATES", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
