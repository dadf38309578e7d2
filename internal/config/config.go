package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Timezone    string `mapstructure:"TIMEZONE"`

	// Reference database (locations, assets, asset types, users, contacts)
	ReferenceDatabaseURL string `mapstructure:"REFERENCE_DATABASE_URL"`
	ReferenceDBHost      string `mapstructure:"REF_DB_HOST"`
	ReferenceDBPort      string `mapstructure:"REF_DB_PORT"`
	ReferenceDBUser      string `mapstructure:"REF_DB_USER"`
	ReferenceDBPassword  string `mapstructure:"REF_DB_PASSWORD"`
	ReferenceDBName      string `mapstructure:"REF_DB_NAME"`
	ReferenceDBSSLMode   string `mapstructure:"REF_DB_SSL_MODE"`

	// Operational database (schedule, alerts, inventory, forms, notifications)
	OperationalDatabaseURL string `mapstructure:"OPERATIONAL_DATABASE_URL"`
	OperationalDBHost      string `mapstructure:"OPS_DB_HOST"`
	OperationalDBPort      string `mapstructure:"OPS_DB_PORT"`
	OperationalDBUser      string `mapstructure:"OPS_DB_USER"`
	OperationalDBPassword  string `mapstructure:"OPS_DB_PASSWORD"`
	OperationalDBName      string `mapstructure:"OPS_DB_NAME"`
	OperationalDBSSLMode   string `mapstructure:"OPS_DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Messaging (Telegram Bot API) configuration
	TelegramAPIBaseURL string `mapstructure:"TELEGRAM_API_BASE_URL"`
	TelegramBotToken   string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramTimeoutSec int    `mapstructure:"TELEGRAM_TIMEOUT_SEC"`

	// Schedule engine and alert scan
	AlertDedupWindow          time.Duration `mapstructure:"ALERT_DEDUP_WINDOW"`
	AlertDefaultLeadDays      int           `mapstructure:"ALERT_DEFAULT_LEAD_DAYS"`
	UpcomingUrgentDays        int           `mapstructure:"UPCOMING_URGENT_DAYS"`
	ClosedAlertVisibilityDays int           `mapstructure:"CLOSED_ALERT_VISIBILITY_DAYS"`
	RetentionDefaultDays      int           `mapstructure:"RETENTION_DEFAULT_DAYS"`

	// External trigger (cmd/alert-trigger)
	AlertScanCron string `mapstructure:"ALERT_SCAN_CRON"`
	AlertScanURL  string `mapstructure:"ALERT_SCAN_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.ReferenceDatabaseURL == "" {
		config.ReferenceDatabaseURL = buildDatabaseURL(config.ReferenceDBUser, config.ReferenceDBPassword,
			config.ReferenceDBHost, config.ReferenceDBPort, config.ReferenceDBName, config.ReferenceDBSSLMode)
	}
	if config.OperationalDatabaseURL == "" {
		config.OperationalDatabaseURL = buildDatabaseURL(config.OperationalDBUser, config.OperationalDBPassword,
			config.OperationalDBHost, config.OperationalDBPort, config.OperationalDBName, config.OperationalDBSSLMode)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIMEZONE", "Europe/Rome")

	// Database defaults
	viper.SetDefault("REF_DB_HOST", "localhost")
	viper.SetDefault("REF_DB_PORT", "5432")
	viper.SetDefault("REF_DB_USER", "postgres")
	viper.SetDefault("REF_DB_PASSWORD", "postgres")
	viper.SetDefault("REF_DB_NAME", "gestman_reference")
	viper.SetDefault("REF_DB_SSL_MODE", "disable")

	viper.SetDefault("OPS_DB_HOST", "localhost")
	viper.SetDefault("OPS_DB_PORT", "5432")
	viper.SetDefault("OPS_DB_USER", "postgres")
	viper.SetDefault("OPS_DB_PASSWORD", "postgres")
	viper.SetDefault("OPS_DB_NAME", "gestman_operational")
	viper.SetDefault("OPS_DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Messaging defaults
	viper.SetDefault("TELEGRAM_API_BASE_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_TIMEOUT_SEC", 10)

	// Schedule defaults
	viper.SetDefault("ALERT_DEDUP_WINDOW", 2*time.Hour)
	viper.SetDefault("ALERT_DEFAULT_LEAD_DAYS", 7)
	viper.SetDefault("UPCOMING_URGENT_DAYS", 7)
	viper.SetDefault("CLOSED_ALERT_VISIBILITY_DAYS", 30)
	viper.SetDefault("RETENTION_DEFAULT_DAYS", 365)

	viper.SetDefault("ALERT_SCAN_CRON", "@every 1h")
	viper.SetDefault("ALERT_SCAN_URL", "http://localhost:7008/api/v1/maintenance/alerts/scan")
}

func buildDatabaseURL(user, password, host, port, name, sslMode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user,
		password,
		host,
		port,
		name,
		sslMode,
	)
}

func validate(config *Config) error {
	if config.ReferenceDBName == "" {
		return fmt.Errorf("reference database name is required")
	}
	if config.OperationalDBName == "" {
		return fmt.Errorf("operational database name is required")
	}
	if config.AlertDedupWindow <= 0 {
		return fmt.Errorf("ALERT_DEDUP_WINDOW must be positive")
	}
	if config.AlertDefaultLeadDays < 0 {
		return fmt.Errorf("ALERT_DEFAULT_LEAD_DAYS must not be negative")
	}
	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location returns the configured time zone; calendar dates are computed in it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TelegramTimeout returns the outbound messaging timeout.
func (c *Config) TelegramTimeout() time.Duration {
	if c.TelegramTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TelegramTimeoutSec) * time.Second
}
