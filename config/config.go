package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Timesheet specifics
	Postgres       PostgresConfig
	GoogleCalendar GoogleCalendarConfig
	Timesheet      TimesheetConfig
	CatalogCache   CatalogCacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type TimesheetConfig struct {
	Timezone   string
	ReportsDir string
}

// CatalogCacheConfig tunes the TTL cache in front of the catalog store.
type CatalogCacheConfig struct {
	Size int
	TTL  string
}

// Load loads configuration using Viper.
// Config file name config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Timesheet specifics
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Timesheet.Timezone = viper.GetString("timesheet.timezone")
	cfg.Timesheet.ReportsDir = viper.GetString("timesheet.reports_dir")

	cfg.CatalogCache.Size = viper.GetInt("catalog_cache.size")
	cfg.CatalogCache.TTL = viper.GetString("catalog_cache.ttl")

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn is required - set it in config.yaml or DATABASE_URL")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("timesheet.timezone", "Europe/Berlin")
	viper.SetDefault("timesheet.reports_dir", "reports")
	viper.SetDefault("catalog_cache.size", 512)
	viper.SetDefault("catalog_cache.ttl", "5m")
}
