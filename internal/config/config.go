package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Log      LogConfig
	Events   EventsConfig
	Resolver ResolverConfig
	Archive  ArchiveConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EventsConfig holds domain-event publishing settings (Redis channel).
type EventsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// Addr returns the host:port address of the Redis broker.
func (e *EventsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// ResolverConfig holds name-resolution cascade settings. Endpoints is the
// ordered list of external lookup URLs; each receives the RUT as a query
// parameter.
type ResolverConfig struct {
	Endpoints    []string `mapstructure:"endpoints"`
	TimeoutSecs  int      `mapstructure:"timeout_secs"`
	Concurrency  int      `mapstructure:"concurrency"`
	DefaultLimit int      `mapstructure:"default_limit"`
}

// Timeout returns the per-source lookup timeout.
func (r *ResolverConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSecs) * time.Second
}

// ArchiveConfig holds settings for archiving uploaded workbooks to S3.
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Load reads configuration from environment variables with the NUAMX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NUAMX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "nuamx")
	v.SetDefault("db.password", "nuamx_secret")
	v.SetDefault("db.name", "nuamx_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Events defaults
	v.SetDefault("events.enabled", true)
	v.SetDefault("events.host", "localhost")
	v.SetDefault("events.port", 6379)
	v.SetDefault("events.password", "")
	v.SetDefault("events.db", 0)
	v.SetDefault("events.channel", "rating_events")

	// Resolver defaults
	v.SetDefault("resolver.endpoints", "")
	v.SetDefault("resolver.timeout_secs", 3)
	v.SetDefault("resolver.concurrency", 5)
	v.SetDefault("resolver.default_limit", 500)

	// Archive defaults
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "nuamx-uploads")
	v.SetDefault("archive.endpoint", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "NUAMX_SERVER_PORT",
		"server.read_timeout":    "NUAMX_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "NUAMX_SERVER_WRITE_TIMEOUT",
		"server.environment":     "NUAMX_SERVER_ENVIRONMENT",
		"db.host":                "NUAMX_DB_HOST",
		"db.port":                "NUAMX_DB_PORT",
		"db.user":                "NUAMX_DB_USER",
		"db.password":            "NUAMX_DB_PASSWORD",
		"db.name":                "NUAMX_DB_NAME",
		"db.sslmode":             "NUAMX_DB_SSLMODE",
		"db.max_open":            "NUAMX_DB_MAX_OPEN",
		"db.max_idle":            "NUAMX_DB_MAX_IDLE",
		"log.level":              "NUAMX_LOG_LEVEL",
		"log.format":             "NUAMX_LOG_FORMAT",
		"events.enabled":         "NUAMX_EVENTS_ENABLED",
		"events.host":            "NUAMX_EVENTS_HOST",
		"events.port":            "NUAMX_EVENTS_PORT",
		"events.password":        "NUAMX_EVENTS_PASSWORD",
		"events.db":              "NUAMX_EVENTS_DB",
		"events.channel":         "NUAMX_EVENTS_CHANNEL",
		"resolver.endpoints":     "NUAMX_RESOLVER_ENDPOINTS",
		"resolver.timeout_secs":  "NUAMX_RESOLVER_TIMEOUT_SECS",
		"resolver.concurrency":   "NUAMX_RESOLVER_CONCURRENCY",
		"resolver.default_limit": "NUAMX_RESOLVER_DEFAULT_LIMIT",
		"archive.enabled":        "NUAMX_ARCHIVE_ENABLED",
		"archive.region":         "NUAMX_ARCHIVE_REGION",
		"archive.bucket":         "NUAMX_ARCHIVE_BUCKET",
		"archive.endpoint":       "NUAMX_ARCHIVE_ENDPOINT",
		"archive.access_key":     "NUAMX_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":     "NUAMX_ARCHIVE_SECRET_KEY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if NUAMX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("NUAMX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Events = EventsConfig{
		Enabled:  v.GetBool("events.enabled"),
		Host:     v.GetString("events.host"),
		Port:     v.GetInt("events.port"),
		Password: v.GetString("events.password"),
		DB:       v.GetInt("events.db"),
		Channel:  v.GetString("events.channel"),
	}

	// Resolver endpoints are a comma-separated, order-significant list.
	var endpoints []string
	for _, e := range strings.Split(v.GetString("resolver.endpoints"), ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			endpoints = append(endpoints, e)
		}
	}
	cfg.Resolver = ResolverConfig{
		Endpoints:    endpoints,
		TimeoutSecs:  v.GetInt("resolver.timeout_secs"),
		Concurrency:  v.GetInt("resolver.concurrency"),
		DefaultLimit: v.GetInt("resolver.default_limit"),
	}

	cfg.Archive = ArchiveConfig{
		Enabled:   v.GetBool("archive.enabled"),
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
	}

	return cfg, nil
}
