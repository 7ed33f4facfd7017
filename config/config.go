package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Task store drivers.
const (
	DriverMemos       = "memos"
	DriverPostgres    = "postgres"
	DriverGoogleTasks = "gtasks"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer   HTTPServerConfig
	Logger       LoggerConfig
	InternalAuth InternalAuthConfig

	// Task store (the external task-creation capability)
	TaskStore   TaskStoreConfig
	Memos       MemosConfig
	Postgres    PostgresConfig
	GoogleTasks GoogleTasksConfig

	// Profiles
	ProfileCache ProfileCacheConfig

	// Login page
	Login LoginConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string // Proxies allowed to set X-Forwarded-For / X-Real-IP
}

// LoginConfig points the login page at the external identity flow.
type LoginConfig struct {
	ActionURL string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InternalAuthConfig guards the routes that only trusted callers may reach.
type InternalAuthConfig struct {
	Key             string
	AllowedIPs      []string
	RateLimitPerMin int
}

type TaskStoreConfig struct {
	Driver string
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
	Visibility  string
}

type PostgresConfig struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	SSLMode           string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// Enabled reports whether a Postgres host is configured.
func (c PostgresConfig) Enabled() bool {
	return c.Host != ""
}

type GoogleTasksConfig struct {
	CredentialsPath string
	TokenPath       string
	ListID          string
}

type ProfileCacheConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	cfg := fromViper()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper() *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Internal boundary
	cfg.InternalAuth.Key = viper.GetString("internal_auth.key")
	if key := viper.GetString("internal_key"); key != "" {
		cfg.InternalAuth.Key = key
	}
	cfg.InternalAuth.RateLimitPerMin = viper.GetInt("internal_auth.rate_limit_per_min")
	cfg.InternalAuth.AllowedIPs = splitList(viper.GetString("internal_auth.allowed_ips"))

	// Task store
	cfg.TaskStore.Driver = strings.ToLower(viper.GetString("task_store.driver"))

	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	cfg.Memos.Visibility = viper.GetString("memos.visibility")
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = viper.GetDuration("postgres.max_conn_lifetime")
	cfg.Postgres.MaxConnIdleTime = viper.GetDuration("postgres.max_conn_idle_time")
	cfg.Postgres.HealthCheckPeriod = viper.GetDuration("postgres.health_check_period")

	cfg.GoogleTasks.CredentialsPath = viper.GetString("google_tasks.credentials_path")
	cfg.GoogleTasks.TokenPath = viper.GetString("google_tasks.token_path")
	cfg.GoogleTasks.ListID = viper.GetString("google_tasks.list_id")

	// Profiles
	cfg.ProfileCache.Size = viper.GetInt("profile_cache.size")
	cfg.ProfileCache.TTL = viper.GetDuration("profile_cache.ttl")

	// Login page
	cfg.Login.ActionURL = viper.GetString("login.action_url")

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("internal_auth.rate_limit_per_min", 600)
	viper.SetDefault("task_store.driver", DriverMemos)
	viper.SetDefault("memos.visibility", "PRIVATE")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.max_conn_lifetime", "1h")
	viper.SetDefault("postgres.max_conn_idle_time", "30m")
	viper.SetDefault("postgres.health_check_period", "1m")
	viper.SetDefault("google_tasks.list_id", "@default")
	viper.SetDefault("profile_cache.size", 1000)
	viper.SetDefault("profile_cache.ttl", "5m")
	viper.SetDefault("login.action_url", "/auth/login")
}

// Validate checks the fields the service cannot start without.
func (c *Config) Validate() error {
	if c.InternalAuth.Key == "" {
		return errors.New("internal_auth.key is required")
	}
	if c.InternalAuth.RateLimitPerMin <= 0 {
		return errors.New("internal_auth.rate_limit_per_min must be positive")
	}

	switch c.TaskStore.Driver {
	case DriverMemos:
		if c.Memos.URL == "" || c.Memos.AccessToken == "" {
			return errors.New("memos.url and memos.access_token are required for the memos task store")
		}
	case DriverPostgres:
		if !c.Postgres.Enabled() {
			return errors.New("postgres.host is required for the postgres task store")
		}
	case DriverGoogleTasks:
		if c.GoogleTasks.CredentialsPath == "" || c.GoogleTasks.TokenPath == "" {
			return errors.New("google_tasks.credentials_path and google_tasks.token_path are required for the gtasks task store")
		}
	default:
		return fmt.Errorf("unknown task_store.driver %q", c.TaskStore.Driver)
	}

	return nil
}

// splitList splits a comma separated value since viper might not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
