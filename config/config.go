package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	JWT        JWTConfig

	Webhook WebhookConfig
	Sync    SyncConfig
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
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
}

// WebhookConfig holds webhook ingestion settings. GitHubSecret and GitLabToken
// are global fallbacks; repositories may carry their own secret which takes
// precedence during verification.
type WebhookConfig struct {
	Enabled         bool
	GitHubSecret    string
	GitLabToken     string
	AllowedIPs      []string
	RateLimitPerMin int
	DedupCacheSize  int
	DedupCacheTTL   time.Duration
}

// SyncConfig controls the repository metadata sync worker.
type SyncConfig struct {
	Enabled       bool
	CheckInterval time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/teamboard/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/teamboard/")

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

	// Postgres
	cfg.Postgres.URL = viper.GetString("postgres.url")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.GitHubSecret = viper.GetString("webhook.github_secret")
	cfg.Webhook.GitLabToken = viper.GetString("webhook.gitlab_token")
	if s := viper.GetString("webhook_github_secret"); s != "" {
		cfg.Webhook.GitHubSecret = s
	}
	if s := viper.GetString("webhook_gitlab_token"); s != "" {
		cfg.Webhook.GitLabToken = s
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupCacheSize = viper.GetInt("webhook.dedup_cache_size")
	cfg.Webhook.DedupCacheTTL = viper.GetDuration("webhook.dedup_cache_ttl")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	// Sync worker
	cfg.Sync.Enabled = viper.GetBool("sync.enabled")
	cfg.Sync.CheckInterval = viper.GetDuration("sync.check_interval")

	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres.url (or DATABASE_URL) is required")
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
	viper.SetDefault("postgres.max_open_conns", 25)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.dedup_cache_size", 4096)
	viper.SetDefault("webhook.dedup_cache_ttl", "30m")
	viper.SetDefault("sync.enabled", false)
	viper.SetDefault("sync.check_interval", "5m")
}
