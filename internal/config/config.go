package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// http
	AllowedOrigins []string `toml:"allowed_origins"`
	// analytics
	FindingsCacheTTLMinutes int `toml:"findings_cache_ttl_minutes"`
	LibraryCacheTTLSeconds  int `toml:"library_cache_ttl_seconds"`
	// reports
	FirestoreEnabled       bool   `toml:"firestore_enabled"`
	ReportSnapshotSchedule string `toml:"report_snapshot_schedule"`
	// insights
	InsightModels      []string `toml:"insight_models"`
	InsightTemperature float32  `toml:"insight_temperature"`
	InsightMaxTokens   int32    `toml:"insight_max_tokens"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}

	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.FindingsCacheTTLMinutes <= 0 {
		c.FindingsCacheTTLMinutes = 30
	}
	if c.LibraryCacheTTLSeconds <= 0 {
		c.LibraryCacheTTLSeconds = 300
	}
	if len(c.InsightModels) == 0 {
		c.InsightModels = []string{"gemini-2.0-flash", "gemini-1.5-flash"}
	}
	if c.InsightMaxTokens <= 0 {
		c.InsightMaxTokens = 1024
	}
}
