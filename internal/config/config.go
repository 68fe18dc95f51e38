package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limiting
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	ManualWorkoutsAllowedPerDay int `toml:"manual_workouts_allowed_per_day"`

	// rules engine knobs
	DailyXPCap       int `toml:"daily_xp_cap"`
	PowerDayXPCap    int `toml:"power_day_xp_cap"`
	PowerDaysPerWeek int `toml:"power_days_per_week"`

	// notifications
	NotificationsWebhookURL string `toml:"notifications_webhook_url"`

	// motivational quotes for the app home screen
	QuotesCsvPath string `toml:"quotes_csv_path"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode toml config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DailyXPCap <= 0 {
		c.DailyXPCap = 300
	}
	if c.PowerDayXPCap <= 0 {
		c.PowerDayXPCap = 500
	}
	if c.PowerDaysPerWeek <= 0 {
		c.PowerDaysPerWeek = 1
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.ManualWorkoutsAllowedPerDay <= 0 {
		c.ManualWorkoutsAllowedPerDay = 1
	}
}
