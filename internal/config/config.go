package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	// api gateway, e.g. http://localhost:8080
	GatewayURL       string `toml:"gateway_url"`
	ReadServiceName  string `toml:"read_service_name"`
	WriteServiceName string `toml:"write_service_name"`
	// per-request timeout for interactive calls, in seconds
	APITimeoutSeconds int `toml:"api_timeout_seconds"`

	// mock backend (cmd/mockapi)
	Host string `toml:"host"`
	Port int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	SentryEnabled bool `toml:"sentry_enabled"`
}

// ReadServiceBaseURL returns e.g. http://localhost:8080/xq-fitness-read-service/api/v1
func (c *Config) ReadServiceBaseURL() string {
	return fmt.Sprintf("%s/%s/api/v1", c.GatewayURL, c.ReadServiceName)
}

func (c *Config) WriteServiceBaseURL() string {
	return fmt.Sprintf("%s/%s/api/v1", c.GatewayURL, c.WriteServiceName)
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
	var configToml Toml
	if _, err := toml.DecodeFile(path, &configToml); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := configToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s empty", env)
	}

	cfg.Environment = env
	if cfg.APITimeoutSeconds <= 0 {
		cfg.APITimeoutSeconds = 10
	}

	return cfg, nil
}
