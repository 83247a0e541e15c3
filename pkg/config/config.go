package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Run modes. Anything else shows the help screen.
const (
	ModeAPI     = "api"
	ModeDiscord = "discord"
)

type Config struct {
	Environment string `yaml:"environment"`
	Mode        string `yaml:"mode"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Gemini struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"gemini"`
	Forecast struct {
		ServiceURL string        `yaml:"service_url"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"forecast"`
	Push struct {
		Symbol     string        `yaml:"symbol"`
		WebhookURL string        `yaml:"webhook_url"`
		Username   string        `yaml:"username"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"push"`
	Cache struct {
		Backend string `yaml:"backend"` // none, memory or redis
		Redis   struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
	} `yaml:"kafka"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
}

// defaults fills values a minimal or absent config file leaves unset.
func (c *Config) defaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = "https://api.gemini.com/v2/ticker"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 10 * time.Second
	}
	if c.Forecast.Timeout == 0 {
		c.Forecast.Timeout = 60 * time.Second
	}
	if c.Push.Username == "" {
		c.Push.Username = "Crypto Prophet"
	}
	if c.Push.Timeout == 0 {
		c.Push.Timeout = 30 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "none"
	}
	if c.Kafka.RequiredAcks == 0 {
		c.Kafka.RequiredAcks = -1
	}
	if c.Kafka.Compression == "" {
		c.Kafka.Compression = "gzip"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Load reads and parses a YAML configuration file. A missing file yields
// defaults so the service can run from environment variables alone.
func Load(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	c.defaults()
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables. MODE, TICKER and DISCORD keep their historical names.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("MODE"); v != "" {
		c.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("TICKER"); v != "" {
		c.Push.Symbol = v
	}
	if v := os.Getenv("DISCORD"); v != "" {
		c.Push.WebhookURL = v
	}
	if v := os.Getenv("GEMINI_URL"); v != "" {
		c.Gemini.BaseURL = v
	}
	if v := os.Getenv("FORECAST_URL"); v != "" {
		c.Forecast.ServiceURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Mode {
	case "", ModeAPI, ModeDiscord:
	default:
		return fmt.Errorf("mode must be '%s' or '%s', got '%s'", ModeAPI, ModeDiscord, c.Mode)
	}
	if c.Forecast.ServiceURL == "" && c.Mode != "" {
		return fmt.Errorf("forecast.service_url is required")
	}
	switch c.Cache.Backend {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be 'none', 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are set")
	}
	return nil
}
