package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", c.Server.Port)
	}
	if c.Gemini.BaseURL != "https://api.gemini.com/v2/ticker" {
		t.Errorf("unexpected gemini base URL %q", c.Gemini.BaseURL)
	}
	if c.Push.Username != "Crypto Prophet" {
		t.Errorf("unexpected push username %q", c.Push.Username)
	}
	if c.Cache.Backend != "none" {
		t.Errorf("expected cache backend none, got %q", c.Cache.Backend)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
mode: api
server:
  port: 9090
  read_timeout: 5s
forecast:
  service_url: http://prophet:8000
gemini:
  cache_ttl: 30s
cache:
  backend: memory
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Mode != ModeAPI {
		t.Errorf("expected mode api, got %q", c.Mode)
	}
	if c.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout != 5*time.Second {
		t.Errorf("expected read timeout 5s, got %v", c.Server.ReadTimeout)
	}
	if c.Gemini.CacheTTL != 30*time.Second {
		t.Errorf("expected cache ttl 30s, got %v", c.Gemini.CacheTTL)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
mode: api
forecast:
  service_url: http://prophet:8000
push:
  symbol: ethusd
`)

	t.Setenv("MODE", "DISCORD")
	t.Setenv("TICKER", "btcusd")
	t.Setenv("DISCORD", "https://discord.example/webhook")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "forecasts")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Mode != ModeDiscord {
		t.Errorf("expected env to override mode, got %q", c.Mode)
	}
	if c.Push.Symbol != "btcusd" {
		t.Errorf("expected env to override symbol, got %q", c.Push.Symbol)
	}
	if c.Push.WebhookURL != "https://discord.example/webhook" {
		t.Errorf("expected env webhook URL, got %q", c.Push.WebhookURL)
	}
	if len(c.Kafka.Brokers) != 2 || c.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("unexpected brokers %v", c.Kafka.Brokers)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid api mode",
			mutate: func(c *Config) { c.Mode = ModeAPI; c.Forecast.ServiceURL = "http://prophet:8000" },
		},
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Mode = "cron" },
			wantErr: "mode must be",
		},
		{
			name:    "missing forecast url",
			mutate:  func(c *Config) { c.Mode = ModeDiscord },
			wantErr: "forecast.service_url",
		},
		{
			name: "unknown cache backend",
			mutate: func(c *Config) {
				c.Mode = ModeAPI
				c.Forecast.ServiceURL = "http://prophet:8000"
				c.Cache.Backend = "memcached"
			},
			wantErr: "cache.backend",
		},
		{
			name: "brokers without topic",
			mutate: func(c *Config) {
				c.Mode = ModeAPI
				c.Forecast.ServiceURL = "http://prophet:8000"
				c.Kafka.Brokers = []string{"kafka:9092"}
			},
			wantErr: "kafka.topic",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Config
			c.defaults()
			tc.mutate(&c)

			err := c.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
