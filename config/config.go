package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"warmsync.app/warmsync/core"
)

// Config is the deployment-time configuration. The rounding policy and
// end-time fallback live here so report variants are a config choice, not
// a code branch.
type Config struct {
	Listen        string  `yaml:"listen"`
	DatabasePath  string  `yaml:"database_path"`
	SigningSecret string  `yaml:"signing_secret"` // base64; empty disables API auth
	GeminiAPIKey  string  `yaml:"gemini_api_key"`
	SourceToken   string  `yaml:"source_token"` // bearer token for the sheet endpoint, if it needs one
	Rounding      string  `yaml:"rounding"`     // hundredth | whole | half-buckets
	EndFallback   string  `yaml:"end_fallback"` // borrow-next-start | none
	DefaultRate   float64 `yaml:"default_hourly_rate"`
	StaticDir     string  `yaml:"static_dir"` // dashboard assets; empty serves no UI
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// Load reads the config file once per process. A missing file is fine;
// defaults and environment overrides still apply.
func Load() (*Config, error) {
	once.Do(func() {
		path := os.Getenv("WARMSYNC_CONFIG")
		if path == "" {
			path = "config.yaml"
		}

		c := &Config{
			Listen:       "0.0.0.0:8090",
			DatabasePath: "warmsync.db",
			Rounding:     "whole",
			EndFallback:  string(core.BorrowNextStart),
			DefaultRate:  196,
		}

		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, c); err != nil {
				loadErr = fmt.Errorf("parse config %s: %w", path, err)
				return
			}
		} else if !os.IsNotExist(err) {
			loadErr = fmt.Errorf("read config %s: %w", path, err)
			return
		}

		applyEnv(c)
		cfg = c
	})

	return cfg, loadErr
}

func applyEnv(c *Config) {
	if v := os.Getenv("WARMSYNC_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("WARMSYNC_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("WARMSYNC_SIGNING_SECRET"); v != "" {
		c.SigningSecret = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("WARMSYNC_SOURCE_TOKEN"); v != "" {
		c.SourceToken = v
	}
	if v := os.Getenv("WARMSYNC_ROUNDING"); v != "" {
		c.Rounding = v
	}
	if v := os.Getenv("WARMSYNC_DEFAULT_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			c.DefaultRate = rate
		}
	}
}

// RoundingPolicy resolves the configured policy name.
func (c *Config) RoundingPolicy() core.RoundingPolicy {
	return core.RoundingPolicyByName(c.Rounding)
}

// Fallback resolves the configured end-time fallback strategy.
func (c *Config) Fallback() core.EndFallback {
	return core.EndFallbackByName(c.EndFallback)
}
