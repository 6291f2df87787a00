package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional TOML overlay. Unset keys leave the environment
// value in place.
type FileConfig struct {
	App      AppFileConfig      `toml:"app"`
	Upstream UpstreamFileConfig `toml:"upstream"`
	Breaker  BreakerFileConfig  `toml:"breaker"`
	Report   ReportFileConfig   `toml:"report"`
}

type AppFileConfig struct {
	Port               *int     `toml:"port"`
	Env                *string  `toml:"env"`
	LogLevel           *string  `toml:"log-level"`
	Locale             *string  `toml:"locale"`
	Timezone           *string  `toml:"timezone"`
	CORSAllowedOrigins []string `toml:"cors-allowed-origins"`
}

type UpstreamFileConfig struct {
	BaseURL             *string `toml:"base-url"`
	Timeout             *string `toml:"timeout"`
	TopLateLimit        *int    `toml:"top-late-limit"`
	HealthProbeInterval *string `toml:"health-probe-interval"`
}

type BreakerFileConfig struct {
	MaxRequests      *uint32 `toml:"max-requests"`
	Interval         *string `toml:"interval"`
	Timeout          *string `toml:"timeout"`
	FailureThreshold *uint32 `toml:"failure-threshold"`
}

type ReportFileConfig struct {
	ExportBasePath *string `toml:"export-base-path"`
}

// LoadFile reads a TOML overlay. Unlike the .env file, a configured overlay
// must exist.
func LoadFile(path string) (FileConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply overrides c with every value set in the file
func (f FileConfig) Apply(c *Config) error {
	setInt(&c.App.Port, f.App.Port)
	setString(&c.App.Env, f.App.Env)
	setString(&c.App.LogLevel, f.App.LogLevel)
	setString(&c.App.Locale, f.App.Locale)
	setString(&c.App.Timezone, f.App.Timezone)
	if len(f.App.CORSAllowedOrigins) > 0 {
		c.App.CORSAllowedOrigins = f.App.CORSAllowedOrigins
	}

	setString(&c.Upstream.BaseURL, f.Upstream.BaseURL)
	setInt(&c.Upstream.TopLateLimit, f.Upstream.TopLateLimit)
	if err := setDuration(&c.Upstream.Timeout, f.Upstream.Timeout, "upstream.timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.Upstream.HealthProbeInterval, f.Upstream.HealthProbeInterval, "upstream.health-probe-interval"); err != nil {
		return err
	}

	if f.Breaker.MaxRequests != nil {
		c.Breaker.MaxRequests = *f.Breaker.MaxRequests
	}
	if f.Breaker.FailureThreshold != nil {
		c.Breaker.FailureThreshold = *f.Breaker.FailureThreshold
	}
	if err := setDuration(&c.Breaker.Interval, f.Breaker.Interval, "breaker.interval"); err != nil {
		return err
	}
	if err := setDuration(&c.Breaker.Timeout, f.Breaker.Timeout, "breaker.timeout"); err != nil {
		return err
	}

	setString(&c.Report.ExportBasePath, f.Report.ExportBasePath)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, key string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
