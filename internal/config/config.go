package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// statistics
	// BucketingTimeZone is the IANA zone used to truncate record dates
	// to calendar days. Empty means UTC. Bucketing in a local zone
	// changes which records share a day, so it is an explicit choice.
	BucketingTimeZone string `toml:"bucketing_time_zone"`
}

// BucketingLocation resolves the configured time zone name.
func (c *Config) BucketingLocation() (*time.Location, error) {
	if c.BucketingTimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.BucketingTimeZone)
	if err != nil {
		return nil, fmt.Errorf("load bucketing time zone %q: %w", c.BucketingTimeZone, err)
	}
	return loc, nil
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
	var configs Toml
	if _, err := toml.DecodeFile(path, &configs); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := configs.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}
