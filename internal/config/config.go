package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Product struct {
		Name    string `yaml:"name"`
		SetName string `yaml:"set_name"`
		Single  bool   `yaml:"single"`
	} `yaml:"product"`
	Pipeline struct {
		OutlierK float64 `yaml:"outlier_k"`
	} `yaml:"pipeline"`
	Source struct {
		ListingsFile string `yaml:"listings_file"`
		HistoryFile  string `yaml:"history_file"`
	} `yaml:"source"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRODUCT_NAME"); v != "" {
		cfg.Product.Name = v
	}
	if v := os.Getenv("PRODUCT_SET"); v != "" {
		cfg.Product.SetName = v
	}
	if v := os.Getenv("LISTINGS_FILE"); v != "" {
		cfg.Source.ListingsFile = v
	}
	if v := os.Getenv("HISTORY_FILE"); v != "" {
		cfg.Source.HistoryFile = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("OUTLIER_K"); v != "" {
		var k float64
		if _, err := fmt.Sscanf(v, "%f", &k); err == nil {
			cfg.Pipeline.OutlierK = k
		}
	}

	// Defaults
	if cfg.Pipeline.OutlierK == 0 {
		cfg.Pipeline.OutlierK = 1.5
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 6 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/collectiq.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Product.Name == "" {
		return fmt.Errorf("product.name is required")
	}
	if c.Pipeline.OutlierK < 0 {
		return fmt.Errorf("pipeline.outlier_k must be non-negative")
	}
	return nil
}
