package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Name      string            `yaml:"name"`
		BaseURL   string            `yaml:"base_url"`
		APIKey    string            `yaml:"api_key"`
		UserAgent string            `yaml:"user_agent"`
		SymbolMap map[string]string `yaml:"symbol_map"`
	} `yaml:"data_source"`
	Report struct {
		TableRows int `yaml:"table_rows"`
	} `yaml:"report"`
	Proxy string `yaml:"proxy"`
}

// LoadEnv loads variables from a .env file if present. Existing variables win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file yields the defaults.
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
	if v := os.Getenv("TICKERSCOPE_SOURCE"); v != "" {
		cfg.DataSource.Name = v
	}
	if v := os.Getenv("TICKERSCOPE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("TICKERSCOPE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TICKERSCOPE_TABLE_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Report.TableRows = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Name == "" {
		cfg.DataSource.Name = "yahoo"
		if cfg.DataSource.BaseURL != "" {
			cfg.DataSource.Name = "rest"
		}
	}
	if cfg.Report.TableRows == 0 {
		cfg.Report.TableRows = 20
	}

	return cfg, nil
}

// Validate checks that the selected source is usable.
func (c *Config) Validate() error {
	switch c.DataSource.Name {
	case "yahoo", "mock":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest source")
		}
	default:
		return fmt.Errorf("data_source.name %q is not one of yahoo, rest, mock", c.DataSource.Name)
	}
	if c.Report.TableRows <= 0 {
		return fmt.Errorf("report.table_rows must be positive")
	}
	return nil
}
