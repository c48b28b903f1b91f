package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURL      = "https://www.foaas.com"
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "warn"
)

var Files = []string{".foaas.yaml", ".foaas.json", "foaas.yaml", "foaas.json"}

type Config struct {
	URL     string `json:"url" yaml:"url"`
	Timeout string `json:"timeout" yaml:"timeout"`

	History  string `json:"history" yaml:"history"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Load resolves the configuration from defaults, the first config file found in dir,
// a .env file and the FOAAS_* environment variables, in increasing precedence.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := Default()

	for _, name := range Files {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		file, err := Parse(path)

		if err != nil {
			return nil, err
		}

		cfg.merge(file)
		break
	}

	cfg.merge(&Config{
		URL:     os.Getenv("FOAAS_URL"),
		Timeout: os.Getenv("FOAAS_TIMEOUT"),

		History:  os.Getenv("FOAAS_HISTORY"),
		LogLevel: os.Getenv("FOAAS_LOG_LEVEL"),
	})

	if _, err := cfg.Duration(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Default() *Config {
	cfg := &Config{
		URL:     DefaultURL,
		Timeout: DefaultTimeout.String(),

		LogLevel: DefaultLogLevel,
	}

	if dir, err := os.UserConfigDir(); err == nil {
		cfg.History = filepath.Join(dir, "foaas", "history.db")
	}

	return cfg
}

func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	var config Config

	if err := json.Unmarshal(data, &config); err == nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err == nil {
		return &config, nil
	}

	return nil, errors.New("failed to parse config file " + path)
}

func (c *Config) Duration() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}

	return time.ParseDuration(c.Timeout)
}

func (c *Config) merge(o *Config) {
	if o.URL != "" {
		c.URL = o.URL
	}

	if o.Timeout != "" {
		c.Timeout = o.Timeout
	}

	if o.History != "" {
		c.History = o.History
	}

	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}
