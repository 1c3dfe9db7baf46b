package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kmbeta/kmbeta/pkg/kmb"
	"github.com/kmbeta/kmbeta/pkg/util"
)

const defaultTimeout = 30 * time.Second

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type Config struct {
	API      APIConfig    `yaml:"api"`
	Language kmb.Language `yaml:"language"`

	timeout time.Duration
}

// Load builds the runtime configuration from defaults, an optional YAML
// config file and finally KMBETA_* environment variable overrides, in
// that order
func Load() (*Config, error) {
	config := &Config{
		API: APIConfig{
			BaseURL: kmb.DefaultBaseURL,
		},
		Language: kmb.LanguageTraditionalChinese,
		timeout:  defaultTimeout,
	}

	env := util.GetEnvironmentVariables()

	configPath := env["KMBETA_CONFIG"]
	if configPath == "" {
		if homeDirectory, err := os.UserHomeDir(); err == nil {
			configPath = filepath.Join(homeDirectory, ".config", "kmbeta", "config.yaml")
		}
	}

	if configPath != "" {
		configYaml, err := os.ReadFile(configPath)
		if err == nil {
			if err := yaml.Unmarshal(configYaml, config); err != nil {
				return nil, fmt.Errorf("Failed to parse config file %s: %s", configPath, err)
			}
		} else if env["KMBETA_CONFIG"] != "" {
			// an explicitly requested config file must exist
			return nil, err
		}
	}

	if env["KMBETA_API_BASE_URL"] != "" {
		config.API.BaseURL = env["KMBETA_API_BASE_URL"]
	}
	if env["KMBETA_API_TIMEOUT"] != "" {
		config.API.Timeout = env["KMBETA_API_TIMEOUT"]
	}
	if env["KMBETA_LANGUAGE"] != "" {
		config.Language = kmb.Language(env["KMBETA_LANGUAGE"])
	}

	if config.API.Timeout != "" {
		timeout, err := time.ParseDuration(config.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("Invalid api timeout %q: %s", config.API.Timeout, err)
		}
		config.timeout = timeout
	}

	if !config.Language.Valid() {
		return nil, fmt.Errorf("Invalid language %q - must be one of en, tc, sc", config.Language)
	}

	return config, nil
}

func (c *Config) RequestTimeout() time.Duration {
	return c.timeout
}
