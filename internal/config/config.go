// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for craftconnect.
type Config struct {
	DataDir  string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`

	// LLM settings for the listing generation call.
	LLMModel   string `mapstructure:"llm_model" yaml:"llm_model"`
	LLMAPIKey  string `mapstructure:"llm_api_key" yaml:"llm_api_key"`
	LLMBaseURL string `mapstructure:"llm_base_url" yaml:"llm_base_url"`

	// Artisan profile defaults, seeded into the store by `craftconnect setup`.
	ArtisanName     string `mapstructure:"artisan_name" yaml:"artisan_name"`
	ArtisanLocation string `mapstructure:"artisan_location" yaml:"artisan_location"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("craftconnect")

	// Set defaults (llm_api_key has no default - the generation step requires it)
	v.SetDefault("data_dir", ".craftconnect")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("llm_model", "gpt-4o-mini")
	v.SetDefault("llm_base_url", "")
	v.SetDefault("artisan_name", "")
	v.SetDefault("artisan_location", "")

	// Setup ENV binding with CRAFTCONNECT_ prefix
	v.SetEnvPrefix("CRAFTCONNECT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better parsing
	bindings := map[string]string{
		"data_dir":         "CRAFTCONNECT_DATA_DIR",
		"log_level":        "CRAFTCONNECT_LOG_LEVEL",
		"log_file":         "CRAFTCONNECT_LOG_FILE",
		"llm_model":        "CRAFTCONNECT_LLM_MODEL",
		"llm_api_key":      "CRAFTCONNECT_LLM_API_KEY",
		"llm_base_url":     "CRAFTCONNECT_LLM_BASE_URL",
		"artisan_name":     "CRAFTCONNECT_ARTISAN_NAME",
		"artisan_location": "CRAFTCONNECT_ARTISAN_LOCATION",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/craftconnect/craftconnect.yml or $XDG_CONFIG_HOME/craftconnect/craftconnect.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "craftconnect", "craftconnect.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "craftconnect", "craftconnect.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./craftconnect.yml in the current working directory.
func ProjectPath() string {
	return "craftconnect.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	path := ProjectPath()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
