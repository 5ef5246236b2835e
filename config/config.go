// Package config provides configuration loading and management for easy-dataset.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amazing83/easy-dataset/prompt"
)

// Config represents the complete easy-dataset configuration
type Config struct {
	Project ProjectConfig `yaml:"project"`
	LLM     LLMConfig     `yaml:"llm"`
	NATS    NATSConfig    `yaml:"nats"`
	Models  ModelsConfig  `yaml:"models"`
}

// ProjectConfig carries the default project context for CLI runs
type ProjectConfig struct {
	// ID is the default project whose prompt overrides apply (empty = defaults only)
	ID string `yaml:"id"`
	// Language selects the prompt language ("zh" or "en")
	Language string `yaml:"language"`
}

// LLMConfig configures LLM invocation settings
type LLMConfig struct {
	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `yaml:"temperature"`
	// MaxTokens limits response length (0 = endpoint default)
	MaxTokens int `yaml:"max_tokens"`
	// Timeout is the maximum time to wait for model responses
	Timeout time.Duration `yaml:"timeout"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = no NATS; overrides and call
	// recording are disabled)
	URL string `yaml:"url"`
	// RecordCalls enables publishing LLM call records to JetStream
	RecordCalls bool `yaml:"record_calls"`
}

// ModelsConfig points at the model registry definition
type ModelsConfig struct {
	// RegistryFile is a JSON model registry (empty = built-in defaults)
	RegistryFile string `yaml:"registry_file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			ID:       "",
			Language: string(prompt.LangZH),
		},
		LLM: LLMConfig{
			Temperature: 0.7,
			MaxTokens:   0,
			Timeout:     3 * time.Minute,
		},
		NATS: NATSConfig{
			URL:         "",
			RecordCalls: false,
		},
		Models: ModelsConfig{
			RegistryFile: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Project.Language {
	case string(prompt.LangZH), string(prompt.LangEN):
	default:
		return fmt.Errorf("project.language must be %q or %q", prompt.LangZH, prompt.LangEN)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("llm.temperature must be between 0 and 1")
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must not be negative")
	}
	if c.NATS.RecordCalls && c.NATS.URL == "" {
		return fmt.Errorf("nats.record_calls requires nats.url")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Project
	if other.Project.ID != "" {
		c.Project.ID = other.Project.ID
	}
	if other.Project.Language != "" {
		c.Project.Language = other.Project.Language
	}

	// LLM
	if other.LLM.Temperature != 0 {
		c.LLM.Temperature = other.LLM.Temperature
	}
	if other.LLM.MaxTokens != 0 {
		c.LLM.MaxTokens = other.LLM.MaxTokens
	}
	if other.LLM.Timeout != 0 {
		c.LLM.Timeout = other.LLM.Timeout
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.RecordCalls {
		c.NATS.RecordCalls = true
	}

	// Models
	if other.Models.RegistryFile != "" {
		c.Models.RegistryFile = other.Models.RegistryFile
	}
}
