// Package config loads agent settings from an optional YAML file with
// environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hjerpe/coding-agent/internal/provider"
	"github.com/hjerpe/coding-agent/internal/runner"
	"github.com/hjerpe/coding-agent/tools"
)

// Config represents the application configuration.
type Config struct {
	Model         string       `yaml:"model"`
	MaxTokens     int64        `yaml:"max_tokens"`
	MaxToolRounds int          `yaml:"max_tool_rounds"`
	ToolTimeouts  ToolTimeouts `yaml:"tool_timeouts"`
}

// ToolTimeouts configures tool execution timeouts in seconds.
type ToolTimeouts struct {
	DefaultSeconds int            `yaml:"default_seconds"`
	PerToolSeconds map[string]int `yaml:"per_tool_seconds"`
}

// Default returns a config with default values.
func Default() *Config {
	defaults := tools.DefaultTimeoutConfig()
	perTool := make(map[string]int, len(defaults.PerTool))
	for name, d := range defaults.PerTool {
		perTool[name] = int(d.Seconds())
	}
	return &Config{
		Model:         string(provider.DefaultModel),
		MaxTokens:     runner.DefaultMaxTokens,
		MaxToolRounds: runner.DefaultMaxRounds,
		ToolTimeouts: ToolTimeouts{
			DefaultSeconds: int(defaults.Default.Seconds()),
			PerToolSeconds: perTool,
		},
	}
}

// Load reads configuration from a YAML file when it exists, then applies
// environment overrides. Unknown file fields are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if v := os.Getenv("AGENT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AGENT_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AGENT_MAX_TOKENS %q: %w", v, err)
		}
		cfg.MaxTokens = n
	}
	if v := os.Getenv("AGENT_MAX_TOOL_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AGENT_MAX_TOOL_ROUNDS %q: %w", v, err)
		}
		cfg.MaxToolRounds = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.MaxToolRounds <= 0 {
		return fmt.Errorf("max_tool_rounds must be positive, got %d", c.MaxToolRounds)
	}
	return nil
}

// Timeouts returns the timeout configuration for tools.
func (c *Config) Timeouts() tools.TimeoutConfig {
	perTool := make(map[string]time.Duration, len(c.ToolTimeouts.PerToolSeconds))
	for name, seconds := range c.ToolTimeouts.PerToolSeconds {
		if seconds <= 0 {
			continue
		}
		perTool[name] = time.Duration(seconds) * time.Second
	}
	var def time.Duration
	if c.ToolTimeouts.DefaultSeconds > 0 {
		def = time.Duration(c.ToolTimeouts.DefaultSeconds) * time.Second
	}
	return tools.TimeoutConfig{Default: def, PerTool: perTool}
}
